package schedule

import (
	"testing"
	"time"
)

func TestWeekDatesContainingWednesday(t *testing.T) {
	// 2024-10-02 是周三
	anchor := time.Date(2024, 10, 2, 15, 30, 0, 0, time.UTC)

	dates := WeekDatesContaining(anchor)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0].Format("2006-01-02") != "2024-09-29" {
		t.Fatalf("expected week to start on preceding Sunday, got %s", dates[0].Format("2006-01-02"))
	}
	if dates[6].Format("2006-01-02") != "2024-10-05" {
		t.Fatalf("expected week to end on Saturday, got %s", dates[6].Format("2006-01-02"))
	}
	for i := 1; i < 7; i++ {
		if !dates[i].After(dates[i-1]) {
			t.Fatalf("expected ascending order at index %d", i)
		}
	}
}

func TestWeekDatesContainingSunday(t *testing.T) {
	// 周日作为锚点时当天就是一周的开始
	anchor := time.Date(2024, 9, 29, 0, 0, 0, 0, time.UTC)

	dates := WeekDatesContaining(anchor)
	if dates[0].Format("2006-01-02") != "2024-09-29" {
		t.Fatalf("expected week to start on the anchor itself, got %s", dates[0].Format("2006-01-02"))
	}
}

func TestMonthDatesContaining(t *testing.T) {
	anchor := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	dates := MonthDatesContaining(anchor)
	if len(dates) != 29 {
		t.Fatalf("expected 29 dates for February 2024, got %d", len(dates))
	}
	if dates[0].Day() != 1 || dates[len(dates)-1].Day() != 29 {
		t.Fatalf("unexpected month boundaries %d..%d", dates[0].Day(), dates[len(dates)-1].Day())
	}
}

func TestBusinessHoursConstant(t *testing.T) {
	weekday := BusinessHoursFor(time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC))
	weekend := BusinessHoursFor(time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC))

	if weekday != weekend {
		t.Fatalf("expected identical business hours, got %+v and %+v", weekday, weekend)
	}
	if weekday.Open != "08:00" || weekday.Close != "22:00" {
		t.Fatalf("unexpected business hours %+v", weekday)
	}
}
