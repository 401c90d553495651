package schedule

import (
	"testing"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func TestWorkedHoursOvernight(t *testing.T) {
	a := domain.ShiftAssignment{
		ActualStartTime: "20:00",
		ActualEndTime:   "02:00",
		BreakMinutes:    30,
	}

	// 跨夜：20:00~次日 02:00 共 6 小时，扣 30 分钟休息
	if got := WorkedHours(a); got != 5.5 {
		t.Fatalf("expected 5.5 hours, got %v", got)
	}
}

func TestWorkedHoursMissingActuals(t *testing.T) {
	a := domain.ShiftAssignment{ActualStartTime: "09:00"}
	if got := WorkedHours(a); got != 0 {
		t.Fatalf("expected 0 for missing actual end, got %v", got)
	}

	a = domain.ShiftAssignment{ActualEndTime: "18:00"}
	if got := WorkedHours(a); got != 0 {
		t.Fatalf("expected 0 for missing actual start, got %v", got)
	}
}

func TestWorkedHoursEqualActualsRollOver(t *testing.T) {
	// 实际打卡时间相等时结束时间按次日处理
	a := domain.ShiftAssignment{ActualStartTime: "09:00", ActualEndTime: "09:00"}
	if got := WorkedHours(a); got != 24 {
		t.Fatalf("expected 24 hours, got %v", got)
	}
}

func TestWorkedHoursClampedAtZero(t *testing.T) {
	// 休息时间超过在岗时间时工时为 0，不出现负数
	a := domain.ShiftAssignment{
		ActualStartTime: "09:00",
		ActualEndTime:   "10:00",
		BreakMinutes:    120,
	}
	if got := WorkedHours(a); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestPayOnlyForCompleted(t *testing.T) {
	staff := &domain.Staff{HourlyWage: 10000, EmploymentType: domain.EmploymentPartTime}
	a := domain.ShiftAssignment{
		ActualStartTime: "20:00",
		ActualEndTime:   "02:00",
		BreakMinutes:    30,
		Status:          domain.StatusWorking,
	}

	if got := Pay(a, staff); got != 0 {
		t.Fatalf("expected 0 for non-completed assignment, got %d", got)
	}

	a.Status = domain.StatusCompleted
	if got := Pay(a, staff); got != 55000 {
		t.Fatalf("expected 55000, got %d", got)
	}
}
