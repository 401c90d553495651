package schedule

import (
	"time"
)

// WeekDatesContaining 返回包含 anchor 的那一周的 7 个日期，
// 从 anchor 当周或之前最近的周日开始，到随后的周六结束。
func WeekDatesContaining(anchor time.Time) []time.Time {
	sunday := time.Date(anchor.Year(), anchor.Month(), anchor.Day()-int(anchor.Weekday()), 0, 0, 0, 0, anchor.Location())

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, sunday.AddDate(0, 0, i))
	}
	return dates
}

// MonthDatesContaining 返回 anchor 所在月份的全部日期，升序。
func MonthDatesContaining(anchor time.Time) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	dates := make([]time.Time, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

type BusinessHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHoursFor 返回指定日期的营业时间。
// 门店没有节假日和季节性营业时间，每天都相同。
func BusinessHoursFor(_ time.Time) BusinessHours {
	return BusinessHours{Open: "08:00", Close: "22:00"}
}
