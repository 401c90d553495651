package schedule

import (
	"math"
	"time"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

// WorkedHours 根据实际出退勤时间计算工时。两个时间都存在时才计算，
// 结束时间不晚于开始时间时视作跨夜班（结束时间落在次日）。
// 扣除休息时间后不会出现负数。
func WorkedHours(a domain.ShiftAssignment) float64 {
	if a.ActualStartTime == "" || a.ActualEndTime == "" {
		return 0
	}

	start, err := time.Parse(clockLayout, a.ActualStartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(clockLayout, a.ActualEndTime)
	if err != nil {
		return 0
	}

	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	hours := end.Sub(start).Hours() - float64(a.BreakMinutes)/60
	return math.Max(0, hours)
}

// Pay 计算一条排班的薪酬。只有 completed 状态的排班才计薪，
// 全职员工的结果同样可以计算，但不会被计入兼职薪酬总额。
func Pay(a domain.ShiftAssignment, staff *domain.Staff) int64 {
	if a.Status != domain.StatusCompleted {
		return 0
	}
	return int64(math.Round(WorkedHours(a) * float64(staff.HourlyWage)))
}
