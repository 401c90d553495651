package domain

import "time"

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
)

// Staff 是门店花名册中的一名员工。排班核心只读取花名册，
// 员工的增删改由门店管理接口负责。
type Staff struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Position       string         `json:"position"`
	HourlyWage     int64          `json:"hourlyWage"`
	MonthlyWage    int64          `json:"monthlyWage"` // 仅全职员工展示用，不参与排班核心的计算
	EmploymentType EmploymentType `json:"employmentType"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	CreatedAt      time.Time      `json:"createdAt"`
	Version        int32          `json:"-"`
}
