package domain

import "time"

// WorkKind 描述了一条排班记录的类型：要么引用一个班次模板，
// 要么是休假/休息日，要么是全职员工手动录入的 custom 班次。
type WorkKind string

const (
	WorkKindOpen   WorkKind = "open"
	WorkKindMiddle WorkKind = "middle"
	WorkKindClose  WorkKind = "close"
	WorkKindA      WorkKind = "A"
	WorkKindB      WorkKind = "B"
	WorkKindC      WorkKind = "C"
	WorkKindD      WorkKind = "D"

	WorkKindVacation WorkKind = "vacation"
	WorkKindOff      WorkKind = "off"
	WorkKindCustom   WorkKind = "custom"
)

// ShiftTemplate 是一个可复用的班次定义。模板在启动时从目录加载，
// 运行期间不可修改。
type ShiftTemplate struct {
	Kind           WorkKind       `json:"kind"`
	Name           string         `json:"name"`
	StartTime      string         `json:"startTime"` // HH:MM
	EndTime        string         `json:"endTime"`   // HH:MM
	BreakMinutes   int32          `json:"breakMinutes"`
	Description    string         `json:"description"`
	EmploymentType EmploymentType `json:"employmentType"`
}

type AssignmentStatus string

const (
	StatusScheduled AssignmentStatus = "scheduled"
	StatusConfirmed AssignmentStatus = "confirmed"
	StatusWorking   AssignmentStatus = "working"
	StatusCompleted AssignmentStatus = "completed"
	StatusAbsent    AssignmentStatus = "absent"
)

// ShiftAssignment 是某位员工某一天的排班记录。
// 模板类的排班会在创建时把模板的时间反规范化到记录上，
// 之后修改模板不会回溯影响已有的排班。
type ShiftAssignment struct {
	ID              int64            `json:"id"`
	StaffID         int64            `json:"staffID"`
	StaffName       string           `json:"staffName"`
	Date            string           `json:"date"` // YYYY-MM-DD
	WorkKind        WorkKind         `json:"workKind"`
	StartTime       string           `json:"startTime"` // HH:MM，vacation/off 时为空
	EndTime         string           `json:"endTime"`
	BreakMinutes    int32            `json:"breakMinutes"`
	ActualStartTime string           `json:"actualStartTime,omitempty"`
	ActualEndTime   string           `json:"actualEndTime,omitempty"`
	Status          AssignmentStatus `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}
