package domain

import "time"

type VacationType string

const (
	VacationAnnual    VacationType = "annual"
	VacationSick      VacationType = "sick"
	VacationPersonal  VacationType = "personal"
	VacationMaternity VacationType = "maternity"
)

type VacationStatus string

const (
	VacationPending  VacationStatus = "pending"
	VacationApproved VacationStatus = "approved"
	VacationRejected VacationStatus = "rejected"
)

// VacationRequest 的状态只会从 pending 走向 approved 或 rejected，
// 已决定的申请不会被重新打开。
type VacationRequest struct {
	ID           int64          `json:"id"`
	StaffID      int64          `json:"staffID"`
	StaffName    string         `json:"staffName"`
	StartDate    string         `json:"startDate"` // YYYY-MM-DD，含端点
	EndDate      string         `json:"endDate"`
	Type         VacationType   `json:"type"`
	Reason       string         `json:"reason"`
	Status       VacationStatus `json:"status"`
	RequestDate  string         `json:"requestDate"`
	ApprovedBy   string         `json:"approvedBy,omitempty"`
	ApprovedDate string         `json:"approvedDate,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
