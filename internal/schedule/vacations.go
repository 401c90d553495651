package schedule

import (
	"time"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

// VacationLedger 持有全部休假申请，和 Ledger 一样假定单写者。
type VacationLedger struct {
	roster   Roster
	requests []domain.VacationRequest
	nextID   int64
}

func NewVacationLedger(roster Roster) *VacationLedger {
	return &VacationLedger{
		roster:   roster,
		requests: make([]domain.VacationRequest, 0),
		nextID:   1,
	}
}

const dateLayout = "2006-01-02"

// Request 提交一条休假申请，初始状态为 pending。
func (vl *VacationLedger) Request(staffID int64, startDate, endDate string, vacationType domain.VacationType, reason string, now time.Time) (domain.VacationRequest, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return domain.VacationRequest{}, ErrInvalidRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return domain.VacationRequest{}, ErrInvalidRange
	}
	if end.Before(start) {
		return domain.VacationRequest{}, ErrInvalidRange
	}

	staff, err := vl.roster.GetStaffByID(staffID)
	if err != nil {
		return domain.VacationRequest{}, err
	}

	request := domain.VacationRequest{
		ID:          vl.nextID,
		StaffID:     staff.ID,
		StaffName:   staff.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        vacationType,
		Reason:      reason,
		Status:      domain.VacationPending,
		RequestDate: now.Format(dateLayout),
		CreatedAt:   now,
	}

	vl.nextID++
	vl.requests = append(vl.requests, request)

	return request, nil
}

// Decide 批准或驳回一条申请并盖上审批人和决定日期。
// 只有 pending 状态的申请可以被处理。
func (vl *VacationLedger) Decide(id int64, approved bool, approvedBy string, decisionDate string) (domain.VacationRequest, error) {
	idx := vl.indexOf(id)
	if idx < 0 {
		return domain.VacationRequest{}, ErrNotFound
	}

	request := &vl.requests[idx]
	if request.Status != domain.VacationPending {
		return domain.VacationRequest{}, ErrAlreadyDecided
	}

	if approved {
		request.Status = domain.VacationApproved
	} else {
		request.Status = domain.VacationRejected
	}
	request.ApprovedBy = approvedBy
	request.ApprovedDate = decisionDate

	return *request, nil
}

// Delete 无条件移除申请，不限制状态。
func (vl *VacationLedger) Delete(id int64) error {
	idx := vl.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	vl.requests = append(vl.requests[:idx], vl.requests[idx+1:]...)
	return nil
}

// Get 返回指定 ID 的休假申请。
func (vl *VacationLedger) Get(id int64) (domain.VacationRequest, error) {
	idx := vl.indexOf(id)
	if idx < 0 {
		return domain.VacationRequest{}, ErrNotFound
	}
	return vl.requests[idx], nil
}

// List 返回全部休假申请，按插入顺序。
func (vl *VacationLedger) List() []domain.VacationRequest {
	result := make([]domain.VacationRequest, 0, len(vl.requests))
	result = append(result, vl.requests...)
	return result
}

// PendingCount 统计待处理的休假申请数。
func (vl *VacationLedger) PendingCount() int {
	count := 0
	for _, r := range vl.requests {
		if r.Status == domain.VacationPending {
			count++
		}
	}
	return count
}

func (vl *VacationLedger) indexOf(id int64) int {
	for i := range vl.requests {
		if vl.requests[i].ID == id {
			return i
		}
	}
	return -1
}
