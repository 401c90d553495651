package schedule

import (
	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

// Roster 是排班核心对花名册的只读视图，由调用方在构造时注入。
// 员工不存在时实现方应返回 ErrNotFound。
type Roster interface {
	GetStaffByID(id int64) (*domain.Staff, error)
	GetAllStaffs() ([]*domain.Staff, error)
}
