package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

// CustomTimes 是全职员工手动录入班次时的显式时间。
type CustomTimes struct {
	StartTime    string
	EndTime      string
	BreakMinutes int32
}

// CreateAssignmentInput 是创建排班的输入。WorkKind 为 custom 时
// 必须提供 Custom，其余情况 Custom 会被忽略。
type CreateAssignmentInput struct {
	StaffID  int64
	Date     string
	WorkKind domain.WorkKind
	Custom   *CustomTimes
	Notes    string
}

// UpdateAssignmentPatch 中为 nil 的字段保持不变。打补丁后的记录
// 会按照与创建完全相同的规则重新校验并重新推导计划时间。
type UpdateAssignmentPatch struct {
	StaffID  *int64
	Date     *string
	WorkKind *domain.WorkKind
	Custom   *CustomTimes
	Notes    *string
}

// ListOptions 是排班列表的过滤条件。StaffID 为 0 表示不按员工过滤，
// NameSearch 为空表示不按姓名过滤（大小写不敏感的子串匹配）。
type ListOptions struct {
	StaffID    int64
	NameSearch string
}

// Ledger 持有全部排班记录。它是一个进程内的可变集合，
// 假定同一时刻只有一个写者，由调用方负责串行化。
type Ledger struct {
	catalog     *Catalog
	roster      Roster
	assignments []domain.ShiftAssignment
	nextID      int64
}

func NewLedger(catalog *Catalog, roster Roster) *Ledger {
	return &Ledger{
		catalog:     catalog,
		roster:      roster,
		assignments: make([]domain.ShiftAssignment, 0),
		nextID:      1,
	}
}

const clockLayout = "15:04"

// resolvePlannedTimes 根据排班类型推导计划时间。模板类的排班始终
// 使用模板中的时间，vacation/off 清空时间，custom 使用显式时间。
func (l *Ledger) resolvePlannedTimes(staff *domain.Staff, kind domain.WorkKind, custom *CustomTimes) (startTime, endTime string, breakMinutes int32, err error) {
	switch kind {
	case domain.WorkKindVacation, domain.WorkKindOff:
		return "", "", 0, nil
	case domain.WorkKindCustom:
		// 只有全职员工允许手动录入时间
		if staff.EmploymentType != domain.EmploymentFullTime {
			return "", "", 0, ErrInvalidWorkKind
		}
		if custom == nil {
			return "", "", 0, ErrInvalidTimeRange
		}
		start, parseErr := time.Parse(clockLayout, custom.StartTime)
		if parseErr != nil {
			return "", "", 0, ErrInvalidTimeRange
		}
		end, parseErr := time.Parse(clockLayout, custom.EndTime)
		if parseErr != nil {
			return "", "", 0, ErrInvalidTimeRange
		}
		// 结束早于开始视作跨夜班，但相等不视作 24 小时班
		if end.Equal(start) {
			return "", "", 0, ErrInvalidTimeRange
		}
		if custom.BreakMinutes < 0 {
			return "", "", 0, ErrInvalidTimeRange
		}
		return custom.StartTime, custom.EndTime, custom.BreakMinutes, nil
	default:
		template, ok := l.catalog.Resolve(kind)
		if !ok || template.EmploymentType != staff.EmploymentType {
			return "", "", 0, ErrInvalidWorkKind
		}
		return template.StartTime, template.EndTime, template.BreakMinutes, nil
	}
}

// Create 新增一条排班记录，初始状态为 scheduled。
func (l *Ledger) Create(input CreateAssignmentInput, now time.Time) (domain.ShiftAssignment, error) {
	staff, err := l.roster.GetStaffByID(input.StaffID)
	if err != nil {
		return domain.ShiftAssignment{}, err
	}

	startTime, endTime, breakMinutes, err := l.resolvePlannedTimes(staff, input.WorkKind, input.Custom)
	if err != nil {
		return domain.ShiftAssignment{}, err
	}

	assignment := domain.ShiftAssignment{
		ID:           l.nextID,
		StaffID:      staff.ID,
		StaffName:    staff.Name,
		Date:         input.Date,
		WorkKind:     input.WorkKind,
		StartTime:    startTime,
		EndTime:      endTime,
		BreakMinutes: breakMinutes,
		Status:       domain.StatusScheduled,
		Notes:        input.Notes,
		CreatedAt:    now,
	}

	l.nextID++
	l.assignments = append(l.assignments, assignment)

	return assignment, nil
}

// Update 按补丁修改排班记录。校验失败时账本保持不变。
func (l *Ledger) Update(id int64, patch UpdateAssignmentPatch) (domain.ShiftAssignment, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.ShiftAssignment{}, ErrNotFound
	}

	updated := l.assignments[idx]

	if patch.StaffID != nil {
		updated.StaffID = *patch.StaffID
	}
	if patch.Date != nil {
		updated.Date = *patch.Date
	}
	if patch.WorkKind != nil {
		updated.WorkKind = *patch.WorkKind
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}

	staff, err := l.roster.GetStaffByID(updated.StaffID)
	if err != nil {
		return domain.ShiftAssignment{}, err
	}

	// custom 排班没有提供新的时间时，沿用记录上已有的时间作为显式时间
	custom := patch.Custom
	if custom == nil && updated.WorkKind == domain.WorkKindCustom {
		custom = &CustomTimes{
			StartTime:    updated.StartTime,
			EndTime:      updated.EndTime,
			BreakMinutes: updated.BreakMinutes,
		}
	}

	startTime, endTime, breakMinutes, err := l.resolvePlannedTimes(staff, updated.WorkKind, custom)
	if err != nil {
		return domain.ShiftAssignment{}, err
	}

	updated.StaffName = staff.Name
	updated.StartTime = startTime
	updated.EndTime = endTime
	updated.BreakMinutes = breakMinutes

	// 改成非工作类型时实际出退勤时间随之失效
	if updated.WorkKind == domain.WorkKindVacation || updated.WorkKind == domain.WorkKindOff {
		updated.ActualStartTime = ""
		updated.ActualEndTime = ""
	}

	l.assignments[idx] = updated

	return updated, nil
}

// Delete 直接移除记录，没有墓碑。
func (l *Ledger) Delete(id int64) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	l.assignments = append(l.assignments[:idx], l.assignments[idx+1:]...)
	return nil
}

var validStatuses = []domain.AssignmentStatus{
	domain.StatusScheduled,
	domain.StatusConfirmed,
	domain.StatusWorking,
	domain.StatusCompleted,
	domain.StatusAbsent,
}

// RecordAttendance 记录实际出退勤时间并设置状态。两个时间各自可选，
// 为空时保留旧值，允许只打上班卡不打下班卡。状态之间没有顺序约束，
// 系统也不会根据墙钟时间自动推进状态。
func (l *Ledger) RecordAttendance(id int64, actualStart, actualEnd string, status domain.AssignmentStatus) (domain.ShiftAssignment, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.ShiftAssignment{}, ErrNotFound
	}

	// 休假和休息日没有出退勤
	kind := l.assignments[idx].WorkKind
	if (kind == domain.WorkKindVacation || kind == domain.WorkKindOff) && (actualStart != "" || actualEnd != "") {
		return domain.ShiftAssignment{}, ErrInvalidWorkKind
	}

	valid := false
	for _, s := range validStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return domain.ShiftAssignment{}, ErrInvalidStatus
	}

	if actualStart != "" {
		if _, err := time.Parse(clockLayout, actualStart); err != nil {
			return domain.ShiftAssignment{}, ErrInvalidTimeRange
		}
	}
	if actualEnd != "" {
		if _, err := time.Parse(clockLayout, actualEnd); err != nil {
			return domain.ShiftAssignment{}, ErrInvalidTimeRange
		}
	}

	assignment := &l.assignments[idx]
	if actualStart != "" {
		assignment.ActualStartTime = actualStart
	}
	if actualEnd != "" {
		assignment.ActualEndTime = actualEnd
	}
	assignment.Status = status

	return *assignment, nil
}

// Get 返回指定 ID 的排班记录。
func (l *Ledger) Get(id int64) (domain.ShiftAssignment, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.ShiftAssignment{}, ErrNotFound
	}
	return l.assignments[idx], nil
}

// ListForDate 返回指定日期的排班，按插入顺序。
func (l *Ledger) ListForDate(date string, opts ListOptions) []domain.ShiftAssignment {
	result := make([]domain.ShiftAssignment, 0)
	for _, a := range l.assignments {
		if a.Date != date {
			continue
		}
		if !matches(a, opts) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// ListForStaff 返回指定员工的全部排班，按插入顺序。
func (l *Ledger) ListForStaff(staffID int64, opts ListOptions) []domain.ShiftAssignment {
	result := make([]domain.ShiftAssignment, 0)
	for _, a := range l.assignments {
		if a.StaffID != staffID {
			continue
		}
		if !matches(a, opts) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// ListAll 返回全部排班记录，按插入顺序。
func (l *Ledger) ListAll(opts ListOptions) []domain.ShiftAssignment {
	result := make([]domain.ShiftAssignment, 0)
	for _, a := range l.assignments {
		if !matches(a, opts) {
			continue
		}
		result = append(result, a)
	}
	return result
}

func matches(a domain.ShiftAssignment, opts ListOptions) bool {
	if opts.StaffID != 0 && a.StaffID != opts.StaffID {
		return false
	}
	if opts.NameSearch != "" && !strings.Contains(strings.ToLower(a.StaffName), strings.ToLower(opts.NameSearch)) {
		return false
	}
	return true
}

func (l *Ledger) indexOf(id int64) int {
	for i := range l.assignments {
		if l.assignments[i].ID == id {
			return i
		}
	}
	return -1
}

// Size 返回账本中的记录数。
func (l *Ledger) Size() int {
	return len(l.assignments)
}

// WorkingNowCount 统计指定日期处于 working 状态的排班数。
// 当前日期由调用方传入，核心不读取墙钟。
func (l *Ledger) WorkingNowCount(today string) int {
	count := 0
	for _, a := range l.assignments {
		if a.Date == today && a.Status == domain.StatusWorking {
			count++
		}
	}
	return count
}

// TotalCompletedHours 统计所有已完成排班的实际工时之和。
func (l *Ledger) TotalCompletedHours() float64 {
	total := 0.0
	for _, a := range l.assignments {
		if a.Status == domain.StatusCompleted {
			total += WorkedHours(a)
		}
	}
	return total
}

// PartTimePayrollTotal 统计兼职员工已完成排班的薪酬总额。
// 全职员工按月薪结算，不计入此聚合。花名册中已不存在的员工跳过。
func (l *Ledger) PartTimePayrollTotal() (int64, error) {
	total := int64(0)
	for _, a := range l.assignments {
		if a.Status != domain.StatusCompleted {
			continue
		}
		staff, err := l.roster.GetStaffByID(a.StaffID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return 0, err
		}
		if staff.EmploymentType != domain.EmploymentPartTime {
			continue
		}
		total += Pay(a, staff)
	}
	return total, nil
}
