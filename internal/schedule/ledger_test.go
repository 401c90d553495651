package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

type fakeRoster struct {
	staffs []*domain.Staff
}

func (f *fakeRoster) GetStaffByID(id int64) (*domain.Staff, error) {
	for _, s := range f.staffs {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRoster) GetAllStaffs() ([]*domain.Staff, error) {
	return f.staffs, nil
}

func testRoster() *fakeRoster {
	return &fakeRoster{staffs: []*domain.Staff{
		{ID: 1, Name: "王伟", Position: "店长", HourlyWage: 12000, MonthlyWage: 3200000, EmploymentType: domain.EmploymentFullTime},
		{ID: 2, Name: "李芳", Position: "前台", HourlyWage: 10000, EmploymentType: domain.EmploymentPartTime},
		{ID: 3, Name: "张敏", Position: "后厨", HourlyWage: 9500, EmploymentType: domain.EmploymentPartTime},
	}}
}

func testLedger() *Ledger {
	return NewLedger(DefaultCatalog(), testRoster())
}

var testNow = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

func TestCreateFromTemplate(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.StartTime != "08:00" || a.EndTime != "14:00" || a.BreakMinutes != 60 {
		t.Fatalf("expected template times to be denormalized, got %s-%s/%d", a.StartTime, a.EndTime, a.BreakMinutes)
	}
	if a.Status != domain.StatusScheduled {
		t.Fatalf("expected initial status scheduled, got %s", a.Status)
	}
	if a.StaffName != "李芳" {
		t.Fatalf("expected staff name to be denormalized, got %q", a.StaffName)
	}
}

func TestCreateRejectsForeignTemplateKind(t *testing.T) {
	l := testLedger()

	// A 班是全职模板，兼职员工不可用
	if _, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindA}, testNow); !errors.Is(err, ErrInvalidWorkKind) {
		t.Fatalf("expected ErrInvalidWorkKind, got %v", err)
	}

	// 兼职模板对全职员工同样不可用
	if _, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow); !errors.Is(err, ErrInvalidWorkKind) {
		t.Fatalf("expected ErrInvalidWorkKind, got %v", err)
	}

	if l.Size() != 0 {
		t.Fatalf("failed creates must not change the ledger, size = %d", l.Size())
	}
}

func TestCreateCustomOnlyForFullTime(t *testing.T) {
	l := testLedger()

	custom := &CustomTimes{StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60}

	if _, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindCustom, Custom: custom}, testNow); !errors.Is(err, ErrInvalidWorkKind) {
		t.Fatalf("expected ErrInvalidWorkKind for part-time custom, got %v", err)
	}

	a, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindCustom, Custom: custom}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.StartTime != "09:00" || a.EndTime != "18:00" || a.BreakMinutes != 60 {
		t.Fatalf("expected explicit times on custom assignment, got %s-%s/%d", a.StartTime, a.EndTime, a.BreakMinutes)
	}
}

func TestCreateCustomZeroLengthInvalid(t *testing.T) {
	l := testLedger()

	// 相等的起止时间不视作 24 小时跨夜班
	custom := &CustomTimes{StartTime: "09:00", EndTime: "09:00"}
	if _, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindCustom, Custom: custom}, testNow); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestCreateCustomOvernightValid(t *testing.T) {
	l := testLedger()

	custom := &CustomTimes{StartTime: "20:00", EndTime: "02:00", BreakMinutes: 30}
	a, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindCustom, Custom: custom}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.StartTime != "20:00" || a.EndTime != "02:00" {
		t.Fatalf("unexpected times %s-%s", a.StartTime, a.EndTime)
	}
}

func TestCreateVacationClearsTimes(t *testing.T) {
	l := testLedger()

	// 即使给了显式时间，vacation/off 也会清空计划时间
	custom := &CustomTimes{StartTime: "09:00", EndTime: "18:00", BreakMinutes: 60}
	a, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-02", WorkKind: domain.WorkKindVacation, Custom: custom}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.StartTime != "" || a.EndTime != "" || a.BreakMinutes != 0 {
		t.Fatalf("expected cleared times for vacation, got %q-%q/%d", a.StartTime, a.EndTime, a.BreakMinutes)
	}
}

func TestCreateUnknownStaff(t *testing.T) {
	l := testLedger()

	if _, err := l.Create(CreateAssignmentInput{StaffID: 99, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRederivesPlannedTimes(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kind := domain.WorkKindClose
	updated, err := l.Update(a.ID, UpdateAssignmentPatch{WorkKind: &kind})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.StartTime != "16:00" || updated.EndTime != "22:30" || updated.BreakMinutes != 30 {
		t.Fatalf("expected close template times, got %s-%s/%d", updated.StartTime, updated.EndTime, updated.BreakMinutes)
	}
}

func TestUpdateInvalidPatchLeavesLedgerUnchanged(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kind := domain.WorkKindA
	if _, err := l.Update(a.ID, UpdateAssignmentPatch{WorkKind: &kind}); !errors.Is(err, ErrInvalidWorkKind) {
		t.Fatalf("expected ErrInvalidWorkKind, got %v", err)
	}

	got, err := l.Get(a.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.WorkKind != domain.WorkKindOpen || got.StartTime != "08:00" {
		t.Fatalf("failed update must not modify the record, got %s %s", got.WorkKind, got.StartTime)
	}
}

func TestUpdateNotFound(t *testing.T) {
	l := testLedger()

	notes := "x"
	if _, err := l.Update(42, UpdateAssignmentPatch{Notes: &notes}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFoundLeavesSizeUnchanged(t *testing.T) {
	l := testLedger()

	if _, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if l.Size() != 1 {
		t.Fatalf("expected size 1, got %d", l.Size())
	}

	if err := l.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Size() != 0 {
		t.Fatalf("expected size 0, got %d", l.Size())
	}
}

func TestRecordAttendancePartialUpdate(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 只打上班卡
	got, err := l.RecordAttendance(a.ID, "07:55", "", domain.StatusWorking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ActualStartTime != "07:55" || got.ActualEndTime != "" {
		t.Fatalf("unexpected actual times %q/%q", got.ActualStartTime, got.ActualEndTime)
	}
	if got.Status != domain.StatusWorking {
		t.Fatalf("expected status working, got %s", got.Status)
	}

	// 再打下班卡，上班时间保留
	got, err = l.RecordAttendance(a.ID, "", "14:10", domain.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ActualStartTime != "07:55" || got.ActualEndTime != "14:10" {
		t.Fatalf("unexpected actual times %q/%q", got.ActualStartTime, got.ActualEndTime)
	}
}

func TestRecordAttendancePermissiveTransitions(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 状态之间没有顺序约束，completed 也可以被改回 scheduled
	if _, err := l.RecordAttendance(a.ID, "", "", domain.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.RecordAttendance(a.ID, "", "", domain.StatusScheduled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := l.RecordAttendance(a.ID, "", "", domain.AssignmentStatus("done")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestRecordAttendanceRejectedForNonWorkingKinds(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindVacation}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := l.RecordAttendance(a.ID, "09:00", "", domain.StatusWorking); !errors.Is(err, ErrInvalidWorkKind) {
		t.Fatalf("expected ErrInvalidWorkKind, got %v", err)
	}
}

func TestUpdateToVacationClearsActualTimes(t *testing.T) {
	l := testLedger()

	a, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindA}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.RecordAttendance(a.ID, "08:00", "20:00", domain.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kind := domain.WorkKindVacation
	updated, err := l.Update(a.ID, UpdateAssignmentPatch{WorkKind: &kind})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ActualStartTime != "" || updated.ActualEndTime != "" {
		t.Fatalf("expected cleared actual times, got %q/%q", updated.ActualStartTime, updated.ActualEndTime)
	}
}

func TestListForDateFiltersAndOrder(t *testing.T) {
	l := testLedger()

	if _, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Create(CreateAssignmentInput{StaffID: 3, Date: "2024-10-01", WorkKind: domain.WorkKindMiddle}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-02", WorkKind: domain.WorkKindClose}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := l.ListForDate("2024-10-01", ListOptions{})
	if len(all) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(all))
	}
	if all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("expected insertion order, got %d,%d", all[0].ID, all[1].ID)
	}

	byStaff := l.ListForDate("2024-10-01", ListOptions{StaffID: 3})
	if len(byStaff) != 1 || byStaff[0].StaffID != 3 {
		t.Fatalf("unexpected staff filter result: %+v", byStaff)
	}

	bySearch := l.ListForDate("2024-10-01", ListOptions{NameSearch: "李"})
	if len(bySearch) != 1 || bySearch[0].StaffName != "李芳" {
		t.Fatalf("unexpected search result: %+v", bySearch)
	}

	forStaff := l.ListForStaff(2, ListOptions{})
	if len(forStaff) != 2 {
		t.Fatalf("expected 2 assignments for staff 2, got %d", len(forStaff))
	}
}

func TestListForDateIdempotent(t *testing.T) {
	l := testLedger()

	if _, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Create(CreateAssignmentInput{StaffID: 3, Date: "2024-10-01", WorkKind: domain.WorkKindClose}, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := l.ListForDate("2024-10-01", ListOptions{})
	second := l.ListForDate("2024-10-01", ListOptions{})
	if len(first) != len(second) {
		t.Fatalf("expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].WorkKind != second[i].WorkKind {
			t.Fatalf("expected identical sequences at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAggregates(t *testing.T) {
	l := testLedger()

	// 今天一个在岗，一个已完成的兼职班次
	a1, err := l.Create(CreateAssignmentInput{StaffID: 2, Date: "2024-10-01", WorkKind: domain.WorkKindOpen}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.RecordAttendance(a1.ID, "08:00", "", domain.StatusWorking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a2, err := l.Create(CreateAssignmentInput{StaffID: 3, Date: "2024-10-01", WorkKind: domain.WorkKindMiddle}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// middle 班休息 60 分钟：12:00~18:00 实际出勤 = 5 小时
	if _, err := l.RecordAttendance(a2.ID, "12:00", "18:00", domain.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 全职员工的完成班次不计入兼职薪酬
	a3, err := l.Create(CreateAssignmentInput{StaffID: 1, Date: "2024-10-01", WorkKind: domain.WorkKindD}, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.RecordAttendance(a3.ID, "09:00", "21:00", domain.StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := l.WorkingNowCount("2024-10-01"); got != 1 {
		t.Fatalf("expected 1 working, got %d", got)
	}

	// 5 小时 + (12 小时 - 90 分钟) = 15.5 小时
	if got := l.TotalCompletedHours(); got != 15.5 {
		t.Fatalf("expected 15.5 completed hours, got %v", got)
	}

	payroll, err := l.PartTimePayrollTotal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payroll != 5*9500 {
		t.Fatalf("expected part-time payroll 47500, got %d", payroll)
	}
}
