package schedule

import (
	"errors"
	"testing"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
)

func testVacationLedger() *VacationLedger {
	return NewVacationLedger(testRoster())
}

func TestRequestVacation(t *testing.T) {
	vl := testVacationLedger()

	r, err := vl.Request(2, "2024-10-05", "2024-10-06", domain.VacationSick, "感冒发烧", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Status != domain.VacationPending {
		t.Fatalf("expected pending status, got %s", r.Status)
	}
	if r.StaffName != "李芳" {
		t.Fatalf("expected staff name to be denormalized, got %q", r.StaffName)
	}
	if r.RequestDate != "2024-10-01" {
		t.Fatalf("expected request date from caller-supplied now, got %q", r.RequestDate)
	}
}

func TestRequestVacationInvalidRange(t *testing.T) {
	vl := testVacationLedger()

	if _, err := vl.Request(2, "2024-10-06", "2024-10-05", domain.VacationAnnual, "回乡", testNow); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	// 单日休假（起止同一天）是合法的
	if _, err := vl.Request(2, "2024-10-05", "2024-10-05", domain.VacationAnnual, "回乡", testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecideVacation(t *testing.T) {
	vl := testVacationLedger()

	r, err := vl.Request(2, "2024-10-05", "2024-10-06", domain.VacationSick, "感冒发烧", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decided, err := vl.Decide(r.ID, true, "王伟", "2024-10-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decided.Status != domain.VacationApproved {
		t.Fatalf("expected approved, got %s", decided.Status)
	}
	if decided.ApprovedBy != "王伟" || decided.ApprovedDate != "2024-10-02" {
		t.Fatalf("expected approver stamp, got %q/%q", decided.ApprovedBy, decided.ApprovedDate)
	}

	// 同一申请不能被处理第二次
	if _, err := vl.Decide(r.ID, false, "王伟", "2024-10-03"); !errors.Is(err, ErrAlreadyDecided) {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
}

func TestDecideVacationNotFound(t *testing.T) {
	vl := testVacationLedger()

	if _, err := vl.Decide(42, true, "王伟", "2024-10-02"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteVacationUnconditional(t *testing.T) {
	vl := testVacationLedger()

	r, err := vl.Request(2, "2024-10-05", "2024-10-06", domain.VacationSick, "感冒发烧", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := vl.Decide(r.ID, false, "王伟", "2024-10-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 已驳回的申请同样可以删除
	if err := vl.Delete(r.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := vl.Delete(r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPendingCount(t *testing.T) {
	vl := testVacationLedger()

	r1, err := vl.Request(2, "2024-10-05", "2024-10-06", domain.VacationSick, "感冒发烧", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := vl.Request(3, "2024-10-07", "2024-10-07", domain.VacationPersonal, "家中有事", testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := vl.PendingCount(); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}

	if _, err := vl.Decide(r1.ID, true, "王伟", "2024-10-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := vl.PendingCount(); got != 1 {
		t.Fatalf("expected 1 pending, got %d", got)
	}
}
