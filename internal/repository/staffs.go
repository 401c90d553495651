package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/storelink-dev/backoffice/backend/internal/domain"
	"github.com/storelink-dev/backoffice/backend/internal/schedule"
)

func (r *Repository) CreateStaff(staff *domain.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO staffs (name, position, hourly_wage, monthly_wage, employment_type, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, version
	`

	args := []any{staff.Name, staff.Position, staff.HourlyWage, staff.MonthlyWage, staff.EmploymentType, staff.Phone, staff.Email}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.ID, &staff.CreatedAt, &staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetStaffByID(id int64) (*domain.Staff, error) {
	query := `
		SELECT name, position, hourly_wage, monthly_wage, employment_type, phone, email, created_at, version
		FROM staffs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	staff := &domain.Staff{
		ID: id,
	}

	dst := []any{&staff.Name, &staff.Position, &staff.HourlyWage, &staff.MonthlyWage, &staff.EmploymentType, &staff.Phone, &staff.Email, &staff.CreatedAt, &staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) GetAllStaffs() ([]*domain.Staff, error) {
	query := `
		SELECT id, name, position, hourly_wage, monthly_wage, employment_type, phone, email, created_at, version
		FROM staffs ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staffs := make([]*domain.Staff, 0)
	for rows.Next() {
		staff := &domain.Staff{}
		dst := []any{&staff.ID, &staff.Name, &staff.Position, &staff.HourlyWage, &staff.MonthlyWage, &staff.EmploymentType, &staff.Phone, &staff.Email, &staff.CreatedAt, &staff.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		staffs = append(staffs, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffs, nil
}

func (r *Repository) UpdateStaff(staff *domain.Staff) error {
	query := `
		UPDATE staffs
		SET
			name = $1,
			position = $2,
			hourly_wage = $3,
			monthly_wage = $4,
			employment_type = $5,
			phone = $6,
			email = $7,
			version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{staff.Name, staff.Position, staff.HourlyWage, staff.MonthlyWage, staff.EmploymentType, staff.Phone, staff.Email, staff.ID, staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.CreatedAt, &staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(id int64) error {
	query := `
		DELETE FROM staffs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// Roster 返回排班核心所需的花名册适配器。
// 适配器把 sql.ErrNoRows 翻译成核心的 ErrNotFound。
func (r *Repository) Roster() schedule.Roster {
	return &dbRoster{repo: r}
}

type dbRoster struct {
	repo *Repository
}

func (dr *dbRoster) GetStaffByID(id int64) (*domain.Staff, error) {
	staff, err := dr.repo.GetStaffByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return staff, nil
}

func (dr *dbRoster) GetAllStaffs() ([]*domain.Staff, error) {
	return dr.repo.GetAllStaffs()
}
