package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, full_name, email, active, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, full_name, email, active, role, created_at, updated_at
	`

	var result staff.Staff
	err := q.QueryRow(ctx, query, uuid.NewString(), s.FullName, s.Email, s.Active, s.Role).Scan(
		&result.ID,
		&result.FullName,
		&result.Email,
		&result.Active,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return result, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, active, role, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var result staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.FullName,
		&result.Email,
		&result.Active,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return result, nil
}

// GetByEmail implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByEmail(ctx context.Context, email string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, active, role, created_at, updated_at
		FROM staff
		WHERE email = $1
	`

	var result staff.Staff
	err := q.QueryRow(ctx, query, email).Scan(
		&result.ID,
		&result.FullName,
		&result.Email,
		&result.Active,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to get staff member by email: %w", err)
	}

	return result, nil
}

// ListWithEntryCounts implements staff.StaffRepository.
func (r *staffRepositoryImpl) ListWithEntryCounts(ctx context.Context) ([]staff.StaffWithCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.full_name, s.email, s.active, s.role, s.created_at, s.updated_at,
			COUNT(e.id) AS entry_count
		FROM staff s
		LEFT JOIN wfh_entries e ON e.staff_id = s.id
		GROUP BY s.id
		ORDER BY s.full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var members []staff.StaffWithCount
	for rows.Next() {
		var m staff.StaffWithCount
		err := rows.Scan(
			&m.ID,
			&m.FullName,
			&m.Email,
			&m.Active,
			&m.Role,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.EntryCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET full_name = $2, email = $3, active = $4, role = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, full_name, email, active, role, created_at, updated_at
	`

	var result staff.Staff
	err := q.QueryRow(ctx, query, s.ID, s.FullName, s.Email, s.Active, s.Role).Scan(
		&result.ID,
		&result.FullName,
		&result.Email,
		&result.Active,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return result, nil
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM staff WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}

	return nil
}

// UpsertByFullName implements staff.StaffRepository.
func (r *staffRepositoryImpl) UpsertByFullName(ctx context.Context, s staff.Staff) (staff.Staff, bool, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO staff (id, full_name, email, active, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (full_name) DO NOTHING
		RETURNING id, full_name, email, active, role, created_at, updated_at
	`

	rows, err := q.Query(ctx, insert, uuid.NewString(), s.FullName, s.Email, s.Active, s.Role)
	if err != nil {
		return staff.Staff{}, false, fmt.Errorf("failed to upsert staff member: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var result staff.Staff
		if err := rows.Scan(
			&result.ID,
			&result.FullName,
			&result.Email,
			&result.Active,
			&result.Role,
			&result.CreatedAt,
			&result.UpdatedAt,
		); err != nil {
			return staff.Staff{}, false, fmt.Errorf("failed to scan staff member: %w", err)
		}
		if err := rows.Err(); err != nil {
			return staff.Staff{}, false, err
		}
		return result, true, nil
	}
	if err := rows.Err(); err != nil {
		return staff.Staff{}, false, err
	}
	rows.Close()

	// Conflict: the row already exists, fetch it.
	query := `
		SELECT id, full_name, email, active, role, created_at, updated_at
		FROM staff
		WHERE full_name = $1
	`
	var existing staff.Staff
	err = q.QueryRow(ctx, query, s.FullName).Scan(
		&existing.ID,
		&existing.FullName,
		&existing.Email,
		&existing.Active,
		&existing.Role,
		&existing.CreatedAt,
		&existing.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, false, fmt.Errorf("failed to get existing staff member: %w", err)
	}

	return existing, false, nil
}
