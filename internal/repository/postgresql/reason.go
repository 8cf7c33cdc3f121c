package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/reason"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
)

type reasonRepositoryImpl struct {
	db *database.DB
}

func NewReasonRepository(db *database.DB) reason.ReasonRepository {
	return &reasonRepositoryImpl{db: db}
}

// Create implements reason.ReasonRepository.
func (r *reasonRepositoryImpl) Create(ctx context.Context, rs reason.Reason) (reason.Reason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reasons (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, is_active, created_at, updated_at
	`

	var result reason.Reason
	err := q.QueryRow(ctx, query, uuid.NewString(), rs.Name, rs.IsActive).Scan(
		&result.ID,
		&result.Name,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return reason.Reason{}, fmt.Errorf("failed to create reason: %w", err)
	}

	return result, nil
}

// GetByID implements reason.ReasonRepository.
func (r *reasonRepositoryImpl) GetByID(ctx context.Context, id string) (reason.Reason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM reasons
		WHERE id = $1
	`

	var result reason.Reason
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return reason.Reason{}, fmt.Errorf("failed to get reason: %w", err)
	}

	return result, nil
}

// ListWithEntryCounts implements reason.ReasonRepository.
func (r *reasonRepositoryImpl) ListWithEntryCounts(ctx context.Context, activeOnly bool) ([]reason.ReasonWithCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rs.id, rs.name, rs.is_active, rs.created_at, rs.updated_at,
			COUNT(e.id) AS entry_count
		FROM reasons rs
		LEFT JOIN wfh_entries e ON e.reason_id = rs.id
		WHERE $1 = false OR rs.is_active = true
		GROUP BY rs.id
		ORDER BY rs.name ASC
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list reasons: %w", err)
	}
	defer rows.Close()

	var reasons []reason.ReasonWithCount
	for rows.Next() {
		var rc reason.ReasonWithCount
		err := rows.Scan(
			&rc.ID,
			&rc.Name,
			&rc.IsActive,
			&rc.CreatedAt,
			&rc.UpdatedAt,
			&rc.EntryCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reason: %w", err)
		}
		reasons = append(reasons, rc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reasons, nil
}

// Update implements reason.ReasonRepository.
func (r *reasonRepositoryImpl) Update(ctx context.Context, rs reason.Reason) (reason.Reason, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reasons
		SET name = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, is_active, created_at, updated_at
	`

	var result reason.Reason
	err := q.QueryRow(ctx, query, rs.ID, rs.Name, rs.IsActive).Scan(
		&result.ID,
		&result.Name,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return reason.Reason{}, fmt.Errorf("failed to update reason: %w", err)
	}

	return result, nil
}

// Delete implements reason.ReasonRepository.
func (r *reasonRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM reasons WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete reason: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return reason.ErrReasonNotFound
	}

	return nil
}

// UpsertByName implements reason.ReasonRepository.
func (r *reasonRepositoryImpl) UpsertByName(ctx context.Context, rs reason.Reason) (reason.Reason, bool, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO reasons (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, is_active, created_at, updated_at
	`

	rows, err := q.Query(ctx, insert, uuid.NewString(), rs.Name, rs.IsActive)
	if err != nil {
		return reason.Reason{}, false, fmt.Errorf("failed to upsert reason: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		var result reason.Reason
		if err := rows.Scan(
			&result.ID,
			&result.Name,
			&result.IsActive,
			&result.CreatedAt,
			&result.UpdatedAt,
		); err != nil {
			return reason.Reason{}, false, fmt.Errorf("failed to scan reason: %w", err)
		}
		if err := rows.Err(); err != nil {
			return reason.Reason{}, false, err
		}
		return result, true, nil
	}
	if err := rows.Err(); err != nil {
		return reason.Reason{}, false, err
	}
	rows.Close()

	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM reasons
		WHERE name = $1
	`
	var existing reason.Reason
	err = q.QueryRow(ctx, query, rs.Name).Scan(
		&existing.ID,
		&existing.Name,
		&existing.IsActive,
		&existing.CreatedAt,
		&existing.UpdatedAt,
	)
	if err != nil {
		return reason.Reason{}, false, fmt.Errorf("failed to get existing reason: %w", err)
	}

	return existing, false, nil
}
