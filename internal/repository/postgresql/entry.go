package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/entry"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) entry.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

const entryWithRefsColumns = `
	e.id, e.staff_id, e.reason_id, e.free_text_reason, e.date, e.hours,
	e.notes, e.created_by, e.created_at, e.updated_at,
	s.full_name, r.name
`

func scanEntryWithRefs(row interface{ Scan(dest ...any) error }) (entry.EntryWithRefs, error) {
	var e entry.EntryWithRefs
	var reasonName *string
	err := row.Scan(
		&e.ID,
		&e.StaffID,
		&e.ReasonID,
		&e.FreeTextReason,
		&e.Date,
		&e.Hours,
		&e.Notes,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.Staff.FullName,
		&reasonName,
	)
	if err != nil {
		return entry.EntryWithRefs{}, err
	}
	e.Staff.ID = e.StaffID
	if e.ReasonID != nil && reasonName != nil {
		e.Reason = &entry.ReasonRef{ID: *e.ReasonID, Name: *reasonName}
	}
	return e, nil
}

// Create implements entry.EntryRepository.
func (r *entryRepositoryImpl) Create(ctx context.Context, e entry.WfhEntry) (entry.WfhEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_entries (id, staff_id, reason_id, free_text_reason, date, hours, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, staff_id, reason_id, free_text_reason, date, hours, notes, created_by, created_at, updated_at
	`

	var result entry.WfhEntry
	err := q.QueryRow(ctx, query,
		uuid.NewString(), e.StaffID, e.ReasonID, e.FreeTextReason, e.Date, e.Hours, e.Notes, e.CreatedBy,
	).Scan(
		&result.ID,
		&result.StaffID,
		&result.ReasonID,
		&result.FreeTextReason,
		&result.Date,
		&result.Hours,
		&result.Notes,
		&result.CreatedBy,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return entry.WfhEntry{}, fmt.Errorf("failed to create entry: %w", err)
	}

	return result, nil
}

// GetByID implements entry.EntryRepository.
func (r *entryRepositoryImpl) GetByID(ctx context.Context, id string) (entry.WfhEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, reason_id, free_text_reason, date, hours, notes, created_by, created_at, updated_at
		FROM wfh_entries
		WHERE id = $1
	`

	var result entry.WfhEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.StaffID,
		&result.ReasonID,
		&result.FreeTextReason,
		&result.Date,
		&result.Hours,
		&result.Notes,
		&result.CreatedBy,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return entry.WfhEntry{}, fmt.Errorf("failed to get entry: %w", err)
	}

	return result, nil
}

// GetWithRefsByID implements entry.EntryRepository.
func (r *entryRepositoryImpl) GetWithRefsByID(ctx context.Context, id string) (entry.EntryWithRefs, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryWithRefsColumns + `
		FROM wfh_entries e
		JOIN staff s ON e.staff_id = s.id
		LEFT JOIN reasons r ON e.reason_id = r.id
		WHERE e.id = $1
	`

	result, err := scanEntryWithRefs(q.QueryRow(ctx, query, id))
	if err != nil {
		return entry.EntryWithRefs{}, fmt.Errorf("failed to get entry: %w", err)
	}

	return result, nil
}

// List implements entry.EntryRepository.
func (r *entryRepositoryImpl) List(ctx context.Context, filter entry.ListFilter) ([]entry.EntryWithRefs, error) {
	q := GetQuerier(ctx, r.db)

	// Build dynamic filter
	query := `
		SELECT ` + entryWithRefsColumns + `
		FROM wfh_entries e
		JOIN staff s ON e.staff_id = s.id
		LEFT JOIN reasons r ON e.reason_id = r.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.StaffID != "" {
		query += fmt.Sprintf(" AND e.staff_id = $%d", argIdx)
		args = append(args, filter.StaffID)
		argIdx++
	}

	if filter.ReasonID != "" {
		query += fmt.Sprintf(" AND e.reason_id = $%d", argIdx)
		args = append(args, filter.ReasonID)
		argIdx++
	}

	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND e.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND e.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	query += " ORDER BY e.date DESC, e.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []entry.EntryWithRefs
	for rows.Next() {
		e, err := scanEntryWithRefs(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// Update implements entry.EntryRepository.
func (r *entryRepositoryImpl) Update(ctx context.Context, e entry.WfhEntry) (entry.WfhEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wfh_entries
		SET staff_id = $2, reason_id = $3, free_text_reason = $4, date = $5,
			hours = $6, notes = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id, staff_id, reason_id, free_text_reason, date, hours, notes, created_by, created_at, updated_at
	`

	var result entry.WfhEntry
	err := q.QueryRow(ctx, query, e.ID, e.StaffID, e.ReasonID, e.FreeTextReason, e.Date, e.Hours, e.Notes).Scan(
		&result.ID,
		&result.StaffID,
		&result.ReasonID,
		&result.FreeTextReason,
		&result.Date,
		&result.Hours,
		&result.Notes,
		&result.CreatedBy,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return entry.WfhEntry{}, fmt.Errorf("failed to update entry: %w", err)
	}

	return result, nil
}

// Delete implements entry.EntryRepository.
func (r *entryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM wfh_entries WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return entry.ErrEntryNotFound
	}

	return nil
}

// Upsert implements entry.EntryRepository. The (staff_id, date) constraint
// makes re-seeding a no-op for existing rows.
func (r *entryRepositoryImpl) Upsert(ctx context.Context, e entry.WfhEntry) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wfh_entries (id, staff_id, reason_id, free_text_reason, date, hours, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (staff_id, date) DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query,
		uuid.NewString(), e.StaffID, e.ReasonID, e.FreeTextReason, e.Date, e.Hours, e.Notes, e.CreatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to upsert entry: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}
