package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/entry"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
)

// ListQuery carries the raw entry-list filters from the query string.
// Unparseable dates are ignored rather than rejected.
type ListQuery struct {
	StaffID  string
	ReasonID string
	DateFrom string
	DateTo   string
}

type EntryService interface {
	Create(ctx context.Context, req entry.CreateEntryRequest) (entry.EntryResponse, error)
	List(ctx context.Context, query ListQuery) ([]entry.EntryResponse, error)
	Update(ctx context.Context, req entry.UpdateEntryRequest) (entry.EntryResponse, error)
	Delete(ctx context.Context, id string) error
}

type entryServiceImpl struct {
	entryRepo entry.EntryRepository
}

func NewEntryService(entryRepo entry.EntryRepository) EntryService {
	return &entryServiceImpl{entryRepo: entryRepo}
}

func (s *entryServiceImpl) Create(ctx context.Context, req entry.CreateEntryRequest) (entry.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date) // validated above

	createdBy := "system"
	if caller, _ := callerFromContext(ctx); caller != "" {
		createdBy = caller
	}

	created, err := s.entryRepo.Create(ctx, entry.WfhEntry{
		StaffID:        req.StaffID,
		ReasonID:       emptyToNil(req.ReasonID),
		FreeTextReason: emptyToNil(req.FreeTextReason),
		Date:           date,
		Hours:          req.Hours,
		Notes:          req.Notes,
		CreatedBy:      createdBy,
	})
	if err != nil {
		return entry.EntryResponse{}, mapWriteError(err)
	}

	withRefs, err := s.entryRepo.GetWithRefsByID(ctx, created.ID)
	if err != nil {
		return entry.EntryResponse{}, err
	}

	return entry.NewEntryResponse(withRefs), nil
}

func (s *entryServiceImpl) List(ctx context.Context, query ListQuery) ([]entry.EntryResponse, error) {
	filter := entry.ListFilter{
		StaffID:  query.StaffID,
		ReasonID: query.ReasonID,
	}
	if t, err := time.Parse("2006-01-02", query.DateFrom); err == nil {
		filter.DateFrom = &t
	}
	if t, err := time.Parse("2006-01-02", query.DateTo); err == nil {
		filter.DateTo = &t
	}

	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]entry.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, entry.NewEntryResponse(e))
	}

	return responses, nil
}

func (s *entryServiceImpl) Update(ctx context.Context, req entry.UpdateEntryRequest) (entry.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return entry.EntryResponse{}, err
	}

	existing, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry.EntryResponse{}, entry.ErrEntryNotFound
		}
		return entry.EntryResponse{}, err
	}

	if err := s.authorizeMutation(ctx, existing); err != nil {
		return entry.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := s.entryRepo.Update(ctx, entry.WfhEntry{
		ID:             req.ID,
		StaffID:        req.StaffID,
		ReasonID:       emptyToNil(req.ReasonID),
		FreeTextReason: emptyToNil(req.FreeTextReason),
		Date:           date,
		Hours:          req.Hours,
		Notes:          req.Notes,
	}); err != nil {
		return entry.EntryResponse{}, mapWriteError(err)
	}

	withRefs, err := s.entryRepo.GetWithRefsByID(ctx, req.ID)
	if err != nil {
		return entry.EntryResponse{}, err
	}

	return entry.NewEntryResponse(withRefs), nil
}

func (s *entryServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entry.ErrEntryNotFound
		}
		return err
	}

	if err := s.authorizeMutation(ctx, existing); err != nil {
		return err
	}

	return s.entryRepo.Delete(ctx, id)
}

// authorizeMutation lets admins touch any entry; everyone else only the
// entries they created.
func (s *entryServiceImpl) authorizeMutation(ctx context.Context, e entry.WfhEntry) error {
	caller, role := callerFromContext(ctx)
	if role == staff.RoleAdmin {
		return nil
	}
	if caller == "" || e.CreatedBy != caller {
		return entry.ErrEntryForbidden
	}
	return nil
}

func callerFromContext(ctx context.Context) (staffID string, role staff.Role) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", ""
	}
	id, _ := claims["staff_id"].(string)
	r, _ := claims["role"].(string)
	return id, staff.Role(r)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation on (staff_id, date)
			return entry.ErrDuplicateEntry
		case "23503": // foreign_key_violation
			return entry.ErrInvalidReference
		}
	}
	return fmt.Errorf("failed to write entry: %w", err)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
