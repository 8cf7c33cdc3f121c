package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
)

type StaffService interface {
	Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error)
	List(ctx context.Context) ([]staff.StaffResponse, error)
	Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type staffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) StaffService {
	return &staffServiceImpl{staffRepo: staffRepo}
}

func (s *staffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	entity := staff.Staff{
		FullName: req.FullName,
		Email:    normalizeEmail(req.Email),
		Active:   true,
		Role:     staff.RoleUser,
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}
	if req.Role != nil {
		entity.Role = staff.Role(*req.Role)
	}

	created, err := s.staffRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.StaffResponse{}, staff.ErrStaffNameExists
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff member: %w", err)
	}

	return toResponse(created, nil), nil
}

func (s *staffServiceImpl) List(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.ListWithEntryCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		count := m.EntryCount
		responses = append(responses, toResponse(m.Staff, &count))
	}

	return responses, nil
}

func (s *staffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffResponse{}, staff.ErrStaffNotFound
		}
		return staff.StaffResponse{}, err
	}

	entity := staff.Staff{
		ID:       req.ID,
		FullName: req.FullName,
		Email:    normalizeEmail(req.Email),
		Active:   true,
		Role:     staff.RoleUser,
	}
	if req.Active != nil {
		entity.Active = *req.Active
	}
	if req.Role != nil {
		entity.Role = staff.Role(*req.Role)
	}

	updated, err := s.staffRepo.Update(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return staff.StaffResponse{}, staff.ErrStaffNameExists
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to update staff member: %w", err)
	}

	return toResponse(updated, nil), nil
}

func (s *staffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.staffRepo.Delete(ctx, id)
}

// normalizeEmail treats an empty email string as absent, matching the form
// submissions which post "" for the optional field.
func normalizeEmail(email *string) *string {
	if email == nil || *email == "" {
		return nil
	}
	return email
}

func toResponse(m staff.Staff, entryCount *int64) staff.StaffResponse {
	return staff.StaffResponse{
		ID:         m.ID,
		FullName:   m.FullName,
		Email:      m.Email,
		Active:     m.Active,
		Role:       m.Role,
		CreatedAt:  m.CreatedAt,
		EntryCount: entryCount,
	}
}
