package reason

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/reason"
)

type ReasonService interface {
	Create(ctx context.Context, req reason.CreateReasonRequest) (reason.ReasonResponse, error)
	// List returns active reasons only unless includeAll is set.
	List(ctx context.Context, includeAll bool) ([]reason.ReasonResponse, error)
	Update(ctx context.Context, req reason.UpdateReasonRequest) (reason.ReasonResponse, error)
	Delete(ctx context.Context, id string) error
}

type reasonServiceImpl struct {
	reasonRepo reason.ReasonRepository
}

func NewReasonService(reasonRepo reason.ReasonRepository) ReasonService {
	return &reasonServiceImpl{reasonRepo: reasonRepo}
}

func (s *reasonServiceImpl) Create(ctx context.Context, req reason.CreateReasonRequest) (reason.ReasonResponse, error) {
	if err := req.Validate(); err != nil {
		return reason.ReasonResponse{}, err
	}

	entity := reason.Reason{
		Name:     req.Name,
		IsActive: true,
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	created, err := s.reasonRepo.Create(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return reason.ReasonResponse{}, reason.ErrReasonNameExists
		}
		return reason.ReasonResponse{}, fmt.Errorf("failed to create reason: %w", err)
	}

	return toResponse(created, nil), nil
}

func (s *reasonServiceImpl) List(ctx context.Context, includeAll bool) ([]reason.ReasonResponse, error) {
	reasons, err := s.reasonRepo.ListWithEntryCounts(ctx, !includeAll)
	if err != nil {
		return nil, err
	}

	responses := make([]reason.ReasonResponse, 0, len(reasons))
	for _, rc := range reasons {
		count := rc.EntryCount
		responses = append(responses, toResponse(rc.Reason, &count))
	}

	return responses, nil
}

func (s *reasonServiceImpl) Update(ctx context.Context, req reason.UpdateReasonRequest) (reason.ReasonResponse, error) {
	if err := req.Validate(); err != nil {
		return reason.ReasonResponse{}, err
	}

	if _, err := s.reasonRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reason.ReasonResponse{}, reason.ErrReasonNotFound
		}
		return reason.ReasonResponse{}, err
	}

	entity := reason.Reason{
		ID:       req.ID,
		Name:     req.Name,
		IsActive: true,
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	updated, err := s.reasonRepo.Update(ctx, entity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return reason.ReasonResponse{}, reason.ErrReasonNameExists
		}
		return reason.ReasonResponse{}, fmt.Errorf("failed to update reason: %w", err)
	}

	return toResponse(updated, nil), nil
}

func (s *reasonServiceImpl) Delete(ctx context.Context, id string) error {
	return s.reasonRepo.Delete(ctx, id)
}

func toResponse(rs reason.Reason, entryCount *int64) reason.ReasonResponse {
	return reason.ReasonResponse{
		ID:         rs.ID,
		Name:       rs.Name,
		IsActive:   rs.IsActive,
		CreatedAt:  rs.CreatedAt,
		EntryCount: entryCount,
	}
}
