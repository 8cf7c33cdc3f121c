package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/auth"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/jwt"
)

type AuthService interface {
	// Login issues an access token for a known, active staff email. There
	// is no credential check; identity is asserted by email alone.
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
}

type authServiceImpl struct {
	staffRepository staff.StaffRepository
	jwtService      jwt.Service
}

func NewAuthService(staffRepository staff.StaffRepository, jwtService jwt.Service) AuthService {
	return &authServiceImpl{
		staffRepository: staffRepository,
		jwtService:      jwtService,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	// Normalize before validating so padded or mixed-case input is accepted.
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := req.Validate(); err != nil {
		return nil, err
	}

	member, err := s.staffRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to look up staff by email: %w", err)
	}

	if !member.Active {
		return nil, auth.ErrStaffInactive
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(member.ID, member.Email, member.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Staff: staff.StaffResponse{
			ID:        member.ID,
			FullName:  member.FullName,
			Email:     member.Email,
			Active:    member.Active,
			Role:      member.Role,
			CreatedAt: member.CreatedAt,
		},
	}, nil
}
