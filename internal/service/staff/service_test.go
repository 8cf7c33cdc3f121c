package staff

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
)

type fakeStaffRepo struct {
	members   map[string]staff.Staff
	counts    map[string]int64
	createErr error
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{members: make(map[string]staff.Staff), counts: make(map[string]int64)}
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	if f.createErr != nil {
		return staff.Staff{}, f.createErr
	}
	if s.ID == "" {
		s.ID = "staff-1"
	}
	f.members[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	s, ok := f.members[id]
	if !ok {
		return staff.Staff{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (staff.Staff, error) {
	for _, s := range f.members {
		if s.Email != nil && *s.Email == email {
			return s, nil
		}
	}
	return staff.Staff{}, pgx.ErrNoRows
}

func (f *fakeStaffRepo) ListWithEntryCounts(ctx context.Context) ([]staff.StaffWithCount, error) {
	var out []staff.StaffWithCount
	for id, s := range f.members {
		out = append(out, staff.StaffWithCount{Staff: s, EntryCount: f.counts[id]})
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	if _, ok := f.members[s.ID]; !ok {
		return staff.Staff{}, pgx.ErrNoRows
	}
	f.members[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.members[id]; !ok {
		return staff.ErrStaffNotFound
	}
	delete(f.members, id)
	return nil
}

func (f *fakeStaffRepo) UpsertByFullName(ctx context.Context, s staff.Staff) (staff.Staff, bool, error) {
	for _, existing := range f.members {
		if existing.FullName == s.FullName {
			return existing, false, nil
		}
	}
	created, err := f.Create(ctx, s)
	return created, err == nil, err
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestStaffServiceCreate(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := NewStaffService(repo)

		resp, err := svc.Create(context.Background(), staff.CreateStaffRequest{FullName: "Schalk Lotz"})
		require.NoError(t, err)

		assert.True(t, resp.Active)
		assert.Equal(t, staff.RoleUser, resp.Role)
		assert.Nil(t, resp.Email)
	})

	t.Run("explicit fields kept", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := NewStaffService(repo)

		resp, err := svc.Create(context.Background(), staff.CreateStaffRequest{
			FullName: "Yvette Gottschalk",
			Email:    strPtr("yvette@example.com"),
			Active:   boolPtr(false),
			Role:     strPtr("ADMIN"),
		})
		require.NoError(t, err)

		assert.False(t, resp.Active)
		assert.Equal(t, staff.RoleAdmin, resp.Role)
		require.NotNil(t, resp.Email)
		assert.Equal(t, "yvette@example.com", *resp.Email)
	})

	t.Run("empty email stored as null", func(t *testing.T) {
		repo := newFakeStaffRepo()
		svc := NewStaffService(repo)

		resp, err := svc.Create(context.Background(), staff.CreateStaffRequest{
			FullName: "Werner Cloete",
			Email:    strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Email)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		svc := NewStaffService(newFakeStaffRepo())

		_, err := svc.Create(context.Background(), staff.CreateStaffRequest{})
		assert.Error(t, err)
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		repo := newFakeStaffRepo()
		repo.createErr = &pgconn.PgError{Code: "23505"}
		svc := NewStaffService(repo)

		_, err := svc.Create(context.Background(), staff.CreateStaffRequest{FullName: "Schalk Lotz"})
		assert.ErrorIs(t, err, staff.ErrStaffNameExists)
	})
}

func TestStaffServiceList(t *testing.T) {
	repo := newFakeStaffRepo()
	repo.members["staff-1"] = staff.Staff{ID: "staff-1", FullName: "Schalk Lotz", Active: true, Role: staff.RoleUser}
	repo.counts["staff-1"] = 4
	svc := NewStaffService(repo)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].EntryCount)
	assert.Equal(t, int64(4), *resp[0].EntryCount)
}

func TestStaffServiceUpdate(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		svc := NewStaffService(newFakeStaffRepo())

		_, err := svc.Update(context.Background(), staff.UpdateStaffRequest{ID: "missing", FullName: "Someone"})
		assert.ErrorIs(t, err, staff.ErrStaffNotFound)
	})

	t.Run("full replace", func(t *testing.T) {
		repo := newFakeStaffRepo()
		repo.members["staff-1"] = staff.Staff{
			ID: "staff-1", FullName: "Schalk Lotz", Email: strPtr("schalk@example.com"),
			Active: true, Role: staff.RoleAdmin,
		}
		svc := NewStaffService(repo)

		resp, err := svc.Update(context.Background(), staff.UpdateStaffRequest{
			ID:       "staff-1",
			FullName: "Schalk Lotz",
		})
		require.NoError(t, err)

		// Omitted fields fall back to their defaults rather than sticking.
		assert.Nil(t, resp.Email)
		assert.True(t, resp.Active)
		assert.Equal(t, staff.RoleUser, resp.Role)
	})
}
