package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
)

// stubStaffService lets each test pin the behavior of a single call.
type stubStaffService struct {
	createFn func(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error)
	listFn   func(ctx context.Context) ([]staff.StaffResponse, error)
	updateFn func(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubStaffService) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubStaffService) List(ctx context.Context) ([]staff.StaffResponse, error) {
	return s.listFn(ctx)
}

func (s *stubStaffService) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	return s.updateFn(ctx, req)
}

func (s *stubStaffService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestStaffHandler_Create(t *testing.T) {
	svc := &stubStaffService{
		createFn: func(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
			return staff.StaffResponse{ID: "staff-1", FullName: req.FullName, Active: true, Role: staff.RoleUser}, nil
		},
	}
	handler := NewStaffHandler(svc)

	body, _ := json.Marshal(map[string]string{"fullName": "Schalk Lotz"})
	req := httptest.NewRequest(http.MethodPost, "/api/staff", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp staff.StaffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "staff-1", resp.ID)
	assert.Equal(t, "Schalk Lotz", resp.FullName)
	assert.True(t, resp.Active)
}

func TestStaffHandler_CreateInvalidBody(t *testing.T) {
	handler := NewStaffHandler(&stubStaffService{})

	req := httptest.NewRequest(http.MethodPost, "/api/staff", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid request format", body["error"])
}

func TestStaffHandler_CreateConflict(t *testing.T) {
	svc := &stubStaffService{
		createFn: func(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
			return staff.StaffResponse{}, staff.ErrStaffNameExists
		},
	}
	handler := NewStaffHandler(svc)

	body, _ := json.Marshal(map[string]string{"fullName": "Schalk Lotz"})
	req := httptest.NewRequest(http.MethodPost, "/api/staff", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStaffHandler_ListReturnsBareArray(t *testing.T) {
	svc := &stubStaffService{
		listFn: func(ctx context.Context) ([]staff.StaffResponse, error) {
			return []staff.StaffResponse{
				{ID: "staff-1", FullName: "Schalk Lotz"},
				{ID: "staff-2", FullName: "Yvette Gottschalk"},
			}, nil
		},
	}
	handler := NewStaffHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/staff", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Clients expect a top-level array, not an envelope.
	var resp []staff.StaffResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Yvette Gottschalk", resp[1].FullName)
}

func TestStaffHandler_UpdateUsesPathID(t *testing.T) {
	var gotID string
	svc := &stubStaffService{
		updateFn: func(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
			gotID = req.ID
			return staff.StaffResponse{ID: req.ID, FullName: req.FullName}, nil
		},
	}
	handler := NewStaffHandler(svc)

	r := chi.NewRouter()
	r.Put("/api/staff/{id}", handler.Update)

	body, _ := json.Marshal(map[string]string{"fullName": "Werner Cloete"})
	req := httptest.NewRequest(http.MethodPut, "/api/staff/staff-3", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "staff-3", gotID)
}

func TestStaffHandler_DeleteNotFound(t *testing.T) {
	svc := &stubStaffService{
		deleteFn: func(ctx context.Context, id string) error {
			return staff.ErrStaffNotFound
		},
	}
	handler := NewStaffHandler(svc)

	r := chi.NewRouter()
	r.Delete("/api/staff/{id}", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/staff/missing", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
