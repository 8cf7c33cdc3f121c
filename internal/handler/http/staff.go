package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
	"github.com/wfhtracker/wfh-backend-go/internal/handler/http/response"
	staffService "github.com/wfhtracker/wfh-backend-go/internal/service/staff"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staffService.StaffService
}

func NewStaffHandler(staffService staffService.StaffService) StaffHandler {
	return &staffHandlerImpl{
		staffService: staffService,
	}
}

func (h *staffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, result)
}

func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.staffService.List(r.Context())
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, results)
}

func (h *staffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req staff.UpdateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = id

	result, err := h.staffService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

func (h *staffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]string{"message": "Staff member deleted"})
}
