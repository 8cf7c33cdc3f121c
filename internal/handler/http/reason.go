package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/reason"
	"github.com/wfhtracker/wfh-backend-go/internal/handler/http/response"
	reasonService "github.com/wfhtracker/wfh-backend-go/internal/service/reason"
)

type ReasonHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type reasonHandlerImpl struct {
	reasonService reasonService.ReasonService
}

func NewReasonHandler(reasonService reasonService.ReasonService) ReasonHandler {
	return &reasonHandlerImpl{
		reasonService: reasonService,
	}
}

func (h *reasonHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req reason.CreateReasonRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.reasonService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, result)
}

func (h *reasonHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	includeAll := r.URL.Query().Get("includeAll") == "true"

	results, err := h.reasonService.List(r.Context(), includeAll)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, results)
}

func (h *reasonHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req reason.UpdateReasonRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = id

	result, err := h.reasonService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

func (h *reasonHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.reasonService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]string{"message": "Reason deleted"})
}
