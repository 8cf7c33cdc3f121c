package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/entry"
	"github.com/wfhtracker/wfh-backend-go/internal/handler/http/response"
	entryService "github.com/wfhtracker/wfh-backend-go/internal/service/entry"
)

type EntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type entryHandlerImpl struct {
	entryService entryService.EntryService
}

func NewEntryHandler(entryService entryService.EntryService) EntryHandler {
	return &entryHandlerImpl{
		entryService: entryService,
	}
}

func (h *entryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req entry.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.entryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Created(w, result)
}

func (h *entryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := entryService.ListQuery{
		StaffID:  q.Get("staffId"),
		ReasonID: q.Get("reasonId"),
		DateFrom: q.Get("dateFrom"),
		DateTo:   q.Get("dateTo"),
	}

	results, err := h.entryService.List(r.Context(), query)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, results)
}

func (h *entryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req entry.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = id

	result, err := h.entryService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, result)
}

func (h *entryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.entryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.Success(w, map[string]string{"message": "WFH entry deleted"})
}
