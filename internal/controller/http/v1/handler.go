package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/docx_converter/internal/domain"
)

type ConversionsRepository interface {
	Conversions(ctx context.Context, limit, offset uint64) ([]*domain.Conversion, int, error)
}

type ConversionsHandler struct {
	conversionsRepository ConversionsRepository
}

func NewConversionsHandler(conversionsRepository ConversionsRepository) *ConversionsHandler {
	return &ConversionsHandler{
		conversionsRepository: conversionsRepository,
	}
}

// Routes is mounted under /api/v1.
func (h *ConversionsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/conversions", h.GetConversions)
	r.Get("/conversions/export", h.ExportConversions)
	return r
}

type GetConversionsResponse struct {
	Conversions []*domain.Conversion `json:"conversions"`
	Pagination  Pagination           `json:"pagination"`
}

func (h *ConversionsHandler) GetConversions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conversions, total, err := h.conversionsRepository.Conversions(r.Context(), limit, (page-1)*limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if conversions == nil {
		conversions = []*domain.Conversion{}
	}

	data, err := json.Marshal(GetConversionsResponse{
		Conversions: conversions,
		Pagination:  newPagination(page, limit, total),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *ConversionsHandler) ExportConversions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conversions, _, err := h.conversionsRepository.Conversions(r.Context(), limit, (page-1)*limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := csvutil.Marshal(conversions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="conversions.csv"`)
	w.Write(data)
}
