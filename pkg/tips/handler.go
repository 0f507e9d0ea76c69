package tips

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var tips []FinancialTip
	query := r.URL.Query()
	switch {
	case query.Has("category"):
		tips = h.service.ByCategory(r.Context(), query.Get("category"))
	case query.Has("difficulty"):
		tips = h.service.ByDifficulty(r.Context(), query.Get("difficulty"))
	default:
		tips = h.service.List(r.Context())
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tips); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	tip, found := h.service.Get(r.Context(), id)
	if !found {
		http.Error(w, "Tip not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tip); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
