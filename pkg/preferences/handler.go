package preferences

import (
	"encoding/json"
	"net/http"
)

type PreferencesUpdateDTO struct {
	Currency           *string `json:"currency"`
	Theme              *string `json:"theme"`
	NotificationsOn    *bool   `json:"notificationsOn"`
	BudgetAlertsOn     *bool   `json:"budgetAlertsOn"`
	FirstDayOfWeek     *string `json:"firstDayOfWeek"`
	DateFormat         *string `json:"dateFormat"`
	HideBalanceOnStart *bool   `json:"hideBalanceOnStart"`
}

type OnboardingDTO struct {
	Completed bool `json:"completed"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	prefs, err := h.service.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(prefs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto PreferencesUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), Update{
		Currency:           dto.Currency,
		Theme:              dto.Theme,
		NotificationsOn:    dto.NotificationsOn,
		BudgetAlertsOn:     dto.BudgetAlertsOn,
		FirstDayOfWeek:     dto.FirstDayOfWeek,
		DateFormat:         dto.DateFormat,
		HideBalanceOnStart: dto.HideBalanceOnStart,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	defaults, err := h.service.Reset(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(defaults); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	done, err := h.service.OnboardingCompleted(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(OnboardingDTO{Completed: done}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.service.CompleteOnboarding(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
