package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	ID                 string          `json:"id,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Description        string          `json:"description,omitempty"`
	Date               *time.Time      `json:"date,omitempty"`
	Type               string          `json:"type"`
	IsRecurring        bool            `json:"isRecurring,omitempty"`
	RecurringFrequency string          `json:"recurringFrequency,omitempty"`
}

type TransactionUpdateDTO struct {
	Amount             *decimal.Decimal `json:"amount"`
	Category           *string          `json:"category"`
	Description        *string          `json:"description"`
	Date               *time.Time       `json:"date"`
	Type               *string          `json:"type"`
	IsRecurring        *bool            `json:"isRecurring"`
	RecurringFrequency *string          `json:"recurringFrequency"`
}

type SummaryDTO struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	draft := Draft{
		Amount:             dto.Amount,
		Category:           dto.Category,
		Description:        dto.Description,
		Type:               Type(dto.Type),
		IsRecurring:        dto.IsRecurring,
		RecurringFrequency: Frequency(dto.RecurringFrequency),
	}
	if dto.Date != nil {
		draft.Date = *dto.Date
	}

	created, err := h.service.Add(r.Context(), draft)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(transactionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dateRange, err := rangeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var txs []Transaction
	switch {
	case dateRange != nil:
		txs, err = h.service.ByDateRange(r.Context(), *dateRange)
	case r.URL.Query().Get("category") != "":
		txs, err = h.service.ByCategory(r.Context(), r.URL.Query().Get("category"))
	default:
		txs, err = h.service.List(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, transactionToDTO(tx))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto TransactionUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := Update{
		Amount:      dto.Amount,
		Category:    dto.Category,
		Description: dto.Description,
		Date:        dto.Date,
		IsRecurring: dto.IsRecurring,
	}
	if dto.Type != nil {
		t := Type(*dto.Type)
		update.Type = &t
	}
	if dto.RecurringFrequency != nil {
		f := Frequency(*dto.RecurringFrequency)
		update.RecurringFrequency = &f
	}

	found, err := h.service.Update(r.Context(), id, update)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	found, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dateRange, err := rangeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	income, err := h.service.TotalFor(r.Context(), TypeIncome, dateRange)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	expenses, err := h.service.TotalFor(r.Context(), TypeExpense, dateRange)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := SummaryDTO{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetCategoryTotals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	t := Type(r.URL.Query().Get("type"))
	if !t.Valid() {
		http.Error(w, "type query parameter must be income or expense", http.StatusBadRequest)
		return
	}
	dateRange, err := rangeFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	totals, err := h.service.CategoryTotals(r.Context(), t, dateRange)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(totals); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func rangeFromQuery(r *http.Request) (*DateRange, error) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam == "" && toParam == "" {
		return nil, nil
	}
	from, err := time.Parse(time.RFC3339, fromParam)
	if err != nil {
		return nil, errors.New("from query parameter must be an RFC3339 timestamp")
	}
	to, err := time.Parse(time.RFC3339, toParam)
	if err != nil {
		return nil, errors.New("to query parameter must be an RFC3339 timestamp")
	}
	return &DateRange{Start: from, End: to}, nil
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrMissingCategory) || errors.Is(err, ErrInvalidType)
}

func transactionToDTO(tx Transaction) TransactionDTO {
	date := tx.Date
	return TransactionDTO{
		ID:                 tx.ID,
		Amount:             tx.Amount,
		Category:           tx.Category,
		Description:        tx.Description,
		Date:               &date,
		Type:               string(tx.Type),
		IsRecurring:        tx.IsRecurring,
		RecurringFrequency: string(tx.RecurringFrequency),
	}
}
