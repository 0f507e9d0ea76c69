package app

import (
	"github.com/gorilla/mux"
	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Register).Methods("POST")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/transaction/summary", deps.TransactionHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/transaction/totals", deps.TransactionHandler.GetCategoryTotals).Methods("GET")

	// Budgets
	r.HandleFunc("/api/budget", deps.BudgetHandler.Register).Methods("POST")
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budget/alerts", deps.BudgetHandler.GetAlerts).Methods("GET")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Update).Methods("PUT")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/budget/{id}/progress", deps.BudgetHandler.GetProgress).Methods("GET")

	// Savings goals
	r.HandleFunc("/api/savings", deps.SavingsHandler.Register).Methods("POST")
	r.HandleFunc("/api/savings", deps.SavingsHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/savings/total", deps.SavingsHandler.GetTotal).Methods("GET")
	r.HandleFunc("/api/savings/{id}", deps.SavingsHandler.Update).Methods("PUT")
	r.HandleFunc("/api/savings/{id}", deps.SavingsHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/savings/{id}/contribution", deps.SavingsHandler.Contribute).Methods("POST")
	r.HandleFunc("/api/savings/{id}/progress", deps.SavingsHandler.GetProgress).Methods("GET")

	// Preferences and onboarding
	r.HandleFunc("/api/preferences", deps.PreferencesHandler.Get).Methods("GET")
	r.HandleFunc("/api/preferences", deps.PreferencesHandler.Update).Methods("PUT")
	r.HandleFunc("/api/preferences", deps.PreferencesHandler.Reset).Methods("DELETE")
	r.HandleFunc("/api/onboarding", deps.PreferencesHandler.GetOnboarding).Methods("GET")
	r.HandleFunc("/api/onboarding", deps.PreferencesHandler.CompleteOnboarding).Methods("POST")

	// Reference data
	r.HandleFunc("/api/tips", deps.TipsHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/tips/{id}", deps.TipsHandler.Get).Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")
}
