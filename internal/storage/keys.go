package storage

// Storage keys. Each key owns a single JSON document in the records table.
const (
	KeyTransactions        = "transactions"
	KeyBudgets             = "budgets"
	KeySavingsGoals        = "savings_goals"
	KeyUserPreferences     = "user_preferences"
	KeyOnboardingCompleted = "onboarding_completed"

	// Reserved for external collaborators; nothing here reads it.
	KeyDebtAlerts = "debt_alerts"
)
