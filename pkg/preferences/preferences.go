package preferences

// UserPreferences holds the user's display and notification settings.
type UserPreferences struct {
	Currency           string `json:"currency"`
	Theme              string `json:"theme"`
	NotificationsOn    bool   `json:"notificationsOn"`
	BudgetAlertsOn     bool   `json:"budgetAlertsOn"`
	FirstDayOfWeek     string `json:"firstDayOfWeek"`
	DateFormat         string `json:"dateFormat"`
	HideBalanceOnStart bool   `json:"hideBalanceOnStart"`
}

// DefaultPreferences are applied until the user changes anything.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Currency:        "USD",
		Theme:           "system",
		NotificationsOn: true,
		BudgetAlertsOn:  true,
		FirstDayOfWeek:  "sunday",
		DateFormat:      "MM/DD/YYYY",
	}
}
