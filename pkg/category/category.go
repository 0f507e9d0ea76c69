package category

// Category is a known transaction or savings category with its display
// metadata. The ledger itself accepts free-form category strings; this
// catalog is reference data for UI collaborators.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type Group string

const (
	GroupExpense Group = "expense"
	GroupIncome  Group = "income"
	GroupSavings Group = "savings"
)

var expenseCategories = []Category{
	{Name: "Food & Dining", Icon: "restaurant", Color: "#f59e0b"},
	{Name: "Transportation", Icon: "car", Color: "#8b5cf6"},
	{Name: "Shopping", Icon: "bag", Color: "#06b6d4"},
	{Name: "Entertainment", Icon: "game-controller", Color: "#ec4899"},
	{Name: "Bills & Utilities", Icon: "receipt", Color: "#ef4444"},
	{Name: "Healthcare", Icon: "medical", Color: "#ef4444"},
	{Name: "Education", Icon: "school", Color: "#06b6d4"},
	{Name: "Travel", Icon: "airplane", Color: "#90e0ef"},
	{Name: "Other", Icon: "ellipsis-horizontal", Color: "#64748b"},
}

var incomeCategories = []Category{
	{Name: "Salary", Icon: "briefcase", Color: "#10b981"},
	{Name: "Freelance", Icon: "laptop", Color: "#06b6d4"},
	{Name: "Investment", Icon: "trending-up", Color: "#06b6d4"},
	{Name: "Business", Icon: "storefront", Color: "#f59e0b"},
	{Name: "Other", Icon: "cash", Color: "#64748b"},
}

var savingsCategories = []Category{
	{Name: "Emergency Fund", Icon: "shield-checkmark", Color: "#10b981"},
	{Name: "Vacation", Icon: "airplane", Color: "#90e0ef"},
	{Name: "Car", Icon: "car", Color: "#8b5cf6"},
	{Name: "House", Icon: "home", Color: "#06b6d4"},
	{Name: "Education", Icon: "school", Color: "#f59e0b"},
	{Name: "Retirement", Icon: "time", Color: "#06b6d4"},
	{Name: "Other", Icon: "wallet", Color: "#64748b"},
}

// ForGroup returns the catalog for a group, or false for an unknown group.
func ForGroup(g Group) ([]Category, bool) {
	switch g {
	case GroupExpense:
		return expenseCategories, true
	case GroupIncome:
		return incomeCategories, true
	case GroupSavings:
		return savingsCategories, true
	default:
		return nil, false
	}
}
