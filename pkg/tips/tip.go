package tips

// FinancialTip is a curated piece of money advice surfaced alongside the
// trackers. The catalog is static; tips carry no user state.
type FinancialTip struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	ReadTime   string `json:"readTime"`
}

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

var catalog = []FinancialTip{
	{
		ID:         "1",
		Title:      "The 50/30/20 Rule",
		Content:    "Allocate 50% of your income to needs, 30% to wants, and 20% to savings and debt repayment. This simple framework helps you maintain a balanced budget without tracking every penny.",
		Category:   "budgeting",
		Difficulty: DifficultyBeginner,
		ReadTime:   "2 min",
	},
	{
		ID:         "2",
		Title:      "Build an Emergency Fund",
		Content:    "Aim to save 3-6 months of living expenses in an easily accessible account. Start small with a goal of $500, then build up gradually. This fund protects you from unexpected expenses without going into debt.",
		Category:   "saving",
		Difficulty: DifficultyBeginner,
		ReadTime:   "3 min",
	},
	{
		ID:         "3",
		Title:      "Track Every Expense",
		Content:    "For at least one month, record every single purchase. You'll discover spending patterns you never noticed and find easy places to cut back. Awareness is the first step to better money management.",
		Category:   "budgeting",
		Difficulty: DifficultyBeginner,
		ReadTime:   "2 min",
	},
	{
		ID:         "4",
		Title:      "Pay Off High-Interest Debt First",
		Content:    "Focus extra payments on debts with the highest interest rates, typically credit cards. This avalanche method saves you the most money in interest over time compared to other payoff strategies.",
		Category:   "debt",
		Difficulty: DifficultyIntermediate,
		ReadTime:   "4 min",
	},
	{
		ID:         "5",
		Title:      "Automate Your Savings",
		Content:    "Set up automatic transfers to your savings account right after payday. Treating savings like a recurring bill makes it effortless and removes the temptation to spend the money first.",
		Category:   "saving",
		Difficulty: DifficultyBeginner,
		ReadTime:   "2 min",
	},
}

// Catalog returns all known tips in display order.
func Catalog() []FinancialTip {
	out := make([]FinancialTip, len(catalog))
	copy(out, catalog)
	return out
}
