package tips

import "context"

type Service interface {
	List(ctx context.Context) []FinancialTip
	ByCategory(ctx context.Context, category string) []FinancialTip
	ByDifficulty(ctx context.Context, difficulty string) []FinancialTip
	Get(ctx context.Context, id string) (FinancialTip, bool)
}

type ServiceImpl struct {
	tips []FinancialTip
}

func NewService() *ServiceImpl {
	return &ServiceImpl{tips: Catalog()}
}

func (s *ServiceImpl) List(ctx context.Context) []FinancialTip {
	out := make([]FinancialTip, len(s.tips))
	copy(out, s.tips)
	return out
}

func (s *ServiceImpl) ByCategory(ctx context.Context, category string) []FinancialTip {
	matched := make([]FinancialTip, 0, len(s.tips))
	for _, t := range s.tips {
		if t.Category == category {
			matched = append(matched, t)
		}
	}
	return matched
}

func (s *ServiceImpl) ByDifficulty(ctx context.Context, difficulty string) []FinancialTip {
	matched := make([]FinancialTip, 0, len(s.tips))
	for _, t := range s.tips {
		if t.Difficulty == difficulty {
			matched = append(matched, t)
		}
	}
	return matched
}

func (s *ServiceImpl) Get(ctx context.Context, id string) (FinancialTip, bool) {
	for _, t := range s.tips {
		if t.ID == id {
			return t, true
		}
	}
	return FinancialTip{}, false
}
