package transaction

import (
	"context"
	"slices"
)

// StubRepository is an in-memory Repository for tests, also used by the
// budget and savings test suites to feed the ledger.
type StubRepository struct {
	txs []Transaction
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) List(ctx context.Context) ([]Transaction, error) {
	return slices.Clone(s.txs), nil
}

func (s *StubRepository) Prepend(ctx context.Context, tx Transaction) error {
	s.txs = append([]Transaction{tx}, s.txs...)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, id string, fn func(Transaction) Transaction) (bool, error) {
	for i, tx := range s.txs {
		if tx.ID == id {
			s.txs[i] = fn(tx)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, tx := range s.txs {
		if tx.ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.txs = nil
}
