package transaction

import (
	"context"
	"fmt"
	"slices"

	"github.com/jasonxnas/elegant-expense-tracker-gkbzje/internal/storage"
)

type Repository interface {
	// List returns all transactions, newest insertion first.
	List(ctx context.Context) ([]Transaction, error)
	Prepend(ctx context.Context, tx Transaction) error
	// Update applies fn to the transaction with the given id and reports
	// whether a matching transaction existed.
	Update(ctx context.Context, id string, fn func(Transaction) Transaction) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StoreRepository keeps the ledger as a single record collection under the
// transactions storage key.
type StoreRepository struct {
	store *storage.Store[[]Transaction]
}

func NewStoreRepository(registry *storage.Registry) (*StoreRepository, error) {
	store, err := storage.StoreFor(registry, storage.KeyTransactions, []Transaction{})
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions store: %w", err)
	}
	return &StoreRepository{store: store}, nil
}

func (r *StoreRepository) List(ctx context.Context) ([]Transaction, error) {
	txs, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(txs), nil
}

func (r *StoreRepository) Prepend(ctx context.Context, tx Transaction) error {
	_, err := r.store.Update(ctx, func(txs []Transaction) []Transaction {
		return append([]Transaction{tx}, txs...)
	})
	return err
}

func (r *StoreRepository) Update(ctx context.Context, id string, fn func(Transaction) Transaction) (bool, error) {
	found := false
	_, err := r.store.Update(ctx, func(txs []Transaction) []Transaction {
		next := make([]Transaction, len(txs))
		for i, tx := range txs {
			if tx.ID == id {
				tx = fn(tx)
				found = true
			}
			next[i] = tx
		}
		return next
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	found := false
	_, err := r.store.Update(ctx, func(txs []Transaction) []Transaction {
		next := make([]Transaction, 0, len(txs))
		for _, tx := range txs {
			if tx.ID == id {
				found = true
				continue
			}
			next = append(next, tx)
		}
		return next
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
