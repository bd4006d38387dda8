package service

import (
	"context"

	"github.com/expedibox/colis-service/internal/domain/model"
	"github.com/expedibox/colis-service/internal/repository"
)

// StockLedger is the single gateway for stock arithmetic. Stock is a
// plain signed counter: Reserve and Restore always succeed, and a
// negative result is a backorder signal to report, never an error.
//
// The ledger is constructed over whatever DBTX the caller is using, so
// a parcel reconcile drives it inside the reconcile transaction.
type StockLedger struct {
	products repository.ProductRepositoryInterface
}

// NewStockLedger creates a ledger over the given product repository.
func NewStockLedger(products repository.ProductRepositoryInterface) *StockLedger {
	return &StockLedger{products: products}
}

// Reserve decrements a product's stock by quantity and returns the
// post-operation value. No floor check.
func (l *StockLedger) Reserve(ctx context.Context, productID int64, quantity int) (int, error) {
	if l.products == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return l.products.AdjustStock(ctx, productID, -quantity)
}

// Restore increments a product's stock by quantity and returns the
// post-operation value.
func (l *StockLedger) Restore(ctx context.Context, productID int64, quantity int) (int, error) {
	if l.products == nil {
		return 0, ErrRepositoryNotConfigured
	}
	return l.products.AdjustStock(ctx, productID, quantity)
}

// CheckNegative returns the warning datum for a product whose stock is
// below zero, or nil when stock is non-negative. Advisory only: the
// caller reports it to the user and never blocks the write.
func (l *StockLedger) CheckNegative(ctx context.Context, productID int64) (*model.NegativeStock, error) {
	if l.products == nil {
		return nil, ErrRepositoryNotConfigured
	}
	nom, stock, err := l.products.NameAndStock(ctx, productID)
	if err != nil {
		return nil, err
	}
	if stock >= 0 {
		return nil, nil
	}
	return &model.NegativeStock{Nom: nom, Stock: stock}, nil
}
