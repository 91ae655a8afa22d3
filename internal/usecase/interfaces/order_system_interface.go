package interfaces

import (
	"context"

	"efipay-shopify-bridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IOrderSystem abstracts the external e-commerce platform (Shopify) holding
// authoritative order and financial state.
//
// Read side: the two lookup shapes the resolver strategies need. Write side:
// the two mutation styles; exactly one is used per deployment.
type IOrderSystem interface {
	// FindOrdersByName returns all orders whose display name matches
	// exactly (e.g. "#1007"), in the order system's own API ordering.
	FindOrdersByName(ctx context.Context, name string) ([]entities.Order, error)

	// ListRecentOrders returns up to limit orders, newest first, with only
	// the fields the resolver needs.
	ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error)

	// CreateSaleTransaction appends a successful sale transaction for the
	// given amount to the order's transaction history.
	CreateSaleTransaction(ctx context.Context, orderID uint64, amount decimal.Decimal, currency string) error

	// MarkOrderPaid sets the order's financial status to paid directly.
	MarkOrderPaid(ctx context.Context, orderID uint64) error
}
