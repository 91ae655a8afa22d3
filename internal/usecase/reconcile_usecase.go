package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"efipay-shopify-bridge/internal/domain/entities"
	"efipay-shopify-bridge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrAmbiguousReference       = errors.New("ambiguous order reference")
	ErrUnresolvableReference    = errors.New("unresolvable order reference")
	ErrMissingAmount            = errors.New("no amount available for sale transaction")
	ErrOrderSystemNotConfigured = errors.New("order system not configured")
)

// LookupStrategy selects how an order reference maps to an order.
type LookupStrategy string

const (
	LookupByName   LookupStrategy = "name"   // display-name search, e.g. "#1007"
	LookupByNumber LookupStrategy = "number" // numeric scan over a bounded recent window
)

// AmbiguityPolicy decides what happens when a display-name search returns
// more than one order. Shopify order names are unique per shop, so "first"
// is safe in practice; "fail" exists for shops with imported legacy orders.
type AmbiguityPolicy string

const (
	AmbiguityFirst AmbiguityPolicy = "first"
	AmbiguityFail  AmbiguityPolicy = "fail"
)

// MutationStyle selects the order mutation applied on an approved payment.
type MutationStyle string

const (
	MutateTransaction MutationStyle = "transaction" // create a sale transaction
	MutateMarkPaid    MutationStyle = "mark_paid"   // set financial_status=paid
)

const (
	defaultLookupWindow = 50
	maxLookupWindow     = 250 // Shopify page cap
)

// ReconcilerConfig is fixed per deployment; strategies are never combined
// within a single reconciliation attempt.
type ReconcilerConfig struct {
	Strategy  LookupStrategy
	Window    int // recent-order window for LookupByNumber
	Ambiguity AmbiguityPolicy
	Mutation  MutationStyle
}

// ReconcilerConfigFromEnv reads ORDER_LOOKUP_STRATEGY, ORDER_LOOKUP_WINDOW,
// ORDER_AMBIGUITY_POLICY and ORDER_MUTATION_STYLE.
func ReconcilerConfigFromEnv() ReconcilerConfig {
	cfg := ReconcilerConfig{
		Strategy:  LookupByName,
		Window:    defaultLookupWindow,
		Ambiguity: AmbiguityFirst,
		Mutation:  MutateTransaction,
	}
	if v := strings.TrimSpace(os.Getenv("ORDER_LOOKUP_STRATEGY")); v == string(LookupByNumber) {
		cfg.Strategy = LookupByNumber
	}
	if v := cast.ToInt(os.Getenv("ORDER_LOOKUP_WINDOW")); v > 0 {
		cfg.Window = v
	}
	if cfg.Window > maxLookupWindow {
		cfg.Window = maxLookupWindow
	}
	if v := strings.TrimSpace(os.Getenv("ORDER_AMBIGUITY_POLICY")); v == string(AmbiguityFail) {
		cfg.Ambiguity = AmbiguityFail
	}
	if v := strings.TrimSpace(os.Getenv("ORDER_MUTATION_STYLE")); v == string(MutateMarkPaid) {
		cfg.Mutation = MutateMarkPaid
	}
	return cfg
}

// IWebhookReconcileUseCase applies one gateway payment event to order state.
//
// The returned error is non-nil only for retry-worthy downstream failures;
// every terminal classification (not approved, already paid, unresolvable)
// comes back as a result with a nil error so the webhook can be acked.

type IWebhookReconcileUseCase interface {
	Reconcile(ctx context.Context, ev entities.PaymentEvent) (entities.ReconciliationResult, error)
}

type WebhookReconcileUseCase struct {
	orders interfaces.IOrderSystem
	ledger interfaces.IProcessedEventStore
	cfg    ReconcilerConfig
}

var _ IWebhookReconcileUseCase = (*WebhookReconcileUseCase)(nil)

func NewWebhookReconcileUseCase(orders interfaces.IOrderSystem, ledger interfaces.IProcessedEventStore, cfg ReconcilerConfig) *WebhookReconcileUseCase {
	return &WebhookReconcileUseCase{orders: orders, ledger: ledger, cfg: cfg}
}

func (u *WebhookReconcileUseCase) Reconcile(ctx context.Context, ev entities.PaymentEvent) (entities.ReconciliationResult, error) {
	log.Printf("[webhook][usecase] reconcile start status=%s raw_status=%q reference=%q ref_source=%s", ev.Status, ev.RawStatus, ev.OrderReference, ev.ReferenceSource)

	if !ev.IsApproved() {
		log.Printf("[webhook][usecase] payment not approved, no order mutation raw_status=%q", ev.RawStatus)
		return entities.ReconciliationResult{Outcome: entities.OutcomeSkippedNotApproved}, nil
	}

	if strings.TrimSpace(ev.OrderReference) == "" {
		// Approved payment with nothing to join on: terminal, reported,
		// never retried. Retrying cannot make a reference appear.
		log.Printf("[webhook][usecase] approved payment with no resolvable reference raw_status=%q", ev.RawStatus)
		return entities.ReconciliationResult{Outcome: entities.OutcomeFailedUnresolvable}, nil
	}

	if u.orders == nil {
		log.Printf("[webhook][usecase] order system not configured reference=%q", ev.OrderReference)
		return entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream}, ErrOrderSystemNotConfigured
	}

	order, err := u.resolve(ctx, ev.OrderReference)
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrAmbiguousReference), errors.Is(err, ErrUnresolvableReference):
		log.Printf("[webhook][usecase] reference did not resolve reference=%q err=%v", ev.OrderReference, err)
		return entities.ReconciliationResult{Outcome: entities.OutcomeFailedUnresolvable}, nil
	case err != nil:
		log.Printf("[webhook][usecase] order lookup failed reference=%q err=%v", ev.OrderReference, err)
		return entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream}, err
	}
	log.Printf("[webhook][usecase] order resolved reference=%q order_id=%d order_name=%s financial_status=%s", ev.OrderReference, order.ID, order.Name, order.FinancialStatus)

	if order.IsPaid() {
		// The already-paid check is the idempotency mechanism: at-least-once
		// delivery from the gateway must not double-credit the order.
		log.Printf("[webhook][usecase] order already paid, no new mutation order_id=%d", order.ID)
		return entities.ReconciliationResult{Outcome: entities.OutcomeSkippedAlreadyPaid, OrderID: order.ID, OrderName: order.Name}, nil
	}

	if u.ledger != nil {
		first, err := u.ledger.MarkProcessed(ctx, eventFingerprint(ev, order.ID))
		if err != nil {
			log.Printf("[webhook][usecase] ledger check-and-set failed order_id=%d err=%v", order.ID, err)
			return entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream}, err
		}
		if !first {
			log.Printf("[webhook][usecase] event already recorded in ledger, no new mutation order_id=%d", order.ID)
			return entities.ReconciliationResult{Outcome: entities.OutcomeSkippedAlreadyPaid, OrderID: order.ID, OrderName: order.Name}, nil
		}
	}

	result := entities.ReconciliationResult{Outcome: entities.OutcomeApplied, OrderID: order.ID, OrderName: order.Name}

	switch u.cfg.Mutation {
	case MutateMarkPaid:
		if err := u.orders.MarkOrderPaid(ctx, order.ID); err != nil {
			log.Printf("[webhook][usecase] mark-paid failed order_id=%d err=%v", order.ID, err)
			return entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream}, err
		}
		log.Printf("[webhook][usecase] order marked paid order_id=%d", order.ID)
	default:
		amount, err := saleAmount(ev, order)
		if err != nil {
			log.Printf("[webhook][usecase] no usable amount order_id=%d err=%v", order.ID, err)
			return entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream}, err
		}
		if err := u.orders.CreateSaleTransaction(ctx, order.ID, amount, order.Currency); err != nil {
			log.Printf("[webhook][usecase] sale transaction failed order_id=%d amount=%s err=%v", order.ID, amount, err)
			return entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream}, err
		}
		result.AppliedAmount = &amount
		log.Printf("[webhook][usecase] sale transaction created order_id=%d amount=%s", order.ID, amount)
	}

	log.Printf("[webhook][usecase] reconcile applied order_id=%d order_name=%s", order.ID, order.Name)
	return result, nil
}

// resolve maps a reference to exactly one order using the configured
// strategy.
func (u *WebhookReconcileUseCase) resolve(ctx context.Context, reference string) (entities.Order, error) {
	if u.cfg.Strategy == LookupByNumber {
		return u.resolveByNumber(ctx, reference)
	}
	return u.resolveByName(ctx, reference)
}

// resolveByName normalizes the reference to Shopify's display-name form
// ("#1007") and searches for an exact name match.
func (u *WebhookReconcileUseCase) resolveByName(ctx context.Context, reference string) (entities.Order, error) {
	name := strings.TrimSpace(reference)
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}

	orders, err := u.orders.FindOrdersByName(ctx, name)
	if err != nil {
		return entities.Order{}, err
	}
	if len(orders) == 0 {
		return entities.Order{}, fmt.Errorf("%w: no order named %s", ErrOrderNotFound, name)
	}
	if len(orders) > 1 && u.cfg.Ambiguity == AmbiguityFail {
		return entities.Order{}, fmt.Errorf("%w: %d orders named %s", ErrAmbiguousReference, len(orders), name)
	}
	// More than one match: take the first in API ordering.
	return orders[0], nil
}

// resolveByNumber scans a bounded window of recent orders for an exact
// numeric order-number match. Orders older than the window intentionally
// resolve to NotFound rather than paging the whole history on every webhook.
func (u *WebhookReconcileUseCase) resolveByNumber(ctx context.Context, reference string) (entities.Order, error) {
	number, err := strconv.Atoi(strings.TrimSpace(reference))
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: reference %q is not numeric", ErrUnresolvableReference, reference)
	}

	orders, err := u.orders.ListRecentOrders(ctx, u.cfg.Window)
	if err != nil {
		return entities.Order{}, err
	}
	for _, o := range orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return entities.Order{}, fmt.Errorf("%w: order number %d not in the %d most recent orders", ErrOrderNotFound, number, u.cfg.Window)
}

// saleAmount prefers the gateway-reported amount and falls back to the
// order's own recorded total. A financial transaction is never written with
// a fabricated zero amount.
func saleAmount(ev entities.PaymentEvent, order entities.Order) (decimal.Decimal, error) {
	if ev.Amount != nil && ev.Amount.IsPositive() {
		return *ev.Amount, nil
	}
	if order.TotalPrice != nil && order.TotalPrice.IsPositive() {
		return *order.TotalPrice, nil
	}
	return decimal.Decimal{}, ErrMissingAmount
}

// eventFingerprint identifies one real-world payment for the ledger. EfiPay
// exposes no stable transaction id across schema versions, so the
// fingerprint is content-addressed from the fields that survive
// normalization plus the resolved order.
func eventFingerprint(ev entities.PaymentEvent, orderID uint64) string {
	amount := ""
	if ev.Amount != nil {
		amount = ev.Amount.String()
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s|%s|%s", orderID, ev.OrderReference, amount, strings.ToLower(ev.RawStatus))))
	return hex.EncodeToString(sum[:])
}
