package shopify

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"efipay-shopify-bridge/internal/domain/entities"
	"efipay-shopify-bridge/internal/usecase/interfaces"

	goshopify "github.com/bold-commerce/go-shopify/v4"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var (
	ErrMissingShopDomain = errors.New("missing SHOPIFY_STORE_DOMAIN")
	ErrMissingAdminToken = errors.New("missing SHOPIFY_ADMIN_API_TOKEN")
)

const defaultAPIVersion = "2024-01"

// orderFields keeps webhook-path listings cheap: only what the resolver and
// reconciler read.
const orderFields = "id,name,order_number,financial_status,total_price,currency"

// OrderSystem implements IOrderSystem on the Shopify Admin API.

type OrderSystem struct {
	client *goshopify.Client
}

var _ interfaces.IOrderSystem = (*OrderSystem)(nil)

// NewOrderSystemFromEnv builds the client from SHOPIFY_STORE_DOMAIN,
// SHOPIFY_ADMIN_API_TOKEN and SHOPIFY_ADMIN_API_VERSION (default 2024-01).
func NewOrderSystemFromEnv() (*OrderSystem, error) {
	domain := strings.TrimSpace(os.Getenv("SHOPIFY_STORE_DOMAIN"))
	token := strings.TrimSpace(os.Getenv("SHOPIFY_ADMIN_API_TOKEN"))
	version := strings.TrimSpace(os.Getenv("SHOPIFY_ADMIN_API_VERSION"))
	if version == "" {
		version = defaultAPIVersion
	}

	if domain == "" {
		log.Printf("[orders][shopify] missing SHOPIFY_STORE_DOMAIN")
		return nil, ErrMissingShopDomain
	}
	if token == "" {
		log.Printf("[orders][shopify] missing SHOPIFY_ADMIN_API_TOKEN")
		return nil, ErrMissingAdminToken
	}

	client, err := goshopify.NewClient(
		goshopify.App{},
		domain,
		token,
		goshopify.WithVersion(version),
		goshopify.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
	if err != nil {
		log.Printf("[orders][shopify] failed creating client err=%v", err)
		return nil, err
	}
	log.Printf("[orders][shopify] client initialized domain=%s api_version=%s", domain, version)

	return &OrderSystem{client: client}, nil
}

// orderListOptions covers the query parameters the Admin API accepts on
// orders.json; the stock list options lack the name filter the resolver
// relies on.
type orderListOptions struct {
	Name   string `url:"name,omitempty"`
	Status string `url:"status,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Order  string `url:"order,omitempty"`
	Fields string `url:"fields,omitempty"`
}

func (s *OrderSystem) FindOrdersByName(ctx context.Context, name string) ([]entities.Order, error) {
	log.Printf("[orders][shopify] find-by-name start name=%s", name)
	orders, err := s.client.Order.List(ctx, orderListOptions{
		Name:   name,
		Status: "any",
		Fields: orderFields,
	})
	if err != nil {
		log.Printf("[orders][shopify] find-by-name failed name=%s err=%v", name, err)
		return nil, err
	}
	log.Printf("[orders][shopify] find-by-name success name=%s matches=%d", name, len(orders))
	return toOrders(orders), nil
}

func (s *OrderSystem) ListRecentOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	log.Printf("[orders][shopify] list-recent start limit=%d", limit)
	orders, err := s.client.Order.List(ctx, orderListOptions{
		Status: "any",
		Limit:  limit,
		Order:  "created_at desc",
		Fields: orderFields,
	})
	if err != nil {
		log.Printf("[orders][shopify] list-recent failed limit=%d err=%v", limit, err)
		return nil, err
	}
	log.Printf("[orders][shopify] list-recent success limit=%d returned=%d", limit, len(orders))
	return toOrders(orders), nil
}

func (s *OrderSystem) CreateSaleTransaction(ctx context.Context, orderID uint64, amount decimal.Decimal, currency string) error {
	log.Printf("[orders][shopify] create-transaction start order_id=%d amount=%s currency=%s", orderID, amount, currency)
	tx := goshopify.Transaction{
		Kind:     "sale",
		Status:   "success",
		Amount:   &amount,
		Currency: currency,
	}
	created, err := s.client.Transaction.Create(ctx, orderID, tx)
	if err != nil {
		log.Printf("[orders][shopify] create-transaction failed order_id=%d err=%v", orderID, err)
		return err
	}
	log.Printf("[orders][shopify] create-transaction success order_id=%d transaction_id=%d", orderID, created.Id)
	return nil
}

func (s *OrderSystem) MarkOrderPaid(ctx context.Context, orderID uint64) error {
	log.Printf("[orders][shopify] mark-paid start order_id=%d", orderID)
	_, err := s.client.Order.Update(ctx, goshopify.Order{
		Id:              orderID,
		FinancialStatus: goshopify.OrderFinancialStatus(entities.OrderFinancialStatusPaid),
	})
	if err != nil {
		log.Printf("[orders][shopify] mark-paid failed order_id=%d err=%v", orderID, err)
		return err
	}
	log.Printf("[orders][shopify] mark-paid success order_id=%d", orderID)
	return nil
}

func toOrders(orders []goshopify.Order) []entities.Order {
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}

func toOrder(o goshopify.Order) entities.Order {
	return entities.Order{
		ID:              o.Id,
		Name:            o.Name,
		OrderNumber:     o.OrderNumber,
		Currency:        o.Currency,
		FinancialStatus: entities.OrderFinancialStatus(cast.ToString(o.FinancialStatus)),
		TotalPrice:      o.TotalPrice,
	}
}
