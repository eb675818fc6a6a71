package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/souqline/souq-backend/internal/modules/catalog"
	"github.com/souqline/souq-backend/internal/modules/customer"
	"github.com/souqline/souq-backend/internal/modules/notification"
)

// ProductCatalog is the slice of the catalog service the order workflow needs.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id int) (*catalog.Product, error)
	AdjustStock(ctx context.Context, id int, delta int) (*catalog.Product, error)
}

// CustomerDirectory resolves customer references on incoming orders.
type CustomerDirectory interface {
	Get(ctx context.Context, id int) (*customer.Customer, error)
}

// Notifier is the slice of the notification service the order workflow needs.
type Notifier interface {
	Notify(ctx context.Context, typ notification.Type, message string) (*notification.Notification, error)
}

// Service defines the order and shipping workflow business logic.
type Service interface {
	// PlaceOrder validates the cart, snapshots prices, decrements stock and
	// persists the order with its items as one unit.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)

	GetOrder(ctx context.Context, id int) (*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)

	// PatchOrder applies a shallow field patch. A status change emits an
	// order_status notification.
	PatchOrder(ctx context.Context, id int, req PatchOrderRequest) (*Order, error)

	ListOrderItems(ctx context.Context) ([]*OrderItem, error)

	// AddShippingUpdate appends a tracking entry, overwrites the order's
	// shipping status and emits a shipping_update notification.
	AddShippingUpdate(ctx context.Context, orderID int, req ShippingUpdateRequest) (*OrderShippingUpdate, error)

	// ListShippingUpdates returns an order's tracking history, newest first.
	ListShippingUpdates(ctx context.Context, orderID int) ([]*OrderShippingUpdate, error)
}

type service struct {
	repo      Repository
	products  ProductCatalog
	customers CustomerDirectory
	notifier  Notifier
}

// NewService creates a new order service.
func NewService(repo Repository, products ProductCatalog, customers CustomerDirectory, notifier Notifier) Service {
	return &service{repo: repo, products: products, customers: customers, notifier: notifier}
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}
	if req.Discount < 0 || req.Discount > 100 {
		return nil, fmt.Errorf("discount must be between 0 and 100")
	}
	if _, err := s.customers.Get(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", req.CustomerID, err)
	}

	// Resolve every product up front. A missing product aborts the whole
	// order rather than silently dropping the line.
	var items []*OrderItem
	var subtotal, profit float64
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be greater than zero for product %d", line.ProductID)
		}
		p, err := s.products.GetProduct(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, err)
		}

		lineProfit := round2((line.Price - p.WholesalePrice) * float64(line.Quantity))
		subtotal += line.Price * float64(line.Quantity)
		profit += lineProfit

		items = append(items, &OrderItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			WholesalePrice: p.WholesalePrice,
			Price:          line.Price,
			Profit:         lineProfit,
		})
	}

	subtotal = round2(subtotal)
	total := round2(subtotal - subtotal*req.Discount/100)
	profit = round2(profit)

	// Decrement stock line by line. If any line fails, restore the
	// decrements already applied so a rejected order leaves no trace.
	for i, item := range items {
		if _, err := s.products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			s.restoreStock(ctx, items[:i])
			return nil, fmt.Errorf("product %d: %w", item.ProductID, err)
		}
	}

	o := &Order{
		CustomerID:      req.CustomerID,
		Status:          StatusPending,
		ShippingAddress: req.ShippingAddress,
		ShippingCity:    req.ShippingCity,
		ShippingCountry: req.ShippingCountry,
		Subtotal:        subtotal,
		Discount:        req.Discount,
		Total:           total,
		Profit:          profit,
		Items:           items,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		s.restoreStock(ctx, items)
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.notifier.Notify(ctx, notification.TypeNewOrder,
		fmt.Sprintf("طلب جديد #%d بإجمالي $%.2f", o.ID, o.Total))
	return o, nil
}

func (s *service) restoreStock(ctx context.Context, items []*OrderItem) {
	for _, item := range items {
		s.products.AdjustStock(ctx, item.ProductID, item.Quantity)
	}
}

func (s *service) GetOrder(ctx context.Context, id int) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) PatchOrder(ctx context.Context, id int, req PatchOrderRequest) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if req.Status != nil {
		// Any status string is accepted as a direct overwrite; unknown
		// values simply carry an empty display label.
		newStatus := OrderStatus(strings.ToLower(*req.Status))
		statusChanged = newStatus != o.Status
		o.Status = newStatus
	}
	if req.TrackingNumber != nil {
		o.TrackingNumber = *req.TrackingNumber
	}
	if req.ShippingAddress != nil {
		o.ShippingAddress = *req.ShippingAddress
	}
	if req.ShippingCity != nil {
		o.ShippingCity = *req.ShippingCity
	}
	if req.ShippingCountry != nil {
		o.ShippingCountry = *req.ShippingCountry
	}
	if req.ShippingCost != nil {
		if *req.ShippingCost < 0 {
			return nil, fmt.Errorf("shippingCost must not be negative")
		}
		o.ShippingCost = *req.ShippingCost
	}
	o.UpdatedAt = time.Now()

	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}
	if statusChanged {
		s.notifier.Notify(ctx, notification.TypeOrderStatus,
			fmt.Sprintf("تم تحديث حالة الطلب #%d: %s", o.ID, StatusLabel(o.Status)))
	}
	return o, nil
}

func (s *service) ListOrderItems(ctx context.Context) ([]*OrderItem, error) {
	return s.repo.ListOrderItems(ctx)
}

func (s *service) AddShippingUpdate(ctx context.Context, orderID int, req ShippingUpdateRequest) (*OrderShippingUpdate, error) {
	if req.Status == "" {
		return nil, fmt.Errorf("status is required")
	}
	o, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	u := &OrderShippingUpdate{
		OrderID:     orderID,
		Status:      ShippingStatus(req.Status),
		Location:    req.Location,
		Description: req.Description,
		Timestamp:   time.Now(),
	}
	if err := s.repo.CreateShippingUpdate(ctx, u); err != nil {
		return nil, err
	}

	o.ShippingStatus = u.Status
	if o.TrackingNumber == "" {
		o.TrackingNumber = generateTrackingNumber()
	}
	o.UpdatedAt = time.Now()
	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notification.TypeShippingUpdate,
		fmt.Sprintf("تحديث شحن للطلب #%d: %s", o.ID, ShippingStatusLabel(u.Status)))
	return u, nil
}

func (s *service) ListShippingUpdates(ctx context.Context, orderID int) ([]*OrderShippingUpdate, error) {
	if _, err := s.repo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListShippingUpdates(ctx, orderID)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateTrackingNumber creates a human-readable tracking number: TRK-YYYYMMDD-XXXX
func generateTrackingNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("TRK-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	if v < 0 {
		return -round2(-v)
	}
	return float64(int(v*100+0.5)) / 100
}
