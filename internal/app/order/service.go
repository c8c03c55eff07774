package order

import (
	"context"

	"food-ordering/internal/adapter/logger"
	"food-ordering/internal/domain"
	"food-ordering/internal/interfaces"
)

type Service struct {
	menu   interfaces.MenuRepository
	orders interfaces.OrderRepository
	logger logger.Logger
}

func NewService(menu interfaces.MenuRepository, orders interfaces.OrderRepository, logger logger.Logger) *Service {
	return &Service{
		menu:   menu,
		orders: orders,
		logger: logger,
	}
}

// CreateOrder validates the request, resolves each line against the
// menu, snapshots current names and prices into the order, and
// persists it. No store is touched until every check has passed.
func (s *Service) CreateOrder(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	// Structural validation comes first: a request with malformed
	// customer fields or an empty items list is rejected before any
	// menu lookup happens.
	if err := validateCommand(cmd); err != nil {
		s.logger.Error("validation_failed", "Order request validation failed", "", nil, err)
		return nil, err
	}

	items := make([]domain.OrderItem, len(cmd.Items))
	for i, line := range cmd.Items {
		menuItem, ok := s.menu.Get(line.MenuItemID)
		if !ok {
			return nil, domain.WrapError(domain.ErrMenuItemNotFound,
				"Menu item with ID %d not found", line.MenuItemID)
		}

		if !menuItem.Available {
			return nil, domain.WrapError(domain.ErrItemUnavailable,
				"Menu item '%s' is not available", menuItem.Name)
		}

		items[i] = domain.OrderItem{
			MenuItemID:   menuItem.ID,
			MenuItemName: menuItem.Name,
			Quantity:     line.Quantity,
			UnitPrice:    menuItem.Price,
		}
	}

	order, err := domain.NewOrder(cmd.Customer, items)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, err
	}

	order.ID = s.orders.Insert(*order)

	s.logger.Debug("order_created", "Order persisted", "", map[string]interface{}{
		"order_id":    order.ID,
		"items_total": order.ItemsTotal().String(),
	})

	return order, nil
}

// GetOrder fetches a full order by id.
func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, ok := s.orders.Get(id)
	if !ok {
		return nil, domain.WrapError(domain.ErrOrderNotFound, "Order with ID %d not found", id)
	}
	return &order, nil
}

// ListOrders returns the id-to-order mapping for summaries.
func (s *Service) ListOrders(ctx context.Context) (map[int]domain.Order, error) {
	return s.orders.List(), nil
}

// UpdateStatus moves an order along the lifecycle chain. Transition
// validation happens inside the store's critical section, so two
// concurrent requests can never both pass the check and the later
// write can never regress a state the earlier one advanced.
func (s *Service) UpdateStatus(ctx context.Context, id int, newStatus domain.Status) (*domain.Order, error) {
	updated, err := s.orders.SetStatus(id, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("status_updated", "Order status updated", "", map[string]interface{}{
		"order_id":   id,
		"new_status": string(newStatus),
	})

	return &updated, nil
}

// validateCommand rejects structurally malformed requests. Item
// fields that depend on the menu (name, price) are checked later by
// the domain, after the snapshot is built.
func validateCommand(cmd interfaces.CreateOrderCommand) error {
	if err := cmd.Customer.Validate(); err != nil {
		return err
	}

	if len(cmd.Items) < 1 {
		return domain.ValidationError{Field: "items", Message: "order must contain at least 1 item"}
	}

	for _, line := range cmd.Items {
		if line.MenuItemID < 1 {
			return domain.ValidationError{Field: "items.menu_item_id", Message: "menu item id must be positive"}
		}
		if line.Quantity < 1 || line.Quantity > 10 {
			return domain.ValidationError{Field: "items.quantity", Message: "item quantity must be 1-10"}
		}
	}

	return nil
}
