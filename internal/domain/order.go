package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Customer is embedded by value inside an Order; it is never
// persisted on its own.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// Letters and spaces only.
var customerNameRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)

// Optional leading '+', then exactly 10 digits.
var customerPhoneRegex = regexp.MustCompile(`^\+?\d{10}$`)

// Validate applies business validation rules
func (c Customer) Validate() error {
	if len(c.Name) < 2 || len(c.Name) > 50 {
		return ValidationError{Field: "customer.name", Message: "name must be 2-50 characters"}
	}

	if !customerNameRegex.MatchString(c.Name) {
		return ValidationError{Field: "customer.name", Message: "name must contain only letters and spaces"}
	}

	if !customerPhoneRegex.MatchString(c.Phone) {
		return ValidationError{Field: "customer.phone", Message: "phone must be 10 digits with an optional leading +"}
	}

	if len(c.Address) < 5 || len(c.Address) > 200 {
		return ValidationError{Field: "customer.address", Message: "address must be 5-200 characters"}
	}

	return nil
}

// OrderItem is a snapshot of a menu item taken at order-creation
// time. Later menu edits never alter it.
type OrderItem struct {
	MenuItemID   int
	MenuItemName string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// ItemTotal returns quantity x unit price.
func (i OrderItem) ItemTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer's selection of menu items with pricing
// locked in at creation time. Only Status is mutable after creation.
type Order struct {
	ID       int
	Customer Customer
	Items    []OrderItem
	Status   Status
}

// NewOrder creates a pending order with business rules applied
func NewOrder(customer Customer, items []OrderItem) (*Order, error) {
	order := &Order{
		Customer: customer,
		Items:    items,
		Status:   StatusPending,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate applies business validation rules
func (o *Order) Validate() error {
	if err := o.Customer.Validate(); err != nil {
		return err
	}

	if len(o.Items) < 1 {
		return ValidationError{Field: "items", Message: "order must contain at least 1 item"}
	}

	for _, item := range o.Items {
		if item.MenuItemID < 1 {
			return ValidationError{Field: "items.menu_item_id", Message: "menu item id must be positive"}
		}
		if len(item.MenuItemName) < 1 || len(item.MenuItemName) > 100 {
			return ValidationError{Field: "items.menu_item_name", Message: "item name must be 1-100 characters"}
		}
		if item.Quantity < 1 || item.Quantity > 10 {
			return ValidationError{Field: "items.quantity", Message: "item quantity must be 1-10"}
		}
		if !item.UnitPrice.IsPositive() {
			return ValidationError{Field: "items.unit_price", Message: "unit price must be greater than zero"}
		}
	}

	return nil
}

// ItemsTotal returns the sum of item totals over all items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.ItemTotal())
	}
	return total
}

// TotalItemsCount returns the sum of quantities over all items.
func (o *Order) TotalItemsCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// TransitionTo moves the order to a new lifecycle status.
func (o *Order) TransitionTo(newStatus Status) error {
	if !o.Status.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition
	}

	o.Status = newStatus
	return nil
}
