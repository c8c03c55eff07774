package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"food-ordering/internal/domain"
)

// Commands for the services

type FoodItemCommand struct {
	Name            string
	Description     string
	Category        string
	Price           decimal.Decimal
	Available       *bool
	PreparationTime int
	Ingredients     []string
	Calories        int
	IsVegetarian    bool
	IsSpicy         bool
}

type CreateOrderCommand struct {
	Customer domain.Customer
	Items    []OrderLineCommand
}

type OrderLineCommand struct {
	MenuItemID int
	Quantity   int
}

// Service ports (Business Logic)

type MenuService interface {
	CreateItem(ctx context.Context, cmd FoodItemCommand) (*domain.FoodItem, error)
	GetItem(ctx context.Context, id int) (*domain.FoodItem, error)
	UpdateItem(ctx context.Context, id int, cmd FoodItemCommand) (*domain.FoodItem, error)
	DeleteItem(ctx context.Context, id int) error
	ListItems(ctx context.Context, category string) ([]domain.FoodItem, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context) (map[int]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, newStatus domain.Status) (*domain.Order, error)
}
