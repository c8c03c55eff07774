package menu

import (
	"context"

	"food-ordering/internal/adapter/logger"
	"food-ordering/internal/domain"
	"food-ordering/internal/interfaces"
)

type Service struct {
	repo   interfaces.MenuRepository
	logger logger.Logger
}

func NewService(repo interfaces.MenuRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateItem validates the payload and inserts a new menu item.
// Availability defaults to true when the payload omits it.
func (s *Service) CreateItem(ctx context.Context, cmd interfaces.FoodItemCommand) (*domain.FoodItem, error) {
	item := itemFromCommand(cmd)

	if err := item.Validate(); err != nil {
		s.logger.Error("validation_failed", "Food item validation failed", "", nil, err)
		return nil, err
	}

	item.ID = s.repo.Insert(item)

	s.logger.Debug("menu_item_created", "Menu item created", "", map[string]interface{}{
		"item_id":  item.ID,
		"category": item.Category,
	})

	return &item, nil
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.FoodItem, error) {
	item, ok := s.repo.Get(id)
	if !ok {
		return nil, domain.WrapError(domain.ErrMenuItemNotFound, "Food item not found")
	}
	return &item, nil
}

// UpdateItem replaces every field of an existing item; the id is
// preserved by the store.
func (s *Service) UpdateItem(ctx context.Context, id int, cmd interfaces.FoodItemCommand) (*domain.FoodItem, error) {
	item := itemFromCommand(cmd)

	if err := item.Validate(); err != nil {
		s.logger.Error("validation_failed", "Food item validation failed", "", nil, err)
		return nil, err
	}

	updated, ok := s.repo.Update(id, item)
	if !ok {
		return nil, domain.WrapError(domain.ErrMenuItemNotFound, "Food item not found")
	}

	return &updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	if !s.repo.Delete(id) {
		return domain.WrapError(domain.ErrMenuItemNotFound, "Food item not found")
	}

	s.logger.Debug("menu_item_deleted", "Menu item deleted", "", map[string]interface{}{
		"item_id": id,
	})

	return nil
}

// ListItems returns items sorted by id, optionally restricted to an
// exact category match.
func (s *Service) ListItems(ctx context.Context, category string) ([]domain.FoodItem, error) {
	return s.repo.List(category), nil
}

func itemFromCommand(cmd interfaces.FoodItemCommand) domain.FoodItem {
	available := true
	if cmd.Available != nil {
		available = *cmd.Available
	}

	return domain.FoodItem{
		Name:            cmd.Name,
		Description:     cmd.Description,
		Category:        cmd.Category,
		Price:           cmd.Price,
		Available:       available,
		PreparationTime: cmd.PreparationTime,
		Ingredients:     cmd.Ingredients,
		Calories:        cmd.Calories,
		IsVegetarian:    cmd.IsVegetarian,
		IsSpicy:         cmd.IsSpicy,
	}
}
