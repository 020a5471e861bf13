package service

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/menu-api/internal/domain"
	"github.com/kahvecikaan/menu-api/internal/events"
	"github.com/kahvecikaan/menu-api/internal/repository"
)

type MenuService interface {
	ListDishes(ctx context.Context, category domain.Category) (Dishes, error)
	GetDishByID(ctx context.Context, id uint32) (*domain.Dish, error)
	AddDish(ctx context.Context, dish *domain.Dish) error
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	DeleteDish(ctx context.Context, id uint32) error
}

// Dishes is a collection of Dish
type Dishes []*domain.Dish

type menuService struct {
	repo     repository.DishRepository
	eventBus *events.EventBus[any]
	logger   hclog.Logger
}

func NewMenuService(
	repo repository.DishRepository,
	eventBus *events.EventBus[any],
	logger hclog.Logger) MenuService {
	return &menuService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// ListDishes returns the menu, filtered to a single category when one is
// given. An empty category means no filter.
func (s *menuService) ListDishes(ctx context.Context, category domain.Category) (Dishes, error) {
	s.logger.Debug("Listing dishes", "category", category)

	dishes, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Unable to list dishes", "error", err)
		return nil, err
	}

	if category == "" {
		return dishes, nil
	}

	filtered := Dishes{}
	for _, dish := range dishes {
		if dish.Category == category {
			filtered = append(filtered, dish)
		}
	}

	return filtered, nil
}

func (s *menuService) GetDishByID(ctx context.Context, id uint32) (*domain.Dish, error) {
	s.logger.Debug("Getting dish by ID", "id", id)

	dish, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Unable to get the dish by ID", "id", id, "error", err)
		return nil, err
	}

	return dish, nil
}

func (s *menuService) AddDish(ctx context.Context, dish *domain.Dish) error {
	s.logger.Debug("Adding new dish", "name", dish.Name)

	err := s.repo.Add(ctx, dish)
	if err != nil {
		s.logger.Error("Unable to add dish", "name", dish.Name, "error", err)
		return err
	}

	s.eventBus.Publish(events.DishAdded{DishID: dish.ID, Name: dish.Name})
	return nil
}

func (s *menuService) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	s.logger.Debug("Updating dish", "id", dish.ID)

	err := s.repo.Update(ctx, dish)
	if err != nil {
		s.logger.Error("Unable to update dish", "id", dish.ID, "error", err)
		return err
	}

	s.eventBus.Publish(events.DishUpdated{DishID: dish.ID})
	return nil
}

func (s *menuService) DeleteDish(ctx context.Context, id uint32) error {
	s.logger.Debug("Deleting dish", "id", id)

	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Unable to delete dish", "id", id, "error", err)
		return err
	}

	s.eventBus.Publish(events.DishDeleted{DishID: id})
	return nil
}
