package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/menu-api/internal/domain"
	"github.com/kahvecikaan/menu-api/internal/events"
	"github.com/kahvecikaan/menu-api/internal/repository"
)

func newTestService(t *testing.T) (MenuService, events.Subscriber[any]) {
	t.Helper()

	bus := events.NewEventBus[any]()
	sub := bus.Subscribe()
	t.Cleanup(func() { bus.Unsubscribe(sub) })

	svc := NewMenuService(
		repository.NewMemoryDishRepository(),
		bus,
		hclog.NewNullLogger(),
	)
	return svc, sub
}

func builtDish(t *testing.T, name string, category domain.Category) *domain.Dish {
	t.Helper()

	dish, err := domain.NewDishBuilder().
		WithID(1).
		WithName(name).
		WithPrice(12.0).
		WithCategory(category).
		WithNutrition(domain.Nutrition{Calories: 400, Protein: 12, Carbohydrates: 30, Fat: 15}).
		Build()
	require.NoError(t, err)
	return &dish
}

func TestListDishes(t *testing.T) {
	svc, _ := newTestService(t)

	dishes, err := svc.ListDishes(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, dishes, 2)
}

func TestListDishesFiltersByCategory(t *testing.T) {
	svc, _ := newTestService(t)

	dishes, err := svc.ListDishes(context.Background(), domain.Beverage)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Fresh Lemonade", dishes[0].Name)

	none, err := svc.ListDishes(context.Background(), domain.Dessert)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddDishPublishesEvent(t *testing.T) {
	svc, sub := newTestService(t)

	dish := builtDish(t, "Garlic Bread", domain.Appetizer)
	require.NoError(t, svc.AddDish(context.Background(), dish))

	require.Len(t, sub, 1)
	event := <-sub
	added, ok := event.(events.DishAdded)
	require.True(t, ok, "expected DishAdded, got %T", event)
	assert.Equal(t, dish.ID, added.DishID)
	assert.Equal(t, "Garlic Bread", added.Name)
}

func TestUpdateDishPublishesEvent(t *testing.T) {
	svc, sub := newTestService(t)

	dish := builtDish(t, "Spaghetti Carbonara", domain.MainCourse)
	dish.ID = 1
	require.NoError(t, svc.UpdateDish(context.Background(), dish))

	require.Len(t, sub, 1)
	assert.Equal(t, events.DishUpdated{DishID: 1}, <-sub)
}

func TestDeleteDishPublishesEvent(t *testing.T) {
	svc, sub := newTestService(t)

	require.NoError(t, svc.DeleteDish(context.Background(), 2))

	require.Len(t, sub, 1)
	assert.Equal(t, events.DishDeleted{DishID: 2}, <-sub)
}

func TestMutationsOnMissingDishDoNotPublish(t *testing.T) {
	svc, sub := newTestService(t)
	ctx := context.Background()

	missing := builtDish(t, "Ghost Dish", domain.Specials)
	missing.ID = 99
	assert.True(t, errors.Is(svc.UpdateDish(ctx, missing), domain.ErrDishNotFound))
	assert.True(t, errors.Is(svc.DeleteDish(ctx, 99), domain.ErrDishNotFound))

	_, err := svc.GetDishByID(ctx, 99)
	assert.True(t, errors.Is(err, domain.ErrDishNotFound))

	assert.Empty(t, sub)
}
