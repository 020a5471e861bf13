package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kahvecikaan/menu-api/internal/domain"
)

func testDish(t *testing.T, name string) *domain.Dish {
	t.Helper()

	dish, err := domain.NewDishBuilder().
		WithID(1). // repository reassigns on Add
		WithName(name).
		WithPrice(8.0).
		WithCategory(domain.Appetizer).
		WithNutrition(domain.Nutrition{Calories: 200, Protein: 5, Carbohydrates: 18, Fat: 9}).
		Build()
	require.NoError(t, err)
	return &dish
}

func TestMemoryRepositorySeeds(t *testing.T) {
	repo := NewMemoryDishRepository()

	dishes, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, dishes, 2)
}

func TestGetByID(t *testing.T) {
	repo := NewMemoryDishRepository()

	dish, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti Carbonara", dish.Name)

	_, err = repo.GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrDishNotFound))
}

func TestAddAssignsNextID(t *testing.T) {
	repo := NewMemoryDishRepository()
	ctx := context.Background()

	dish := testDish(t, "Bruschetta")
	require.NoError(t, repo.Add(ctx, dish))
	assert.Equal(t, uint32(3), dish.ID)

	got, err := repo.GetByID(ctx, dish.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruschetta", got.Name)
}

func TestUpdate(t *testing.T) {
	repo := NewMemoryDishRepository()
	ctx := context.Background()

	updated := testDish(t, "Carbonara Bianca")
	updated.ID = 1
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Carbonara Bianca", got.Name)

	missing := testDish(t, "Ghost Dish")
	missing.ID = 42
	err = repo.Update(ctx, missing)
	assert.True(t, errors.Is(err, domain.ErrDishNotFound))
}

func TestDelete(t *testing.T) {
	repo := NewMemoryDishRepository()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))

	_, err := repo.GetByID(ctx, 1)
	assert.True(t, errors.Is(err, domain.ErrDishNotFound))

	err = repo.Delete(ctx, 1)
	assert.True(t, errors.Is(err, domain.ErrDishNotFound))
}
