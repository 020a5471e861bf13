package repository

import (
	"context"
	"sync"

	"github.com/kahvecikaan/menu-api/internal/domain"
)

type DishRepository interface {
	GetAll(ctx context.Context) ([]*domain.Dish, error)
	GetByID(ctx context.Context, id uint32) (*domain.Dish, error)
	Add(ctx context.Context, dish *domain.Dish) error
	Update(ctx context.Context, dish *domain.Dish) error
	Delete(ctx context.Context, id uint32) error
}

type memoryDishRepository struct {
	dishes []*domain.Dish
	mutex  sync.RWMutex
}

func NewMemoryDishRepository() DishRepository {
	return &memoryDishRepository{
		dishes: seedDishes(),
	}
}

// seedDishes runs the starter menu through the builder so the seeds obey
// the same rules as anything added at runtime.
func seedDishes() []*domain.Dish {
	carbonara, err := domain.NewDishBuilder().
		WithID(1).
		WithName("Spaghetti Carbonara").
		WithDescription("Roman classic with guanciale and pecorino").
		WithIngredients([]string{"spaghetti", "eggs", "guanciale", "pecorino", "black pepper"}).
		WithPrice(15.5).
		WithCategory(domain.MainCourse).
		WithNutrition(domain.Nutrition{Calories: 650, Protein: 25, Carbohydrates: 60, Fat: 20}).
		WithAllergens([]domain.Allergen{domain.Gluten, domain.Eggs, domain.Dairy}).
		Build()
	if err != nil {
		panic(err)
	}

	lemonade, err := domain.NewDishBuilder().
		WithID(2).
		WithName("Fresh Lemonade").
		WithIngredients([]string{"lemon", "water", "sugar", "mint"}).
		WithPrice(3.5).
		WithCategory(domain.Beverage).
		WithNutrition(domain.Nutrition{Calories: 120, Protein: 0, Carbohydrates: 31, Fat: 0}).
		WithVegetarian(true).
		WithVegan(true).
		Build()
	if err != nil {
		panic(err)
	}

	return []*domain.Dish{&carbonara, &lemonade}
}

func (r *memoryDishRepository) GetAll(ctx context.Context) ([]*domain.Dish, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.dishes, nil
}

func (r *memoryDishRepository) GetByID(ctx context.Context, id uint32) (*domain.Dish, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, dish := range r.dishes {
		if dish.ID == id {
			return dish, nil
		}
	}

	return nil, domain.ErrDishNotFound
}

func (r *memoryDishRepository) Add(ctx context.Context, dish *domain.Dish) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	dish.ID = r.getNextID()
	r.dishes = append(r.dishes, dish)
	return nil
}

func (r *memoryDishRepository) Update(ctx context.Context, dish *domain.Dish) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, d := range r.dishes {
		if d.ID == dish.ID {
			r.dishes[i] = dish
			return nil
		}
	}

	return domain.ErrDishNotFound
}

func (r *memoryDishRepository) Delete(ctx context.Context, id uint32) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, dish := range r.dishes {
		if dish.ID == id {
			r.dishes = append(r.dishes[:i], r.dishes[i+1:]...)
			return nil
		}
	}

	return domain.ErrDishNotFound
}

func (r *memoryDishRepository) getNextID() uint32 {
	if len(r.dishes) == 0 {
		return 1
	}
	return r.dishes[len(r.dishes)-1].ID + 1
}
