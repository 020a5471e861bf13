package domain

import "fmt"

// validation is shared by every Build call; the rules are stateless.
var validation = NewValidation()

// DishBuilder accumulates an in-progress dish. The zero value from
// NewDishBuilder has every field unset. Setters use value receivers and
// return a modified copy, so a builder can be forked freely: holding on
// to an earlier draft and branching from it never affects the branch.
//
// No rule is checked while setting; Build applies them all at once.
type DishBuilder struct {
	id           *uint32
	name         *string
	description  *string
	ingredients  []string
	price        *float64
	category     *Category
	nutrition    *Nutrition
	isVegetarian bool
	isVegan      bool
	allergens    []Allergen
}

// NewDishBuilder returns an empty draft: no fields set, no ingredients,
// no allergens, both dietary flags false.
func NewDishBuilder() DishBuilder {
	return DishBuilder{}
}

func (b DishBuilder) WithID(id uint32) DishBuilder {
	b.id = &id
	return b
}

func (b DishBuilder) WithName(name string) DishBuilder {
	b.name = &name
	return b
}

func (b DishBuilder) WithDescription(description string) DishBuilder {
	b.description = &description
	return b
}

// WithIngredients replaces the ingredient list. The slice is copied so
// the caller's slice and any earlier draft stay independent.
func (b DishBuilder) WithIngredients(ingredients []string) DishBuilder {
	b.ingredients = append([]string(nil), ingredients...)
	return b
}

func (b DishBuilder) WithPrice(price float64) DishBuilder {
	b.price = &price
	return b
}

func (b DishBuilder) WithCategory(category Category) DishBuilder {
	b.category = &category
	return b
}

func (b DishBuilder) WithNutrition(nutrition Nutrition) DishBuilder {
	b.nutrition = &nutrition
	return b
}

func (b DishBuilder) WithVegetarian(isVegetarian bool) DishBuilder {
	b.isVegetarian = isVegetarian
	return b
}

func (b DishBuilder) WithVegan(isVegan bool) DishBuilder {
	b.isVegan = isVegan
	return b
}

// WithAllergens replaces the allergen tags. Duplicates are kept as given.
func (b DishBuilder) WithAllergens(allergens []Allergen) DishBuilder {
	b.allergens = append([]Allergen(nil), allergens...)
	return b
}

// Build finalizes the draft. It fails with ErrDishNotFound when any of
// id, name, price, category or nutrition was never set, then checks name,
// price and nutrition in that order, reporting the first rule that fails.
// A missing description is replaced with DefaultDescription.
func (b DishBuilder) Build() (Dish, error) {
	for _, req := range []struct {
		field string
		set   bool
	}{
		{"id", b.id != nil},
		{"name", b.name != nil},
		{"price", b.price != nil},
		{"category", b.category != nil},
		{"nutrition", b.nutrition != nil},
	} {
		if !req.set {
			return Dish{}, fmt.Errorf("%w: missing required field %q", ErrDishNotFound, req.field)
		}
	}

	description := DefaultDescription
	if b.description != nil {
		description = *b.description
	}

	if !validation.Name(*b.name) {
		return Dish{}, fmt.Errorf("%w: %q", ErrInvalidName, *b.name)
	}
	if !validation.Price(*b.price) {
		return Dish{}, fmt.Errorf("%w: %v", ErrInvalidPrice, *b.price)
	}
	if !validation.Nutrition(*b.nutrition) {
		return Dish{}, fmt.Errorf("%w: %+v", ErrInvalidNutrition, *b.nutrition)
	}

	// built dishes always carry a list, even an empty one
	ingredients := b.ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	allergens := b.allergens
	if allergens == nil {
		allergens = []Allergen{}
	}

	return Dish{
		ID:           *b.id,
		Name:         *b.name,
		Description:  description,
		Ingredients:  ingredients,
		Price:        *b.price,
		Category:     *b.category,
		Nutrition:    *b.nutrition,
		IsVegetarian: b.isVegetarian,
		IsVegan:      b.isVegan,
		Allergens:    allergens,
	}, nil
}
