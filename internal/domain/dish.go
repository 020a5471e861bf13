package domain

// DefaultDescription is substituted when a dish is built without a description.
const DefaultDescription = "No description provided"

// Category classifies where a dish appears on the menu
type Category string

const (
	Appetizer  Category = "Appetizer"
	MainCourse Category = "MainCourse"
	Dessert    Category = "Dessert"
	Beverage   Category = "Beverage"
	Specials   Category = "Specials"
)

// Valid reports whether c is one of the known menu categories
func (c Category) Valid() bool {
	switch c {
	case Appetizer, MainCourse, Dessert, Beverage, Specials:
		return true
	}
	return false
}

// Allergen is a tag for a common food allergen present in a dish
type Allergen string

const (
	Gluten    Allergen = "Gluten"
	Dairy     Allergen = "Dairy"
	Nuts      Allergen = "Nuts"
	Shellfish Allergen = "Shellfish"
	Soy       Allergen = "Soy"
	Eggs      Allergen = "Eggs"
)

// Valid reports whether a is one of the known allergen tags
func (a Allergen) Valid() bool {
	switch a {
	case Gluten, Dairy, Nuts, Shellfish, Soy, Eggs:
		return true
	}
	return false
}

// Nutrition holds the nutritional facts for a single serving
type Nutrition struct {
	// energy in kcal
	//
	// required: true
	// max: 2000
	Calories uint32 `json:"calories" validate:"lte=2000"`

	// grams of protein
	//
	// required: true
	// min: 0
	Protein float64 `json:"protein" validate:"gte=0"`

	// grams of carbohydrates
	//
	// required: true
	// min: 0
	Carbohydrates float64 `json:"carbohydrates" validate:"gte=0"`

	// grams of fat
	//
	// required: true
	// min: 0
	Fat float64 `json:"fat" validate:"gte=0"`
}

// Dish is a fully built, validated menu item.
// A Dish is only ever produced by DishBuilder.Build, so any Dish value
// in circulation has passed the name, price and nutrition rules.
//
// swagger:model
type Dish struct {
	// the id for this dish
	//
	// required: true
	// min: 1
	ID uint32 `json:"id"`

	// the name for this dish
	//
	// required: true
	// min length: 2
	// max length: 50
	Name string `json:"name"`

	// the description for this dish
	//
	// required: false
	Description string `json:"description"`

	// the ingredient list, in recipe order
	//
	// required: false
	Ingredients []string `json:"ingredients"`

	// the price for this dish
	//
	// required: true
	// min: 0.01
	Price float64 `json:"price"`

	// the menu category for this dish
	//
	// required: true
	Category Category `json:"category"`

	// the nutritional facts for this dish
	//
	// required: true
	Nutrition Nutrition `json:"nutrition"`

	// whether the dish is suitable for vegetarians
	IsVegetarian bool `json:"is_vegetarian"`

	// whether the dish is suitable for vegans
	IsVegan bool `json:"is_vegan"`

	// allergen tags for this dish
	//
	// required: false
	Allergens []Allergen `json:"allergens"`
}
