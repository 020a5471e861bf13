package events

// Lifecycle events published by the menu service after each mutation.

type DishAdded struct {
	DishID uint32 `json:"dish_id"`
	Name   string `json:"name"`
}

type DishUpdated struct {
	DishID uint32 `json:"dish_id"`
}

type DishDeleted struct {
	DishID uint32 `json:"dish_id"`
}
