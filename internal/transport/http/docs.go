// Package classification of Menu API
//
// # Documentation for Menu API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/kahvecikaan/menu-api/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// The full menu
// swagger:response dishesResponse
type dishesResponseWrapper struct {
	// All current dishes
	// in: body
	Body []domain.Dish
}

// Data structure representing a single dish
// swagger:response dishResponse
type dishResponseWrapper struct {
	// A single dish
	// in: body
	Body domain.Dish
}

// No content response for endpoints that return 204
// swagger:response noContentResponse
type noContentResponseWrapper struct{}

// swagger:parameters getDishByID deleteDish updateDish
type dishIDParamsWrapper struct {
	// The ID of the dish
	// in: path
	// required: true
	ID uint32 `json:"id"`
}

// swagger:parameters addDish updateDish
type dishBodyParamsWrapper struct {
	// Dish data structure to create or update.
	// in: body
	// required: true
	Body domain.Dish
}

// ErrorResponse defines the structure for API error responses
//
// swagger:model
type ErrorResponse struct {
	// The error message
	//
	// required: true
	Message string `json:"message"`
}
