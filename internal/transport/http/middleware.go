package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/kahvecikaan/menu-api/internal/domain"
)

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger     hclog.Logger
	corsConfig *CORSConfig
}

// CORSConfig holds configuration for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int  // Cache preflight requests
	AllowCredentials bool // Allow credentials like cookies
}

func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		MaxAge:           86400, // 24 hours
		AllowCredentials: true,
	}
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger, corsConfig *CORSConfig) *Middleware {
	if corsConfig == nil {
		corsConfig = DefaultCORSConfig()
	}
	return &Middleware{
		Logger:     logger,
		corsConfig: corsConfig,
	}
}

func (m *Middleware) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowed := false
		for _, allowedOrigin := range m.corsConfig.AllowedOrigins {
			if allowedOrigin == "*" || allowedOrigin == origin {
				allowed = true
				// Set the specific origin instead of wildcard for better security
				w.Header().Set("Access-Control-Allow-Origin", origin)
				break
			}
		}

		if !allowed {
			// If origin is not allowed, still process the request but don't set CORS headers
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Methods", strings.Join(m.corsConfig.AllowedMethods, ","))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(m.corsConfig.AllowedHeaders, ","))

		if m.corsConfig.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			if m.corsConfig.MaxAge > 0 {
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(m.corsConfig.MaxAge))
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// dishPayload is the wire shape of a dish being created or updated.
// Every field is optional here; which ones were actually sent decides
// which builder setters run.
type dishPayload struct {
	ID           *uint32           `json:"id"`
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	Ingredients  []string          `json:"ingredients"`
	Price        *float64          `json:"price"`
	Category     *domain.Category  `json:"category"`
	Nutrition    *domain.Nutrition `json:"nutrition"`
	IsVegetarian *bool             `json:"is_vegetarian"`
	IsVegan      *bool             `json:"is_vegan"`
	Allergens    []domain.Allergen `json:"allergens"`
}

// BuildMiddleware decodes the request body into a draft, runs it through
// the dish builder and stores the built dish on the request context.
// Unknown category or allergen tags are rejected before building; a
// build failure maps to 422 with the failing rule's message.
func (m *Middleware) BuildMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload dishPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			m.Logger.Error("Error decoding dish", "error", err)
			http.Error(w, "Invalid dish data", http.StatusBadRequest)
			return
		}

		if payload.Category != nil && !payload.Category.Valid() {
			http.Error(w, "Unknown category", http.StatusBadRequest)
			return
		}
		for _, a := range payload.Allergens {
			if !a.Valid() {
				http.Error(w, "Unknown allergen", http.StatusBadRequest)
				return
			}
		}

		builder := domain.NewDishBuilder()
		if payload.ID != nil {
			builder = builder.WithID(*payload.ID)
		}
		if payload.Name != nil {
			builder = builder.WithName(*payload.Name)
		}
		if payload.Description != nil {
			builder = builder.WithDescription(*payload.Description)
		}
		if payload.Ingredients != nil {
			builder = builder.WithIngredients(payload.Ingredients)
		}
		if payload.Price != nil {
			builder = builder.WithPrice(*payload.Price)
		}
		if payload.Category != nil {
			builder = builder.WithCategory(*payload.Category)
		}
		if payload.Nutrition != nil {
			builder = builder.WithNutrition(*payload.Nutrition)
		}
		if payload.IsVegetarian != nil {
			builder = builder.WithVegetarian(*payload.IsVegetarian)
		}
		if payload.IsVegan != nil {
			builder = builder.WithVegan(*payload.IsVegan)
		}
		if payload.Allergens != nil {
			builder = builder.WithAllergens(payload.Allergens)
		}

		dish, err := builder.Build()
		if err != nil {
			m.Logger.Debug("Dish failed to build", "error", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Message: buildErrorMessage(err)})
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyDish, &dish)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func buildErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDishNotFound):
		return err.Error()
	case errors.Is(err, domain.ErrInvalidName):
		return "dish name must be between 2 and 50 characters"
	case errors.Is(err, domain.ErrInvalidPrice):
		return "dish price must be between 0 and 1000, exclusive"
	case errors.Is(err, domain.ErrInvalidNutrition):
		return "nutrition facts must have calories of at most 2000 and non-negative macros"
	}
	return err.Error()
}
