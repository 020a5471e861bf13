package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	websocketTransport "github.com/kahvecikaan/menu-api/internal/transport/websocket"
)

func NewRouter(
	dh *DishHandler,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
) *mux.Router {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, nil) // nil for default CORS config

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.CORSMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Read-only routes
	router.HandleFunc("/dishes", dh.GetDishes).Methods("GET")
	router.HandleFunc("/dishes/{id:[0-9]+}", dh.GetDishByID).Methods("GET")
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	// Mutating routes run the body through the dish builder first
	postRouter := router.Methods("POST").Subrouter()
	postRouter.HandleFunc("/dishes", dh.AddDish)
	postRouter.Use(mw.BuildMiddleware)

	putRouter := router.Methods("PUT").Subrouter()
	putRouter.HandleFunc("/dishes/{id:[0-9]+}", dh.UpdateDish)
	putRouter.Use(mw.BuildMiddleware)

	// Delete route (no request body, so the build middleware is not needed)
	router.HandleFunc("/dishes/{id:[0-9]+}", dh.DeleteDish).Methods("DELETE")

	// Serve the OpenAPI spec and render it with Redoc.
	// The spec file lives at the repository root, two levels up from here.
	_, filename, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filename)
	rootDir := filepath.Join(basePath, "..", "..", "..")
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml")

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	return router
}
