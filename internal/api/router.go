package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/francescofano/langgraph-telegram-bot/internal/api/recovery"
	"github.com/francescofano/langgraph-telegram-bot/internal/api/respond"
	"github.com/francescofano/langgraph-telegram-bot/internal/services"
	"github.com/francescofano/langgraph-telegram-bot/internal/store"
	"github.com/francescofano/langgraph-telegram-bot/internal/web"
)

// NewRouter wires the read-only dashboard routes. The API surface is GET-only;
// any other verb on a known path gets the JSON 405 envelope without touching
// the store.
func NewRouter(st store.Store, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	router.Use(recovery.Middleware)
	router.Use(RequestLogger(log))

	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteMethodNotAllowed(w, "method not supported")
	})

	userHandler := NewUserHandler(services.NewUserService(st), log)
	memoryHandler := NewMemoryHandler(services.NewMemoryService(st), log)
	healthHandler := NewHealthHandler()

	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/users", userHandler.ListUsers).Methods("GET")
	router.HandleFunc("/api/memories/{userId}", memoryHandler.ListMemories).Methods("GET")
	// legacy query form; also yields 400 when the parameter is absent
	router.HandleFunc("/api/memories", memoryHandler.ListMemories).Methods("GET")

	// dashboard page
	router.Handle("/", web.Handler()).Methods("GET")

	return router
}
