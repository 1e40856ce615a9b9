package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/dtroode/izakaya-server/internal/api/http/handler"
	"github.com/dtroode/izakaya-server/internal/api/http/middleware"
	"github.com/dtroode/izakaya-server/internal/logger"
)

// Router wires HTTP routes to the izakaya services.
type Router struct {
	accountService    handler.AccountService
	restaurantService handler.RestaurantService
	visitService      handler.VisitService
	db                handler.Pinger
	allowedOrigins    []string
	logger            *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	accountService handler.AccountService,
	restaurantService handler.RestaurantService,
	visitService handler.VisitService,
	db handler.Pinger,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService:    accountService,
		restaurantService: restaurantService,
		visitService:      visitService,
		db:                db,
		allowedOrigins:    allowedOrigins,
		logger:            logger,
	}
}

// Register returns the root handler serving every route.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()

	api := m.PathPrefix("/api").Subrouter()
	r.registerAccountRoutes(api)
	r.registerRestaurantRoutes(api)
	r.registerVisitRoutes(api)

	health := handler.NewHealth(r.db, r.logger)
	m.HandleFunc("/healthz", health.Check).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(r.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{r.logger}),
	)

	logging := middleware.NewLogging(r.logger)

	return recovery(logging.Handle(cors(m)))
}

func (r *Router) registerAccountRoutes(api *mux.Router) {
	h := handler.NewAccount(r.accountService, r.logger)
	api.HandleFunc("/createNewAccount", h.CreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
}

func (r *Router) registerRestaurantRoutes(api *mux.Router) {
	h := handler.NewRestaurant(r.restaurantService, r.logger)
	api.HandleFunc("/izakayas", h.SearchNearby).Methods(http.MethodGet)
	api.HandleFunc("/izakayasNearby", h.SearchNearby).Methods(http.MethodGet)
	api.HandleFunc("/search-by-id/{restaurantId}", h.SearchByID).Methods(http.MethodGet)
}

func (r *Router) registerVisitRoutes(api *mux.Router) {
	h := handler.NewVisit(r.visitService, r.logger)
	api.HandleFunc("/markAsEaten", h.MarkAsEaten).Methods(http.MethodPost)
	api.HandleFunc("/user/{userId}/visited-izakayas", h.ListVisited).Methods(http.MethodGet)
}

type recoveryLogger struct {
	logger *logger.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.logger.Error("HTTP handler panicked", "panic", v)
}
