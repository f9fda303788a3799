package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/minjipark/tteokbang-backend/api/controllers"
	"github.com/minjipark/tteokbang-backend/api/middleware"
	"github.com/minjipark/tteokbang-backend/internal/customers"
	"github.com/minjipark/tteokbang-backend/internal/dashboard"
	"github.com/minjipark/tteokbang-backend/internal/orders"
	"github.com/minjipark/tteokbang-backend/internal/products"
	"github.com/minjipark/tteokbang-backend/pkg/config"
	"github.com/minjipark/tteokbang-backend/pkg/db"
	"github.com/minjipark/tteokbang-backend/pkg/logger"
	"github.com/minjipark/tteokbang-backend/pkg/metrics"
	pkgredis "github.com/minjipark/tteokbang-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        db.Pinger
	Redis     pkgredis.Pinger
	IdemStore pkgredis.IdempotencyStore
	Metrics   *metrics.HTTPMetrics
	Gatherer  prometheus.Gatherer
	Customers customers.Service
	Products  products.Service
	Orders    orders.Service
	Dashboard dashboard.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.Config.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.DB, deps.Redis))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomerList(deps.Customers, deps.Logger))
			r.Post("/", controllers.CustomerCreate(deps.Customers, deps.Logger))
			r.Get("/by-initial", controllers.CustomerListByInitial(deps.Customers, deps.Logger))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.CustomerGet(deps.Customers, deps.Logger))
				r.Put("/", controllers.CustomerUpdate(deps.Customers, deps.Logger))
				r.Delete("/", controllers.CustomerDelete(deps.Customers, deps.Logger))
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Products, deps.Logger))
			r.Post("/", controllers.ProductCreate(deps.Products, deps.Logger))
			r.Get("/by-initial", controllers.ProductListByInitial(deps.Products, deps.Logger))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.ProductGet(deps.Products, deps.Logger))
				r.Put("/", controllers.ProductUpdate(deps.Products, deps.Logger))
				r.Delete("/", controllers.ProductDelete(deps.Products, deps.Logger))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.Idempotency(deps.IdemStore, deps.Logger)).
				Post("/", controllers.OrderCreate(deps.Orders, deps.Logger))
			r.Get("/", controllers.OrderListDay(deps.Orders, deps.Logger))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.OrderGet(deps.Orders, deps.Logger))
				r.Put("/", controllers.OrderUpdate(deps.Orders, deps.Logger))
				r.Delete("/", controllers.OrderDelete(deps.Orders, deps.Logger))
				r.Patch("/paid", controllers.OrderSetPaid(deps.Orders, deps.Logger))
				r.Patch("/picked-up", controllers.OrderSetPickedUp(deps.Orders, deps.Logger))
			})
		})

		r.Get("/production/plan", controllers.ProductionPlan(deps.Orders, deps.Logger))

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/month", controllers.DashboardMonth(deps.Dashboard, deps.Logger))
			r.Get("/day", controllers.DashboardDay(deps.Dashboard, deps.Logger))
		})
	})

	return r
}
