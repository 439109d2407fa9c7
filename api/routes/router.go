package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drevmart/drevmart-backend/api/controllers"
	"github.com/drevmart/drevmart-backend/api/middleware"
	authsvc "github.com/drevmart/drevmart-backend/internal/auth"
	"github.com/drevmart/drevmart-backend/internal/cart"
	"github.com/drevmart/drevmart-backend/internal/catalog"
	"github.com/drevmart/drevmart-backend/internal/orders"
	"github.com/drevmart/drevmart-backend/internal/search"
	"github.com/drevmart/drevmart-backend/pkg/config"
	"github.com/drevmart/drevmart-backend/pkg/db"
	"github.com/drevmart/drevmart-backend/pkg/logger"
	"github.com/drevmart/drevmart-backend/pkg/metrics"
	"github.com/drevmart/drevmart-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	dbP db.Pinger,
	redisP redis.Pinger,
	catalogService *catalog.Service,
	searchService *search.Service,
	cartService *cart.Service,
	authService *authsvc.Service,
	ordersService *orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
		middleware.Session(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.ListProducts(catalogService, logg))
			r.Get("/products/{productId}", controllers.GetProduct(catalogService, logg))
			r.Get("/categories", controllers.ListCategories(catalogService, logg))
			r.Get("/brands", controllers.ListBrands(catalogService, logg))
			r.Get("/new-arrivals", controllers.NewArrivals(catalogService, logg))
			r.Get("/discounted", controllers.Discounted(catalogService, logg))
			r.Get("/random", controllers.RandomProducts(catalogService, logg))
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/suggest", controllers.Suggest(searchService, logg))
			r.Get("/recent", controllers.RecentQueries(searchService, logg))
			r.Post("/recent", controllers.CommitQuery(searchService, logg))
			r.Delete("/recent", controllers.ClearRecentQueries(searchService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(cartService, logg))
			r.Post("/items", controllers.AddToCart(cartService, logg))
			r.Put("/items/{productId}", controllers.UpdateCart(cartService, logg))
			r.Delete("/items/{productId}", controllers.RemoveFromCart(cartService, logg))
			r.Delete("/", controllers.ClearCart(cartService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.Login(authService, logg))
			r.Post("/register", controllers.Register(authService, logg))
			r.Post("/logout", controllers.Logout(authService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Get("/me", controllers.Me(authService, logg))
				r.Put("/me", controllers.UpdateProfile(authService, logg))
				r.Delete("/me", controllers.DeleteAccount(authService, logg))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", controllers.CreateOrder(ordersService, logg))
				r.Get("/", controllers.GetMyOrders(ordersService, logg))
				r.Get("/{orderId}", controllers.GetOrder(ordersService, logg))
			})
		})
	})

	return r
}
