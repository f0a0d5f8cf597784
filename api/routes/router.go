package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velora-commerce/velora-backend/api/controllers"
	cartcontrollers "github.com/velora-commerce/velora-backend/api/controllers/cart"
	wishlistcontrollers "github.com/velora-commerce/velora-backend/api/controllers/wishlist"
	"github.com/velora-commerce/velora-backend/api/middleware"
	authsvc "github.com/velora-commerce/velora-backend/internal/auth"
	cartsvc "github.com/velora-commerce/velora-backend/internal/cart"
	"github.com/velora-commerce/velora-backend/internal/products"
	"github.com/velora-commerce/velora-backend/internal/users"
	wishlistsvc "github.com/velora-commerce/velora-backend/internal/wishlist"
	"github.com/velora-commerce/velora-backend/pkg/auth/session"
	"github.com/velora-commerce/velora-backend/pkg/config"
	"github.com/velora-commerce/velora-backend/pkg/db"
	"github.com/velora-commerce/velora-backend/pkg/logger"
	"github.com/velora-commerce/velora-backend/pkg/metrics"
	"github.com/velora-commerce/velora-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	SessionChecker  session.AccessSessionChecker
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer

	AuthService     authsvc.Service
	UserRepo        *users.Repository
	ProductService  products.Service
	CartService     cartsvc.Service
	WishlistService wishlistsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	sessionTTL := cfg.JWT.RefreshTokenTTL()

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, deps.Redis, logg)).Post("/signup", controllers.AuthSignup(deps.AuthService, cfg.App, sessionTTL, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, cfg.App, sessionTTL, logg))
		r.Post("/refresh-token", controllers.AuthRefresh(deps.AuthService, cfg.App, sessionTTL, logg))
		r.With(middleware.Auth(cfg.JWT, deps.SessionChecker, logg)).Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.App, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.ProductsList(deps.ProductService, logg))
		r.Get("/products/{id}", controllers.ProductsGet(deps.ProductService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

			r.Get("/user/me", controllers.UserMe(deps.UserRepo, logg))
			r.Put("/user/profile", controllers.UserUpdateProfile(deps.UserRepo, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Post("/add", cartcontrollers.AddItem(deps.CartService, logg))
				r.Post("/remove", cartcontrollers.RemoveItem(deps.CartService, logg))
				r.Post("/increase", cartcontrollers.IncreaseQuantity(deps.CartService, logg))
				r.Post("/decrease", cartcontrollers.DecreaseQuantity(deps.CartService, logg))
				r.Get("/items", cartcontrollers.ListItems(deps.CartService, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Post("/add", wishlistcontrollers.AddItem(deps.WishlistService, logg))
				r.Post("/remove", wishlistcontrollers.RemoveItem(deps.WishlistService, logg))
				r.Get("/items", wishlistcontrollers.ListItems(deps.WishlistService, logg))
			})
		})
	})

	return r
}
