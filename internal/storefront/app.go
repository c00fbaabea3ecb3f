package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"BrewStore/internal/cart"
	"BrewStore/internal/catalog"
	"BrewStore/internal/session"
	"BrewStore/internal/wishlist"
	"BrewStore/pkg/kit"
)

// Stores are the three backing tables, injected at startup.
type Stores struct {
	Catalog  catalog.Store
	Cart     cart.Store
	Wishlist wishlist.Store
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

const (
	sessionIssueLimit  = 10
	sessionIssueWindow = time.Minute

	readyPingTimeout = 1 * time.Second
)

func NewHandler(st Stores, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(st, deps.Log))

	catalogSrv := &catalog.Server{Store: st.Catalog, Log: deps.Log}
	cartSrv := &cart.Server{Store: st.Cart, Log: deps.Log}
	wishlistSrv := &wishlist.Server{Store: st.Wishlist, Log: deps.Log}

	issueLimiter := kit.NewIPRateLimiter(sessionIssueLimit, sessionIssueWindow)

	r.Route("/api", func(api chi.Router) {
		api.Use(session.Middleware)

		api.With(issueLimiter.Middleware).Post("/session", session.IssueHandler())

		catalogSrv.Register(api)
		cartSrv.Register(api)
		wishlistSrv.Register(api)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(st Stores, log *zap.Logger) http.HandlerFunc {
	pings := []struct {
		name string
		ping func(context.Context) error
	}{
		{"catalog", st.Catalog.Ping},
		{"cart", st.Cart.Ping},
		{"wishlist", st.Wishlist.Ping},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, p := range pings {
			ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
			err := p.ping(ctx)
			cancel()

			if err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("store", p.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
