package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BrewStore/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register adds the product routes to the storefront's /api router.
func (s *Server) Register(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/popular", s.popular)
	r.Get("/products/category/{category}", s.byCategory)
	r.Get("/products/{id}", s.get)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to fetch products", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) popular(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListPopular(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to fetch popular products", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) byCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := s.Store.ListByCategory(r.Context(), category)
	if err != nil {
		s.fail(w, r, "Failed to fetch products by category", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	p, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, "Failed to fetch product", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error("catalog store failed", zap.Error(err), zap.String("path", r.URL.Path))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, msg)
}
