package cart

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BrewStore/internal/session"
	"BrewStore/pkg/kit"
)

const maxBody = 1 << 20

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register adds the cart routes to the storefront's /api router. The
// session middleware must run before them.
func (s *Server) Register(r chi.Router) {
	r.Get("/cart", s.list)
	r.Post("/cart", s.create)
	r.Patch("/cart/{id}", s.update)
	r.Delete("/cart/{id}", s.remove)
	r.Delete("/cart", s.clear)
}

type createReq struct {
	ProductID      int64    `json:"productId"`
	Quantity       int      `json:"quantity"`
	Size           string   `json:"size"`
	Customizations []string `json:"customizations"`
}

type updateReq struct {
	Quantity *int `json:"quantity"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	items, err := s.Store.ListForSession(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "Failed to fetch cart items", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	if req.ProductID <= 0 || req.Size == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid cart item data")
		return
	}

	it, err := s.Store.Add(r.Context(), NewItem{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		Size:           req.Size,
		Customizations: req.Customizations,
		SessionID:      session.FromContext(r.Context()),
	})
	if err != nil {
		s.fail(w, r, "Failed to add cart item", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, it)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "Cart item not found")
		return
	}

	var req updateReq
	if err := decodeJSON(w, r, &req); err != nil || req.Quantity == nil {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid quantity")
		return
	}

	it, ok, err := s.Store.UpdateQuantity(r.Context(), id, *req.Quantity)
	if err != nil {
		s.fail(w, r, "Failed to update cart item", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart item not found")
		return
	}
	kit.WriteJSON(w, http.StatusOK, it)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "Cart item not found")
		return
	}

	ok, err := s.Store.Remove(r.Context(), id)
	if err != nil {
		s.fail(w, r, "Failed to remove cart item", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Cart item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Clear(r.Context(), session.FromContext(r.Context())); err != nil {
		s.fail(w, r, "Failed to clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error("cart store failed", zap.Error(err), zap.String("path", r.URL.Path))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, msg)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
