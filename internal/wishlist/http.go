package wishlist

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

// Register adds the wishlist routes to the storefront's /api router.
// The session middleware must run before them.
func (s *Server) Register(r chi.Router) {
	r.Get("/wishlist", s.list)
	r.Post("/wishlist", s.create)
	r.Delete("/wishlist/{id}", s.remove)
	r.Get("/wishlist/check/{productId}", s.check)
}

type createReq struct {
	ProductID int64 `json:"productId"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	items, err := s.Store.ListForSession(r.Context(), session.FromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "Failed to fetch wishlist items", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := decodeJSON(w, r, &req); err != nil || req.ProductID <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "Invalid wishlist item data")
		return
	}

	it, err := s.Store.Add(r.Context(), req.ProductID, session.FromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "Failed to add wishlist item", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, it)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		kit.WriteError(w, r, http.StatusNotFound, "Wishlist item not found")
		return
	}

	ok, err := s.Store.Remove(r.Context(), id)
	if err != nil {
		s.fail(w, r, "Failed to remove wishlist item", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Wishlist item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		// A malformed id can never be in the wishlist.
		kit.WriteJSON(w, http.StatusOK, map[string]bool{"isInWishlist": false})
		return
	}

	exists, err := s.Store.Exists(r.Context(), productID, session.FromContext(r.Context()))
	if err != nil {
		s.fail(w, r, "Failed to check wishlist status", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]bool{"isInWishlist": exists})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error("wishlist store failed", zap.Error(err), zap.String("path", r.URL.Path))
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
