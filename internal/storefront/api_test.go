package storefront_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"BrewStore/internal/cart"
	"BrewStore/internal/catalog"
	"BrewStore/internal/storefront"
	"BrewStore/internal/wishlist"
)

func newStorefrontTS(t *testing.T) *httptest.Server {
	t.Helper()

	h := storefront.NewHandler(
		storefront.Stores{
			Catalog:  catalog.NewStore(),
			Cart:     cart.NewStore(),
			Wishlist: wishlist.NewStore(),
		},
		storefront.HTTPDeps{
			Log:     zap.NewNop(),
			Service: "storefront",
			// Registry: nil
		},
	)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any, sessionID string) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestAPI_Products(t *testing.T) {
	ts := newStorefrontTS(t)

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products", nil, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status=%d body=%s", resp.StatusCode, raw)
		}
		var products []catalog.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			t.Fatalf("decode: %v body=%s", err, raw)
		}
		if len(products) != 6 {
			t.Fatalf("len=%d want=6", len(products))
		}
		if products[0].ID != 1 || products[0].Price != "5.49" {
			t.Fatalf("products[0]=%+v", products[0])
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products/popular", nil, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("popular status=%d", resp.StatusCode)
		}
		var products []catalog.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(products) != 4 {
			t.Fatalf("popular len=%d want=4", len(products))
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/products/category/espresso", nil, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("category status=%d", resp.StatusCode)
		}
		var products []catalog.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(products) != 1 || products[0].Category != "Espresso" {
			t.Fatalf("category result=%+v", products)
		}
	}

	{
		resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/products/999", nil, "")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("absent product status=%d want=404", resp.StatusCode)
		}
	}
}

func TestAPI_CartFlow(t *testing.T) {
	ts := newStorefrontTS(t)

	var created cart.Item
	{
		resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{
			"productId": 1,
			"quantity":  2,
			"size":      "Medium",
		}, "abc")

		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create status=%d body=%s", resp.StatusCode, raw)
		}
		if err := json.Unmarshal(raw, &created); err != nil {
			t.Fatalf("decode: %v body=%s", err, raw)
		}
		if created.ID == 0 || created.ProductID != 1 || created.Quantity != 2 || created.Size != "Medium" {
			t.Fatalf("created=%+v", created)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, "abc")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d", resp.StatusCode)
		}
		var items []cart.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(items) != 1 || items[0].ID != created.ID {
			t.Fatalf("items=%+v", items)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, "xyz")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("other session list status=%d", resp.StatusCode)
		}
		var items []cart.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("session xyz sees %+v", items)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodPatch, ts.URL+"/api/cart/"+itoa(created.ID), map[string]any{
			"quantity": 5,
		}, "abc")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("patch status=%d body=%s", resp.StatusCode, raw)
		}
		var updated cart.Item
		if err := json.Unmarshal(raw, &updated); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if updated.Quantity != 5 {
			t.Fatalf("quantity=%d want=5", updated.Quantity)
		}
	}

	{
		resp, _ := doJSON(t, http.MethodPatch, ts.URL+"/api/cart/999", map[string]any{
			"quantity": 1,
		}, "abc")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("patch absent status=%d want=404", resp.StatusCode)
		}
	}

	{
		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/cart/"+itoa(created.ID), nil, "abc")
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete status=%d want=204", resp.StatusCode)
		}

		resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/cart/"+itoa(created.ID), nil, "abc")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("second delete status=%d want=404", resp.StatusCode)
		}
	}
}

func TestAPI_CartValidation(t *testing.T) {
	ts := newStorefrontTS(t)

	cases := []map[string]any{
		{"quantity": 1, "size": "Medium"}, // productId missing
		{"productId": 1, "quantity": 1},   // size missing
	}

	for _, body := range cases {
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/cart", body, "abc")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body=%v status=%d want=400", body, resp.StatusCode)
		}
	}
}

func TestAPI_CartClear(t *testing.T) {
	ts := newStorefrontTS(t)

	doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": 1, "size": "Small"}, "abc")
	doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": 2, "size": "Small"}, "abc")
	doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": 3, "size": "Small"}, "xyz")

	resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/cart", nil, "abc")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("clear status=%d want=204", resp.StatusCode)
	}

	_, raw := doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, "abc")
	var items []cart.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("abc not cleared: %+v", items)
	}

	_, raw = doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, "xyz")
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("xyz touched by clear: %+v", items)
	}
}

func TestAPI_DefaultSession(t *testing.T) {
	ts := newStorefrontTS(t)

	// No header: both requests land in the shared default partition.
	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{
		"productId": 1,
		"size":      "Small",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d body=%s", resp.StatusCode, raw)
	}

	_, raw = doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, "default-session")
	var items []cart.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("default session items=%+v", items)
	}
}

func TestAPI_WishlistFlow(t *testing.T) {
	ts := newStorefrontTS(t)

	var first, second wishlist.Item
	{
		resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/wishlist", map[string]any{"productId": 1}, "abc")
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create status=%d body=%s", resp.StatusCode, raw)
		}
		if err := json.Unmarshal(raw, &first); err != nil {
			t.Fatalf("decode: %v", err)
		}

		// Duplicates are not prevented at this layer.
		resp, raw = doJSON(t, http.MethodPost, ts.URL+"/api/wishlist", map[string]any{"productId": 1}, "abc")
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("duplicate create status=%d", resp.StatusCode)
		}
		if err := json.Unmarshal(raw, &second); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if first.ID == second.ID {
			t.Fatalf("duplicate rows share id %d", first.ID)
		}
	}

	{
		resp, raw := doJSON(t, http.MethodGet, ts.URL+"/api/wishlist/check/1", nil, "abc")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("check status=%d", resp.StatusCode)
		}
		var check struct {
			IsInWishlist bool `json:"isInWishlist"`
		}
		if err := json.Unmarshal(raw, &check); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !check.IsInWishlist {
			t.Fatalf("isInWishlist=false after add")
		}
	}

	{
		resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/wishlist/"+itoa(first.ID), nil, "abc")
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete status=%d", resp.StatusCode)
		}
		resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/wishlist/"+itoa(second.ID), nil, "abc")
		if resp.StatusCode != http.StatusNoContent {
			t.Fatalf("delete status=%d", resp.StatusCode)
		}

		_, raw := doJSON(t, http.MethodGet, ts.URL+"/api/wishlist/check/1", nil, "abc")
		var check struct {
			IsInWishlist bool `json:"isInWishlist"`
		}
		if err := json.Unmarshal(raw, &check); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if check.IsInWishlist {
			t.Fatalf("isInWishlist=true after removing both rows")
		}
	}

	{
		resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/wishlist", map[string]any{}, "abc")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("empty body status=%d want=400", resp.StatusCode)
		}
		resp, _ = doJSON(t, http.MethodDelete, ts.URL+"/api/wishlist/999", nil, "abc")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("delete absent status=%d want=404", resp.StatusCode)
		}
	}
}

func TestAPI_SessionIssue(t *testing.T) {
	ts := newStorefrontTS(t)

	resp, raw := doJSON(t, http.MethodPost, ts.URL+"/api/session", nil, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("issue status=%d body=%s", resp.StatusCode, raw)
	}

	var issued struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(raw, &issued); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if issued.SessionID == "" {
		t.Fatalf("empty sessionId")
	}

	// The minted token scopes state like any other.
	doJSON(t, http.MethodPost, ts.URL+"/api/cart", map[string]any{"productId": 2, "size": "Large"}, issued.SessionID)
	_, raw = doJSON(t, http.MethodGet, ts.URL+"/api/cart", nil, issued.SessionID)
	var items []cart.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 || items[0].SessionID != issued.SessionID {
		t.Fatalf("items=%+v", items)
	}
}

func TestAPI_Health(t *testing.T) {
	ts := newStorefrontTS(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, _ := doJSON(t, http.MethodGet, ts.URL+path, nil, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d", path, resp.StatusCode)
		}
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
