package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kenyaamazon/storefront-api/pkg/cart"
	"github.com/kenyaamazon/storefront-api/pkg/catalog"
	"github.com/kenyaamazon/storefront-api/pkg/global"
	"github.com/kenyaamazon/storefront-api/pkg/session"
)

// setup wires a fresh seeded catalog, in-memory carts and sessions onto a
// clean engine for each test.
func setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	Catalog = catalog.NewStore(catalog.SeedProducts())
	Carts = cart.NewMemoryStore()
	Sessions = session.NewManager()

	Router = gin.New()
	InitializeRoutes()
}

func do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	Router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) global.APIResponse {
	t.Helper()
	var resp global.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

// adminToken logs an admin in and returns the session token.
func adminToken(t *testing.T) string {
	t.Helper()
	_, token := Sessions.Login("Admin", "admin@example.com", "admin")
	return token
}
