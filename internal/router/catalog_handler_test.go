package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesRequireSession(t *testing.T) {
	setup(t)

	recorder := do(t, http.MethodDelete, "/api/admin/products/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = do(t, http.MethodDelete, "/api/admin/products/1", "", map[string]string{"X-Session-Token": "bogus"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	setup(t)
	_, token := Sessions.Login("Bo", "bo@example.com", "user")

	recorder := do(t, http.MethodDelete, "/api/admin/products/1", "", map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	_, ok := Catalog.Get("1")
	assert.True(t, ok, "the product must survive the rejected delete")
}

func TestCreateProduct(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPost, "/api/admin/products",
		`{"name":"Night Fade","price":199.99,"category":"Running","description":"glow sole"}`,
		map[string]string{"X-Session-Token": token})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	resp := decode(t, recorder)
	data := resp.Data.(map[string]interface{})
	id := data["id"].(string)
	require.NotEmpty(t, id)

	created, ok := Catalog.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Night Fade", created.Name)
	assert.Equal(t, "Kenya-Amazon", created.Brand)

	listed := Catalog.List()
	assert.Equal(t, id, listed[len(listed)-1].ID, "admin adds append")
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPost, "/api/admin/products",
		`{"name":"Night Fade","price":199.99,"category":"Trail"}`,
		map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateProductWholesale(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPut, "/api/admin/products/2",
		`{"name":"Street Legend High 2","brand":"Kenya-Amazon","price":125,"description":"v2","image":"https://img","sizes":[8,9],"category":"Lifestyle","rating":4.5,"reviews":89}`,
		map[string]string{"X-Session-Token": token})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got, ok := Catalog.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Street Legend High 2", got.Name)
	assert.Equal(t, 125.0, got.Price)
	assert.Equal(t, []float64{8, 9}, got.Sizes)
}

func TestUpdateProductRejectsNegativePrice(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPut, "/api/admin/products/2",
		`{"name":"Street Legend High","brand":"Kenya-Amazon","price":-50,"sizes":[8,9],"category":"Lifestyle"}`,
		map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())

	got, ok := Catalog.Get("2")
	require.True(t, ok)
	assert.Equal(t, 120.0, got.Price, "the rejected update must not touch the catalog")
}

func TestUpdateProductRejectsOriginalPriceBelowPrice(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPut, "/api/admin/products/2",
		`{"name":"Street Legend High","brand":"Kenya-Amazon","price":120,"originalPrice":80,"sizes":[8,9],"category":"Lifestyle"}`,
		map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusBadRequest, recorder.Code, recorder.Body.String())

	got, ok := Catalog.Get("2")
	require.True(t, ok)
	assert.Nil(t, got.OriginalPrice, "the rejected update must not touch the catalog")
}

func TestUpdateProductAcceptsMarkedDownPrice(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPut, "/api/admin/products/2",
		`{"name":"Street Legend High","brand":"Kenya-Amazon","price":90,"originalPrice":120,"sizes":[8,9],"category":"Lifestyle"}`,
		map[string]string{"X-Session-Token": token})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got, ok := Catalog.Get("2")
	require.True(t, ok)
	assert.Equal(t, 90.0, got.Price)
	require.NotNil(t, got.OriginalPrice)
	assert.Equal(t, 120.0, *got.OriginalPrice)
}

func TestUpdateProductNotFound(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPut, "/api/admin/products/ghost",
		`{"name":"Ghost","price":1,"category":"Custom"}`,
		map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteProduct(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodDelete, "/api/admin/products/1", "", map[string]string{"X-Session-Token": token})
	require.Equal(t, http.StatusOK, recorder.Code)
	_, ok := Catalog.Get("1")
	assert.False(t, ok)

	recorder = do(t, http.MethodDelete, "/api/admin/products/1", "", map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestImportCatalogAcknowledgesWithoutMerging(t *testing.T) {
	setup(t)
	token := adminToken(t)
	before := len(Catalog.List())

	recorder := do(t, http.MethodPost, "/api/admin/catalog/import",
		`[{"id":"x1","name":"Imported","price":10,"category":"Custom","sizes":[9]}]`,
		map[string]string{"X-Session-Token": token})
	require.Equal(t, http.StatusOK, recorder.Code)

	resp := decode(t, recorder)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["received"])
	assert.Equal(t, float64(0), data["merged"])
	assert.Len(t, Catalog.List(), before, "import is an acknowledgment stub, nothing merges")
}

func TestApplyCampaignOffers(t *testing.T) {
	setup(t)
	token := adminToken(t)

	recorder := do(t, http.MethodPost, "/api/admin/offers/apply",
		`{"suggestions":[{"productId":"2","suggestedPrice":100,"reasoning":"sale"},{"productId":"ghost","suggestedPrice":5,"reasoning":"skip me"}]}`,
		map[string]string{"X-Session-Token": token})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	resp := decode(t, recorder)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["applied"])

	got, _ := Catalog.Get("2")
	assert.Equal(t, 100.0, got.Price)
	require.NotNil(t, got.OriginalPrice)
	assert.Equal(t, 120.0, *got.OriginalPrice)
}

func TestGenerateCampaignOffersWithoutService(t *testing.T) {
	setup(t)
	token := adminToken(t)

	// generation service is never initialized in tests
	recorder := do(t, http.MethodPost, "/api/admin/offers/generate",
		`{"theme":"Back to School"}`, map[string]string{"X-Session-Token": token})
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}
