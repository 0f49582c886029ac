package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStudioProductPrependsAsCustom(t *testing.T) {
	setup(t)

	recorder := do(t, http.MethodPost, "/api/studio/products",
		`{"name":"AI Neon Drift","price":189,"description":"one of one","image":"data:image/png;base64,AAAA"}`, nil)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	listed := Catalog.List()
	require.NotEmpty(t, listed)
	assert.Equal(t, "AI Neon Drift", listed[0].Name, "studio products lead the catalog")
	assert.Equal(t, "Custom", string(listed[0].Category))
	assert.NotEmpty(t, listed[0].ID)
}

func TestAddStudioProductRequiresImage(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPost, "/api/studio/products",
		`{"name":"AI Neon Drift","price":189}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStudioImageValidation(t *testing.T) {
	setup(t)

	recorder := do(t, http.MethodPost, "/api/studio/image", `{"prompt":"neon high-top","size":"8K"}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code, "unknown quality tier")

	recorder = do(t, http.MethodPost, "/api/studio/image", `{"size":"1K"}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code, "prompt required")
}

func TestStudioImageWithoutServiceFailsUpstream(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPost, "/api/studio/image", `{"prompt":"neon high-top","size":"1K"}`, nil)
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestMarketAnalysisWithoutServiceFailsUpstream(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPost, "/api/studio/market-analysis", `{"categories":["Running"]}`, nil)
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestMarketAnalysisRejectsUnknownCategory(t *testing.T) {
	setup(t)
	recorder := do(t, http.MethodPost, "/api/studio/market-analysis", `{"categories":["Trail"]}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
