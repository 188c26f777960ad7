package handler

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/blues/tfs/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *TokenHandler {
	t.Helper()

	gin.SetMode(gin.TestMode)
	gateway := store.NewFileGateway(filepath.Join(t.TempDir(), "snapshot.json"))
	st := store.New(gateway, false)
	require.NoError(t, st.Init())
	return NewTokenHandler(st)
}

func TestGetTrendingInvalidLimit(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/tokens/trending?limit=abc", nil)

	h.GetTrending(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTrendingDefaultLimit(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/tokens/trending", nil)

	h.GetTrending(c)
	require.Equal(t, http.StatusOK, w.Code)
}
