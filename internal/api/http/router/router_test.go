package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/cogedon-server/internal/api/http/context"
	"github.com/dtroode/cogedon-server/internal/mocks"
	"github.com/dtroode/cogedon-server/internal/model"
	"github.com/dtroode/cogedon-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(nil, nil, nil, nil, httpctx.NewManager(), testutil.MakeNoopLogger(), Options{})
	e := r.Register()
	require.NotNil(t, e)

	routes := map[string]bool{}
	for _, ri := range e.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"POST " + EndpointRegister,
		"POST " + EndpointLogin,
		"POST " + EndpointReport,
		"POST " + EndpointFilter,
		"GET " + EndpointCurrentUser,
		"GET " + EndpointHeatmap,
		"GET " + EndpointHealth,
		"GET " + EndpointMetrics,
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestRouter_CurrentUserUsesToken(t *testing.T) {
	auth := mocks.NewAuthService(t)
	resolver := mocks.NewSessionResolver(t)

	resolver.On("Resolve", mock.Anything, "tok").Return(model.Session{UserID: 4, MarkID: 1}, nil).Once()
	auth.On("CurrentIdentity", mock.Anything, int64(4)).Return(model.User{ID: 4, Name: "Ana", Surname: "Pérez"}, nil).Once()

	e := New(auth, nil, resolver, nil, httpctx.NewManager(), testutil.MakeNoopLogger(), Options{}).Register()

	req := httptest.NewRequest(http.MethodGet, EndpointCurrentUser, nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":4,"nombre":"Ana","apellido":"Pérez"}`, w.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	e := New(nil, nil, nil, nil, httpctx.NewManager(), testutil.MakeNoopLogger(), Options{}).Register()

	req := httptest.NewRequest(http.MethodOptions, EndpointReport, nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_StaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "admin.html"), []byte("<h1>mapa</h1>"), 0o600))

	e := New(nil, nil, nil, nil, httpctx.NewManager(), testutil.MakeNoopLogger(), Options{StaticDir: dir}).Register()

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin.html", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mapa")
}
