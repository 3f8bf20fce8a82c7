package middleware_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"video-uploader/domain/repository"
	"video-uploader/infrastructure/credential"
	"video-uploader/interfaces/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedRouter(credentials repository.ICredential) *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.Auth(credentials))
	api.GET("/videos", func(c *gin.Context) {
		c.JSON(nethttp.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAuthRejectsWithoutCredential(t *testing.T) {
	router := guardedRouter(credential.NewStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("X-Redirect"))
}

func TestAuthPassesWithCredential(t *testing.T) {
	store := credential.NewStore()
	store.Set("opaque-session-token")
	router := guardedRouter(store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestAuthRejectsAgainAfterLogout(t *testing.T) {
	store := credential.NewStore()
	store.Set("opaque-session-token")
	router := guardedRouter(store)

	store.Clear()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/videos", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}
