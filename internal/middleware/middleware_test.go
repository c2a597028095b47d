package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/ponto-inteligente/internal/config"
	"github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"
	"github.com/BruksfildServices01/ponto-inteligente/internal/models"
	"github.com/BruksfildServices01/ponto-inteligente/internal/requestid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "segredo-de-teste", JWTExpiration: time.Hour}
}

func protectedRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employee": EmployeeID(c),
			"company":  c.GetUint(ContextCompanyID),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func call(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(cfg, &models.Employee{ID: 4, CompanyID: 2, Role: models.RoleUsuario})
	require.NoError(t, err)

	w := call(protectedRouter(cfg), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"employee":4,"company":2}`, w.Body.String())
}

func TestCaller(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(cfg, &models.Employee{ID: 4, CompanyID: 2, Role: models.RoleAdmin})
	require.NoError(t, err)

	var got ponto.Caller
	r := gin.New()
	r.GET("/protected", AuthMiddleware(cfg), func(c *gin.Context) {
		got = Caller(c)
		c.Status(http.StatusOK)
	})

	w := call(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ponto.Caller{EmployeeID: 4, CompanyID: 2, Role: models.RoleAdmin}, got)
	assert.True(t, got.IsAdmin())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cfg := testConfig()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1, "empresaId": 1, "role": "ROLE_ADMIN",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	otherSecret, err := GenerateToken(&config.Config{JWTSecret: "outro", JWTExpiration: time.Hour}, &models.Employee{ID: 1})
	require.NoError(t, err)

	for name, token := range map[string]string{
		"missing":      "",
		"garbage":      "abc.def.ghi",
		"expired":      expiredToken,
		"wrong secret": otherSecret,
	} {
		t.Run(name, func(t *testing.T) {
			w := call(protectedRouter(cfg), token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"data":null`)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RequireAdmin())

	user, err := GenerateToken(cfg, &models.Employee{ID: 1, CompanyID: 1, Role: models.RoleUsuario})
	require.NoError(t, err)
	admin, err := GenerateToken(cfg, &models.Employee{ID: 2, CompanyID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	w := call(r, user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"data":null,"errors":["Acesso negado."]}`, w.Body.String())

	w = call(r, admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(zaptest.NewLogger(t)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, requestid.From(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestid.Header, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(requestid.Header))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Body.String(), 36)
	assert.Equal(t, w.Body.String(), w.Header().Get(requestid.Header))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:4200"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("http://localhost:4200")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), requestid.Header)

	w = preflight("http://evil.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// sem lista, qualquer origem
	anyOrigin := gin.New()
	anyOrigin.Use(CORSMiddleware(nil))
	anyOrigin.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://qualquer.example")
	w = httptest.NewRecorder()
	anyOrigin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://qualquer.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.POST("/auth", RateLimitByIP(rate.Every(time.Hour), 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	post := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth", nil)
		req.RemoteAddr = ip + ":5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, post("10.0.0.1").Code)

	w := post("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"data":null,"errors":["Muitas requisições. Tente novamente em instantes."]}`, w.Body.String())

	// outro IP tem seu próprio balde
	assert.Equal(t, http.StatusOK, post("10.0.0.2").Code)
}
