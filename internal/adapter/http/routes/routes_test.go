package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interior_estimator/internal/adapter/http/handlers"
	"interior_estimator/internal/adapter/http/handlers/mocks"
	"interior_estimator/internal/adapter/http/middleware"
	"interior_estimator/internal/adapter/persistence/repository"
	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/infrastructure/config"
	pricesource "interior_estimator/internal/infrastructure/pricing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func noDynamo() (*dynamodb.Client, error) {
	return nil, errors.New("dynamodb not available in tests")
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIWizardUseCase, *mocks.MockICatalogUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	wizardUC := mocks.NewMockIWizardUseCase(ctrl)
	catalogUC := mocks.NewMockICatalogUseCase(ctrl)
	estimateUC := mocks.NewMockIEstimateUseCase(ctrl)

	limiter := middleware.NewRateLimiter(5, time.Minute)
	t.Cleanup(limiter.Stop)

	cfg := config.Config{JWTSecret: "secret", CORSAllowedOrigins: []string{"https://app.example"}}
	r := NewRouter(cfg, zap.NewNop(), Handlers{
		Wizard:   handlers.NewWizardHandler(wizardUC),
		Pricing:  handlers.NewPricingHandler(catalogUC),
		Estimate: handlers.NewEstimateHandler(estimateUC),
		Limiter:  limiter,
	})
	return r, wizardUC, catalogUC
}

func TestNewRouter(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("breakdown requires a token", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/wizard/sess-1/breakdown", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("every price table is routed", func(t *testing.T) {
		r, _, catalogUC := newTestRouter(t)
		for _, table := range entities.PriceTables {
			catalogUC.EXPECT().Table(gomock.Any(), table).Return([]entities.PriceRecord{}, nil)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/pricing/"+string(table), nil))
			assert.Equal(t, http.StatusOK, w.Code, string(table))
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		r, _, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodOptions, "/v1/wizard", nil)
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestNewRouter_EstimatesRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	estimateUC := mocks.NewMockIEstimateUseCase(ctrl)
	limiter := middleware.NewRateLimiter(5, time.Minute)
	t.Cleanup(limiter.Stop)

	r := NewRouter(config.Config{JWTSecret: "secret"}, zap.NewNop(), Handlers{
		Wizard:   handlers.NewWizardHandler(mocks.NewMockIWizardUseCase(ctrl)),
		Pricing:  handlers.NewPricingHandler(mocks.NewMockICatalogUseCase(ctrl)),
		Estimate: handlers.NewEstimateHandler(estimateUC),
		Limiter:  limiter,
	})

	post := func(path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	rooms := `{"package":"comfort","rooms":{"bedroom_1":{"area":120,"false_ceiling":true}}}`

	assert.Equal(t, http.StatusUnauthorized, post("/v1/estimates", rooms, "").Code)
	assert.Equal(t, http.StatusUnauthorized, post("/v1/estimates/commercial", `{"space_type":"office","area_bucket":"500-1000"}`, "").Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "designer-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	estimateUC.EXPECT().Calculate(gomock.Any(), gomock.Any(), "comfort").
		Return(entities.EstimateResult{Package: "comfort", Total: 2340, Breakdown: map[string]float64{"bedroom_1_falseCeiling": 2340}}, nil)
	w := post("/v1/estimates", rooms, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bedroom_1_falseCeiling")
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"https://a.example", "*"}).AllowAllOrigins)
	assert.False(t, corsConfig([]string{"*"}).AllowCredentials)

	c := corsConfig([]string{"https://a.example"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example"}, c.AllowOrigins)
}

func TestNewPriceSource(t *testing.T) {
	src, err := newPriceSource(config.Config{PricingSource: config.PricingSourceFile, PricingFile: "pricing.yaml"}, zap.NewNop(), noDynamo)
	require.NoError(t, err)
	assert.IsType(t, &pricesource.FilePriceSource{}, src)

	_, err = newPriceSource(config.Config{PricingSource: config.PricingSourceHTTP}, zap.NewNop(), noDynamo)
	assert.ErrorIs(t, err, pricesource.ErrMissingPricingAPIBaseURL)

	_, err = newPriceSource(config.Config{PricingSource: config.PricingSourceDynamo}, zap.NewNop(), noDynamo)
	assert.Error(t, err)

	_, err = newPriceSource(config.Config{PricingSource: "sheets"}, zap.NewNop(), noDynamo)
	assert.ErrorIs(t, err, ErrUnknownPricingSource)
}

func TestNewSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		var closers []func()
		store, err := newSessionStore(ctx, config.Config{SessionStore: config.SessionStoreMemory, SessionTTL: time.Hour}, noDynamo, &closers)
		require.NoError(t, err)
		assert.IsType(t, &repository.WizardSessionMemoryRepository{}, store)
		assert.Empty(t, closers)
	})

	t.Run("redis registers a closer", func(t *testing.T) {
		mr := miniredis.RunT(t)
		var closers []func()
		store, err := newSessionStore(ctx, config.Config{SessionStore: config.SessionStoreRedis, RedisAddr: mr.Addr(), SessionTTL: time.Hour}, noDynamo, &closers)
		require.NoError(t, err)
		assert.IsType(t, &repository.WizardSessionRedisRepository{}, store)
		require.Len(t, closers, 1)
		closers[0]()
	})

	t.Run("dynamodb unavailable", func(t *testing.T) {
		var closers []func()
		_, err := newSessionStore(ctx, config.Config{SessionStore: config.SessionStoreDynamo}, noDynamo, &closers)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		var closers []func()
		_, err := newSessionStore(ctx, config.Config{SessionStore: "etcd"}, noDynamo, &closers)
		assert.ErrorIs(t, err, ErrUnknownSessionStore)
	})
}
