package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "interior_estimator/docs" // generated by swag init
	"interior_estimator/internal/adapter/http/handlers"
	"interior_estimator/internal/adapter/http/middleware"
	"interior_estimator/internal/adapter/persistence/repository"
	"interior_estimator/internal/domain/pricing"
	"interior_estimator/internal/infrastructure/cache"
	"interior_estimator/internal/infrastructure/config"
	"interior_estimator/internal/infrastructure/database"
	pricesource "interior_estimator/internal/infrastructure/pricing"
	"interior_estimator/internal/usecase"
	"interior_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	ErrUnknownPricingSource = errors.New("unknown PRICING_SOURCE")
	ErrUnknownSessionStore  = errors.New("unknown SESSION_STORE")
)

// Handlers bundles everything the router serves.
type Handlers struct {
	Wizard   *handlers.WizardHandler
	Pricing  *handlers.PricingHandler
	Estimate *handlers.EstimateHandler
	Limiter  *middleware.RateLimiter
}

// Run wires the configured backends and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	h, cleanup, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      NewRouter(cfg, log, h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
		log.Info("shutting down http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// NewRouter registers the middlewares and every route under /v1.
func NewRouter(cfg config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	auth := middleware.RequireBearer(cfg.JWTSecret)
	addWizardRoutes(v1, h.Wizard, middleware.RateLimit(h.Limiter), auth)
	addPricingRoutes(v1, h.Pricing)
	addEstimateRoutes(v1, h.Estimate, auth)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			c.AllowCredentials = false
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
		return c
	}
	c.AllowOrigins = origins
	return c
}

func buildHandlers(ctx context.Context, cfg config.Config, log *zap.Logger) (Handlers, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var ddb *dynamodb.Client
	dynamo := func() (*dynamodb.Client, error) {
		if ddb != nil {
			return ddb, nil
		}
		client, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		ddb = client
		return ddb, nil
	}

	source, err := newPriceSource(cfg, log, dynamo)
	if err != nil {
		return Handlers{}, nil, err
	}
	sessions, err := newSessionStore(ctx, cfg, dynamo, &closers)
	if err != nil {
		cleanup()
		return Handlers{}, nil, err
	}
	log.Info("backends configured",
		zap.String("pricing_source", cfg.PricingSource),
		zap.String("session_store", cfg.SessionStore),
	)

	catalogUseCase := usecase.NewCatalogUseCase(source, log)
	wizardUseCase := usecase.NewWizardUseCase(sessions, catalogUseCase, pricing.Calculate, log)
	estimateUseCase := usecase.NewEstimateUseCase(catalogUseCase, pricing.Calculate)

	limiter := middleware.NewRateLimiter(cfg.SessionRateLimit, cfg.SessionRateWindow)
	closers = append(closers, limiter.Stop)

	return Handlers{
		Wizard:   handlers.NewWizardHandler(wizardUseCase),
		Pricing:  handlers.NewPricingHandler(catalogUseCase),
		Estimate: handlers.NewEstimateHandler(estimateUseCase),
		Limiter:  limiter,
	}, cleanup, nil
}

func newPriceSource(cfg config.Config, log *zap.Logger, dynamo func() (*dynamodb.Client, error)) (interfaces.IPriceSource, error) {
	switch cfg.PricingSource {
	case config.PricingSourceDynamo:
		ddb, err := dynamo()
		if err != nil {
			return nil, err
		}
		return repository.NewPriceDynamoRepository(ddb, cfg.PriceTables), nil
	case config.PricingSourceHTTP:
		src, err := pricesource.NewHTTPPriceSource(cfg.PricingAPIBaseURL, cfg.PricingAPITimeout, log)
		if err != nil {
			return nil, err
		}
		return src, nil
	case config.PricingSourceFile:
		return pricesource.NewFilePriceSource(cfg.PricingFile), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPricingSource, cfg.PricingSource)
	}
}

func newSessionStore(ctx context.Context, cfg config.Config, dynamo func() (*dynamodb.Client, error), closers *[]func()) (interfaces.IWizardSessionRepository, error) {
	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return repository.NewWizardSessionMemoryRepository(cfg.SessionTTL), nil
	case config.SessionStoreRedis:
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, func() { _ = rdb.Close() })
		return repository.NewWizardSessionRedisRepository(rdb, cfg.SessionTTL), nil
	case config.SessionStoreDynamo:
		ddb, err := dynamo()
		if err != nil {
			return nil, err
		}
		return repository.NewWizardSessionDynamoRepository(ddb, cfg.SessionsTable, cfg.SessionTTL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, cfg.SessionStore)
	}
}
