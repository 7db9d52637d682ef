package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/palmrow/storefront-backend/internal/config"
	contacthandler "github.com/palmrow/storefront-backend/internal/contact/handler"
	contactservice "github.com/palmrow/storefront-backend/internal/contact/service"
	contactstore "github.com/palmrow/storefront-backend/internal/contact/store"
	loyaltyhandler "github.com/palmrow/storefront-backend/internal/loyalty/handler"
	loyaltyservice "github.com/palmrow/storefront-backend/internal/loyalty/service"
	loyaltystore "github.com/palmrow/storefront-backend/internal/loyalty/store"
	"github.com/palmrow/storefront-backend/internal/metrics"
	productdb "github.com/palmrow/storefront-backend/internal/product/db"
	producthandler "github.com/palmrow/storefront-backend/internal/product/handler"
	productservice "github.com/palmrow/storefront-backend/internal/product/service"
	promotiondb "github.com/palmrow/storefront-backend/internal/promotion/db"
	promotionhandler "github.com/palmrow/storefront-backend/internal/promotion/handler"
	promotionservice "github.com/palmrow/storefront-backend/internal/promotion/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/palmrow/storefront-backend/docs"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/ping", PingHandler)

	productRepository := productdb.New(cfg.Data.ProductsDir, log)
	productService := productservice.New(productRepository, log)
	productHandler := producthandler.New(productService, log)

	log.Info("register product handlers")

	productHandler.Register(router)

	promotionRepository := promotiondb.New(cfg.Data.PromotionsDir, log)
	promotionService := promotionservice.New(promotionRepository, log)
	promotionHandler := promotionhandler.New(promotionService, log)

	log.Info("register promotion handlers")

	promotionHandler.Register(router)

	contactStore := contactstore.New(cfg.Data.MessagesFile, log)
	contactService := contactservice.New(contactStore, log)
	contactHandler := contacthandler.New(contactService, log)

	log.Info("register contact handlers")

	contactHandler.Register(router)

	loyaltyStore := loyaltystore.New(cfg.Data.LoyaltyFile, log)
	loyaltyService := loyaltyservice.New(loyaltyStore, log)
	loyaltyHandler := loyaltyhandler.New(loyaltyService, log)

	log.Info("register loyalty handlers")

	loyaltyHandler.Register(router)

	// Pages, page scripts and images are served verbatim from the public root.
	router.Handle("/*", http.FileServer(http.Dir(cfg.Data.PublicDir)))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200	{string}	string
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
