package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	orderingapp "github.com/orderflow/backend/internal/application/ordering"
	shippingapp "github.com/orderflow/backend/internal/application/shipping"
	"github.com/orderflow/backend/internal/infrastructure/cache"
	"github.com/orderflow/backend/internal/infrastructure/collaborator"
	"github.com/orderflow/backend/internal/infrastructure/config"
	"github.com/orderflow/backend/internal/infrastructure/event"
	"github.com/orderflow/backend/internal/infrastructure/logger"
	"github.com/orderflow/backend/internal/interfaces/http/handler"
	"github.com/orderflow/backend/internal/interfaces/http/middleware"
	"github.com/orderflow/backend/internal/interfaces/http/router"
)

//	@title			OrderFlow API
//	@version		1.0
//	@description	Order-taking and shipping backend built around a place-order workflow

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting OrderFlow backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One bus per context: order events feed shipping, shipping events
	// feed downstream listeners
	orderBus := event.NewChannelEventBus("orders", cfg.Event.BusCapacity, log)
	shippingBus := event.NewChannelEventBus("shipping", cfg.Event.BusCapacity, log)

	// Shipping context. The OrderPlaced handler is wrapped for
	// idempotency so a redelivered event cannot create a second
	// shipment.
	idempotencyStore := cache.NewInMemoryIdempotencyStore()
	defer func() {
		_ = idempotencyStore.Close()
	}()

	shipOrderService := shippingapp.NewShipOrderService(shippingBus, log)
	orderBus.Subscribe(event.NewIdempotentHandler(
		shippingapp.NewOrderPlacedHandler(shipOrderService, log),
		idempotencyStore,
		log,
	))
	shippingBus.Subscribe(shippingapp.NewOrderShippedHandler(log))

	// Order-taking context with its collaborators
	catalog := collaborator.NewSeededCatalog()
	placeOrderService := orderingapp.NewPlaceOrderService(
		collaborator.NewStaticAddressChecker(),
		catalog,
		catalog,
		collaborator.NewHTMLLetterRenderer(),
		collaborator.NewLoggingAcknowledgmentSender(log),
		orderBus,
		log,
	)

	// The buses outlive the signal context; Stop ends them after the
	// HTTP server has drained
	if err := orderBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start order event bus", zap.Error(err))
	}
	if err := shippingBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start shipping event bus", zap.Error(err))
	}

	// HTTP interface
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(),
	)

	r := router.NewRouter(engine)
	r.Register(handler.NewOrderHandler(placeOrderService)).
		Register(handler.NewSystemHandler())
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Event.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server forced to shutdown", zap.Error(err))
		}

		// Drain the order bus before the shipping bus so in-flight
		// OrderPlaced events still reach the shipping context
		if err := orderBus.Stop(shutdownCtx); err != nil {
			log.Error("Order event bus stop failed", zap.Error(err))
		}
		if err := shippingBus.Stop(shutdownCtx); err != nil {
			log.Error("Shipping event bus stop failed", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
