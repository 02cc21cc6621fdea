package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/events"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
)

type App struct {
	ctx            context.Context
	cfg            config.Config
	blobStorage    port.BlobStorage
	eventsProducer port.EventProducer
	cartService    *service.CartService
	catalogService service.CatalogService
	httpServer     httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initEventsProducer()
	app.initBlobStorage()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"

	seedBrokers := app.cfg.Broker.SeedBrokers
	if len(seedBrokers) == 0 {
		slog.Info("no seed brokers configured, client events are discarded",
			"op", op)
		app.eventsProducer = events.NopProducer{}
		return
	}

	serde, err := schema.NewSerdeClientEventV1()
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := events.NewClientEventsProducer(
		events.ProducerClientOpt(
			app.ctx, seedBrokers, app.cfg.Broker.ClientEventsTopic,
		),
		events.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.eventsProducer = producer
}

func (app *App) initBlobStorage() {
	const op = "App.initBlobStorage"

	switch driver := app.cfg.Cart.Storage; driver {
	case "memory":
		app.blobStorage = storage.NewMemoryStorage()
	case "file":
		s, err := storage.NewFileStorage(app.cfg.Cart.FilePath)
		if err != nil {
			app.fallDown(op, err)
		}
		app.blobStorage = s
	case "sqlite":
		s, err := storage.NewSQLiteStorage(app.ctx, app.cfg.Cart.SQLitePath)
		if err != nil {
			app.fallDown(op, err)
		}
		app.blobStorage = s
	case "redis":
		s, err := storage.NewRedisStorage(app.ctx, app.cfg.Cart.RedisAddr)
		if err != nil {
			app.fallDown(op, err)
		}
		app.blobStorage = s
	default:
		app.fallDown(op, fmt.Errorf("unknown cart storage: %q", driver))
	}
}

func (app *App) initCoreServices() {
	cartRepo := storage.NewCartRepository(app.blobStorage, app.cfg.Cart.Key)
	app.cartService = service.NewCartService(cartRepo, app.eventsProducer)

	catalogClient := catalog.New(
		app.cfg.Catalog.BaseURL, app.cfg.Catalog.ProductsLimit,
	)
	app.catalogService = service.NewCatalogService(
		catalogClient, app.eventsProducer, app.cfg.Catalog.DefaultCategory,
	)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(
		mux, app.catalogService, app.cfg.Catalog.DefaultCategory,
	)
	httphandler.RegisterCart(mux, app.cartService, app.cartService)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.eventsProducer.Close()
	if c, ok := app.blobStorage.(interface{ Close() }); ok {
		c.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
