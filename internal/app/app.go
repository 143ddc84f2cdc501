package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/analytics"
	"github.com/niksmo/storefront/internal/adapter/authapi"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/orderapi"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
)

type coreServices struct {
	cart     *service.CartService
	checkout *service.CheckoutService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	kvdb       storage.KVDB
	catalog    catalog.Catalog
	service    coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCoreServices() {
	const op = "App.initCoreServices"

	cartSerde, err := schema.NewSerdeCartStateV1()
	if err != nil {
		app.fallDown(op, err)
	}

	kvdb, err := storage.NewKVDB(app.cfg.CartDBPath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.kvdb = kvdb

	cartStorage := storage.NewCartStateRepository(kvdb, cartSerde)
	app.catalog = catalog.New()
	orderClient := orderapi.New(app.cfg.Services.OrderURL)

	cartSvc := service.NewCart(cartStorage, app.catalog)
	cartSvc.OnChange(func(owner string, s domain.CartState) {
		slog.Debug("cart changed",
			"owner", owner, "items", len(s.Items), "total", s.Total)
	})

	app.service.cart = cartSvc
	app.service.checkout = service.NewCheckout(cartSvc, orderClient)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.catalog)
	httphandler.RegisterCart(mux, app.service.cart, app.service.cart)
	httphandler.RegisterCheckout(mux, app.service.checkout)
	authClient := authapi.New(app.cfg.Services.AuthURL)
	httphandler.RegisterAuth(mux, authClient)
	httphandler.RegisterOrders(mux, orderapi.New(app.cfg.Services.OrderURL))
	httphandler.RegisterAnalytics(
		mux, analytics.New(app.cfg.Services.AnalyticsURL), authClient,
	)

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
	app.kvdb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
