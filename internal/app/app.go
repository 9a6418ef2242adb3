package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/sessions"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/minimarket/marketplace-service/config"
	"github.com/minimarket/marketplace-service/internal/controller"
	"github.com/minimarket/marketplace-service/internal/infrastructure/tracing"
	custommw "github.com/minimarket/marketplace-service/internal/middleware"
	"github.com/minimarket/marketplace-service/internal/repository"
	"github.com/minimarket/marketplace-service/internal/service"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	app.Server = e

	renderer, err := CreateTemplateRenderer(app.Config.TemplatesGlob)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}
	e.Renderer = renderer

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("marketplace-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Metrics names carry no service prefix so they aggregate cleanly.
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(custommw.Logger)
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(app.Config.SessionSecret))))
	e.Use(custommw.ResolveSession)

	userRepo := repository.CreateUserRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)

	userSvc := service.CreateUserService(userRepo)
	catalogSvc := service.CreateCatalogService(productRepo)
	cartSvc := service.CreateCartService(cartRepo, productRepo)

	protected := e.Group("", custommw.RequireLogin)

	controller.CreateUserController(e, protected, userSvc)
	controller.CreateProductController(e, protected, catalogSvc)
	controller.CreateCartController(protected, cartSvc)

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	if app.Server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
