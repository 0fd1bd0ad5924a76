package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ethiopulse/backend/core"
	"github.com/ethiopulse/backend/core/catalog"
	"github.com/ethiopulse/backend/core/chat"
	"github.com/ethiopulse/backend/core/user"
)

type (
	// Deps holds the services the API server dispatches into.
	Deps struct {
		Conf         *core.Config
		Logger       core.Logger
		UserSvc      user.Service
		CatalogSvc   catalog.Service
		AssistantSvc core.AssistantService
		Relay        *chat.Relay
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		addr     string
		shutdown chan<- os.Signal
		deps     *Deps

		app        *echo.Echo
		validate   *validator.Validate
		translator ut.Translator
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, shutdown chan<- os.Signal, deps *Deps) Server {
	validate, translator := core.NewValidator()
	user.RegisterValidators(validate, translator)

	s := &server{
		addr:       addr,
		shutdown:   shutdown,
		deps:       deps,
		app:        echo.New(),
		validate:   validate,
		translator: translator,
	}
	s.setup()
	return s
}

// signalShutdown tells the main goroutine to initiate a graceful shutdown.
func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- syscall.SIGTERM
	}
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.translator, s.signalShutdown)
	s.app.Debug = conf.Debug && !conf.TestMode
	s.app.HideBanner = true

	s.app.GET("/", home)
	s.app.GET("/api/health", health)

	api := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(newJWTConfig(conf))

	registerAssistantAPI(api, s.deps.AssistantSvc, s.deps.Logger, s.validate)
	registerUserAPI(api, jwt, conf, s.deps.UserSvc, s.validate)
	registerCatalogAPI(api, jwt, s.deps.CatalogSvc, s.validate)
	registerWsAPI(s.app, s.deps.Relay, s.deps.Logger)
}

func (s *server) Start() error {
	return s.app.Start(s.addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the EthioPulse API!")
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
