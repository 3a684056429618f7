package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/remora/internal/config"
	"github.com/nfrund/remora/internal/database"
	"github.com/nfrund/remora/internal/eventqueue"
	"github.com/nfrund/remora/internal/handlers"
	"github.com/nfrund/remora/internal/homeview"
	"github.com/nfrund/remora/internal/i18n"
	"github.com/nfrund/remora/internal/logging"
	"github.com/nfrund/remora/internal/middleware"
	"github.com/nfrund/remora/internal/twofactor"
	"github.com/spf13/afero"
	"github.com/surrealdb/surrealdb.go"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB
	Cfg *config.Config

	queues      *eventqueue.Registry
	homeHandler *handlers.HomeHandler
	userStore   *database.UserStore
}

// New creates a new Server instance and wires every collaborator of the
// snapshot pipeline.
func New() *Server {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	db, err := database.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	locales, err := i18n.NewService(afero.NewOsFs(), cfg.TranslationsDir)
	if err != nil {
		slog.Error("Failed to load translation catalogs", "error", err)
		os.Exit(1)
	}

	userStore := database.NewUserStore(db)
	realmStore := database.NewRealmStore(db)
	streamStore := database.NewStreamStore(db)
	activityStore := database.NewActivityStore(db)
	billingStore := database.NewBillingStore(db)
	deviceStore := database.NewDeviceStore(db)

	queues := eventqueue.NewRegistry()

	builder := homeview.NewBuilder(
		queues,
		locales,
		homeview.NewBillingPolicy(billingStore),
		homeview.NewReadStateResolver(activityStore),
		streamStore,
		twofactor.NewService(deviceStore),
		homeview.SettingsFromConfig(cfg),
	)

	homeHandler := handlers.NewHomeHandler(builder, realmStore, streamStore)

	e := echo.New()
	e.Validator = handlers.NewRequestValidator()
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	// Configure and use session middleware; the session carries the
	// resolved display language between requests.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.OptionalAuth(userStore))

	return &Server{
		E:           e,
		DB:          db,
		Cfg:         cfg,
		queues:      queues,
		homeHandler: homeHandler,
		userStore:   userStore,
	}
}
