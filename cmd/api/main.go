package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-research/internal/common/api"
	"go-research/internal/cache"
	"go-research/internal/config"
	"go-research/internal/database"
	"go-research/internal/features/collaboration"
	"go-research/internal/features/dashboard"
	"go-research/internal/features/suggestion"
	"go-research/internal/features/system"
	"go-research/internal/features/user"
	"go-research/internal/logger"
	"go-research/internal/metrics"
	"go-research/internal/middleware"
	"go-research/internal/store/rest"
	"go-research/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// NewCacheStore picks the widget-cache backend from config.
func NewCacheStore(lc fx.Lifecycle, cfg *config.Config) cache.Store {
	if cfg.CacheBackend == "redis" {
		return cache.NewRedisStore(cache.NewRedisClient(lc, cfg))
	}
	return cache.NewMemoryStore()
}

// NewWidgetStore picks the remote widget store: the service's own MongoDB
// or the managed store's REST endpoints.
func NewWidgetStore(cfg *config.Config, db *database.MongodbDB, client *rest.Client) dashboard.WidgetRepository {
	if cfg.BackendMode == "rest" {
		return rest.NewWidgetStore(client)
	}
	return dashboard.NewWidgetRepository(db)
}

func NewProjectStore(cfg *config.Config, db *database.MongodbDB, client *rest.Client) collaboration.ProjectRepository {
	if cfg.BackendMode == "rest" {
		return rest.NewProjectStore(client)
	}
	return collaboration.NewProjectRepository(db)
}

func NewInvitationStore(cfg *config.Config, db *database.MongodbDB, client *rest.Client) collaboration.InvitationRepository {
	if cfg.BackendMode == "rest" {
		return rest.NewInvitationStore(client)
	}
	return collaboration.NewInvitationRepository(db)
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database & stores
			database.NewDatabase,
			rest.NewClient,
			NewCacheStore,
			NewWidgetStore,
			NewProjectStore,
			NewInvitationStore,
			user.NewUserRepository,

			// Metrics & sync hub
			metrics.New,
			system.NewSyncHub,
			func(h *system.SyncHub) dashboard.EventPublisher { return h },

			// Services
			dashboard.NewSessionManager,
			dashboard.NewWidgetService,
			collaboration.NewCollaborationService,
			user.NewUserService,
			suggestion.NewSuggestionService,

			// Controllers
			dashboard.NewWidgetController,
			collaboration.NewCollaborationController,
			user.NewUserController,
			suggestion.NewSuggestionController,
			system.NewWebSocketController,

			// API Routes
			AsRoute(dashboard.NewWidgetApi),
			AsRoute(collaboration.NewCollaborationApi),
			AsRoute(user.NewUserApi),
			AsRoute(suggestion.NewSuggestionApi),
			AsRoute(system.NewWebSocketApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewMetricsApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,

			// Drain in-flight background syncs on shutdown
			func(lc fx.Lifecycle, svc dashboard.WidgetService) {
				lc.Append(fx.Hook{
					OnStop: func(ctx context.Context) error {
						if impl, ok := svc.(*dashboard.WidgetServiceImpl); ok {
							impl.Wait()
						}
						return nil
					},
				})
			},
		),
	)

	app.Run()
}
