package dependency

import (
	"context"

	"github.com/glowup-wallet/backend/config"
	"github.com/glowup-wallet/backend/internal/infra/server/router"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/controller"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/middleware"
)

// Injector holds the HTTP application built on top of the container.
type Injector struct {
	Config      *config.Config
	Container   *Container
	Router      *router.Router
	RateLimiter *middleware.RateLimiter // nil when rate limiting is disabled
}

// NewInjector creates the container and wires the HTTP controllers.
func NewInjector(ctx context.Context, cfg *config.Config) (*Injector, error) {
	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Create controllers
	healthController := controller.NewHealthController(container.DatabaseProbe(), container.CacheProbe())
	goalController := controller.NewGoalController(
		container.ListGoals,
		container.CreateGoal,
		container.GetGoal,
		container.AddFunds,
	)
	transactionController := controller.NewTransactionController(container.ListTransactions)
	challengeController := controller.NewChallengeController(container.ListChallenges)
	dashboardController := controller.NewDashboardController(container.Dashboard)
	adviceController := controller.NewAdviceController(container.Chat, container.Tip)

	var adviceRateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		adviceRateLimiter = middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	r := router.NewRouter(
		healthController,
		goalController,
		transactionController,
		challengeController,
		dashboardController,
		adviceController,
		adviceRateLimiter,
	)

	return &Injector{
		Config:      cfg,
		Container:   container,
		Router:      r,
		RateLimiter: adviceRateLimiter,
	}, nil
}

// Close releases the container's connections.
func (i *Injector) Close() error {
	return i.Container.Close()
}
