// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/glowup-wallet/backend/config"
	"github.com/glowup-wallet/backend/internal/application/adapter"
	"github.com/glowup-wallet/backend/internal/application/event"
	"github.com/glowup-wallet/backend/internal/application/usecase/advice"
	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
	"github.com/glowup-wallet/backend/internal/infra/cache"
	"github.com/glowup-wallet/backend/internal/infra/db"
	"github.com/glowup-wallet/backend/internal/integration/adapters"
	integrationcache "github.com/glowup-wallet/backend/internal/integration/cache"
	"github.com/glowup-wallet/backend/internal/integration/email"
	"github.com/glowup-wallet/backend/internal/integration/email/templates"
	"github.com/glowup-wallet/backend/internal/integration/messaging"
	"github.com/glowup-wallet/backend/internal/integration/persistence"
	"github.com/glowup-wallet/backend/internal/integration/persistence/model"
	"github.com/glowup-wallet/backend/internal/integration/seed"
)

// Container holds the ledger core shared by the API and the CLI.
type Container struct {
	Config     *config.Config
	Database   *db.Database // nil without DATABASE_URL
	Repository adapter.LedgerRepository
	Store      *ledger.Store
	Dispatcher *event.Dispatcher
	Gateway    *advice.Gateway
	Gate       adapter.SubmissionGate
	Redis      *redis.Client // nil without REDIS_URL

	ListGoals        *ledger.ListGoalsUseCase
	GetGoal          *ledger.GetGoalUseCase
	CreateGoal       *ledger.CreateGoalUseCase
	AddFunds         *ledger.AddFundsUseCase
	ListTransactions *ledger.ListTransactionsUseCase
	ListChallenges   *ledger.ListChallengesUseCase
	Dashboard        *ledger.GetDashboardUseCase
	Chat             *advice.ChatUseCase
	Tip              *advice.GetTipUseCase

	closers []func() error
}

// NewContainer connects the optional infrastructure, initializes the ledger
// and wires the use cases.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.setupLedger(ctx); err != nil {
		c.Close()
		return nil, err
	}

	if err := c.setupEvents(); err != nil {
		c.Close()
		return nil, err
	}

	if err := c.setupAdvice(); err != nil {
		c.Close()
		return nil, err
	}

	c.ListGoals = ledger.NewListGoalsUseCase(c.Store)
	c.GetGoal = ledger.NewGetGoalUseCase(c.Store)
	c.CreateGoal = ledger.NewCreateGoalUseCase(c.Store, c.Repository)
	c.AddFunds = ledger.NewAddFundsUseCase(c.Store, c.Repository, c.Dispatcher)
	c.ListTransactions = ledger.NewListTransactionsUseCase(c.Store)
	c.ListChallenges = ledger.NewListChallengesUseCase(c.Store)
	c.Dashboard = ledger.NewGetDashboardUseCase(c.Store)
	c.Chat = advice.NewChatUseCase(c.Store, c.Gateway, c.Gate, cfg.Advice.SubmissionTTL)
	c.Tip = advice.NewGetTipUseCase(c.Gateway)

	return c, nil
}

func (c *Container) setupLedger(ctx context.Context) error {
	initial := seed.Defaults()
	if c.Config.Seed.Path != "" {
		loaded, err := seed.Load(c.Config.Seed.Path)
		if err != nil {
			return err
		}
		initial = loaded
		slog.Info("Loaded seed file", "path", c.Config.Seed.Path)
	}

	if c.Config.Database.Enabled() {
		database, err := db.NewConnection(&c.Config.Database)
		if err != nil {
			return err
		}
		c.Database = database
		c.closers = append(c.closers, database.Close)

		if err := database.AutoMigrate(model.AllModels()...); err != nil {
			return err
		}
		c.Repository = persistence.NewLedgerRepository(database.DB())
	}

	c.Store = ledger.NewStore()
	return ledger.Bootstrap(ctx, c.Store, initial, c.Repository)
}

func (c *Container) setupEvents() error {
	c.Dispatcher = event.NewDispatcher(event.NewLogHandler())

	if c.Config.Email.Enabled() {
		theme, err := ledger.ResolveTheme(c.Config.Seed.Theme)
		if err != nil {
			return fmt.Errorf("celebration email theme: %w", err)
		}
		renderer, err := templates.NewRenderer()
		if err != nil {
			return err
		}
		mailer, err := email.NewResendMailer(email.ResendOptions{
			APIKey:    c.Config.Email.ResendAPIKey,
			FromName:  c.Config.Email.FromName,
			FromEmail: c.Config.Email.FromEmail,
			BaseURL:   c.Config.Email.BaseURL,
		})
		if err != nil {
			return err
		}
		c.Dispatcher.Subscribe(email.NewCelebrationHandler(mailer, renderer, c.Config.Email.Recipient, theme))
		slog.Info("Celebration emails enabled", "recipient", c.Config.Email.Recipient)
	}

	if c.Config.Messaging.Enabled() {
		publisher, err := messaging.NewPublisher(c.Config.Messaging.AMQPURL, c.Config.Messaging.Exchange)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, publisher.Close)
		c.Dispatcher.Subscribe(publisher)
		slog.Info("Ledger events published to AMQP", "exchange", c.Config.Messaging.Exchange)
	}

	return nil
}

func (c *Container) setupAdvice() error {
	gemini := adapters.NewGeminiService(c.Config.Advice.APIKey)
	if !gemini.IsAvailable() {
		slog.Warn("No advice API key configured, the guide answers with fallbacks")
	}
	c.Gateway = advice.NewGateway(gemini, c.Config.Advice.Model)

	if c.Config.Redis.Enabled() {
		client, err := cache.NewRedisClient(&c.Config.Redis)
		if err != nil {
			return err
		}
		c.Redis = client
		c.closers = append(c.closers, client.Close)
		c.Gate = integrationcache.NewRedisSubmissionGate(client)
		return nil
	}

	c.Gate = integrationcache.NewMemorySubmissionGate()
	return nil
}

// DatabaseProbe pings the database; nil when no database is configured.
func (c *Container) DatabaseProbe() func(ctx context.Context) error {
	if c.Database == nil {
		return nil
	}
	return c.Database.Ping
}

// CacheProbe pings redis; nil when no redis is configured.
func (c *Container) CacheProbe() func(ctx context.Context) error {
	if c.Redis == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return c.Redis.Ping(ctx).Err()
	}
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
