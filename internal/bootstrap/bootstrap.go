package bootstrap

import (
	"context"
	"fmt"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/clients/redis"
	"github.com/rekarton-ge/client-crm/internal/config"
	"github.com/rekarton-ge/client-crm/internal/observability"
	"github.com/rekarton-ge/client-crm/internal/ratelimit"
	"github.com/rekarton-ge/client-crm/internal/store"

	analyticsHandler "github.com/rekarton-ge/client-crm/internal/analytics/handler"
	analyticsProcessor "github.com/rekarton-ge/client-crm/internal/analytics/processor"
	authHandler "github.com/rekarton-ge/client-crm/internal/auth/handler"
	authProcessor "github.com/rekarton-ge/client-crm/internal/auth/processor"
	campaignHandler "github.com/rekarton-ge/client-crm/internal/campaign/handler"
	campaignProcessor "github.com/rekarton-ge/client-crm/internal/campaign/processor"
	clientHandler "github.com/rekarton-ge/client-crm/internal/clientregistry/handler"
	clientProcessor "github.com/rekarton-ge/client-crm/internal/clientregistry/processor"
	messageHandler "github.com/rekarton-ge/client-crm/internal/messaging/handler"
	messageProcessor "github.com/rekarton-ge/client-crm/internal/messaging/processor"
	templateHandler "github.com/rekarton-ge/client-crm/internal/templates/handler"
	templateProcessor "github.com/rekarton-ge/client-crm/internal/templates/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Redis  *redis.Client
	Logger *observability.Logger

	RateLimiter *ratelimit.Service

	// Processors used outside HTTP, e.g. by crmctl
	AuthProcessor      authProcessor.AuthProcessor
	CampaignProcessor  campaignProcessor.CampaignProcessor
	AnalyticsProcessor analyticsProcessor.AnalyticsProcessor

	// Handlers
	AuthHandler      authHandler.Handler
	ClientHandler    clientHandler.Handler
	TemplateHandler  templateHandler.Handler
	CampaignHandler  campaignHandler.Handler
	MessageHandler   messageHandler.Handler
	AnalyticsHandler analyticsHandler.Handler
}

// Initialize sets up all application dependencies. Redis is optional.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	apierrors.SetLogger(logger)
	apierrors.UseJSONFieldNames()

	// Initialize database store
	st, err := store.New(cfg.Database.Driver, cfg.Database.DataSourceName(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := st.Ping(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.Store = &st

	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.RateLimit.RequestsPerMinute, logger)

	deps.AuthProcessor = authProcessor.New(deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(deps.AuthProcessor, logger)

	clientProc := clientProcessor.New(deps.Store, logger)
	deps.ClientHandler = clientHandler.New(clientProc, logger)

	templateProc := templateProcessor.New(deps.Store, logger)
	deps.TemplateHandler = templateHandler.New(templateProc, logger)

	deps.CampaignProcessor = campaignProcessor.New(deps.Store, logger)
	deps.CampaignHandler = campaignHandler.New(deps.CampaignProcessor, logger)

	messageProc := messageProcessor.New(deps.Store, logger)
	deps.MessageHandler = messageHandler.New(messageProc, logger)

	deps.AnalyticsProcessor = analyticsProcessor.New(deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(deps.AnalyticsProcessor, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close redis client", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close database", err)
		}
	}
}
