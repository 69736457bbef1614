package api

import (
	"context"
	"net/http"
	"time"

	analyticsHandler "github.com/rekarton-ge/client-crm/internal/analytics/handler"
	authHandler "github.com/rekarton-ge/client-crm/internal/auth/handler"
	campaignHandler "github.com/rekarton-ge/client-crm/internal/campaign/handler"
	campaignProcessor "github.com/rekarton-ge/client-crm/internal/campaign/processor"
	clientHandler "github.com/rekarton-ge/client-crm/internal/clientregistry/handler"
	messageHandler "github.com/rekarton-ge/client-crm/internal/messaging/handler"
	"github.com/rekarton-ge/client-crm/internal/ratelimit"
	templateHandler "github.com/rekarton-ge/client-crm/internal/templates/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger is anything the health endpoint can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups the resource handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth      authHandler.Handler
	Clients   clientHandler.Handler
	Templates templateHandler.Handler
	Campaigns campaignHandler.Handler
	Messages  messageHandler.Handler
	Analytics analyticsHandler.Handler
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
	limiter  *ratelimit.Service
	db       Pinger
}

func New(router *gin.RouterGroup, handlers Handlers, limiter *ratelimit.Service, db Pinger) API {
	return API{
		router:   router,
		handlers: handlers,
		limiter:  limiter,
		db:       db,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/login", a.handlers.Auth.HandleEmailLogin)
	}

	v1 := apiGroup.Group("/v1", a.handlers.Auth.HandleJWTMiddleware, a.limiter.Middleware())
	a.registerClients(v1)
	a.registerTemplates(v1)
	a.registerCampaigns(v1)
	a.registerMessages(v1)
	a.registerAnalytics(v1)
}

func (a *API) registerClients(g *gin.RouterGroup) {
	h := &a.handlers.Clients

	clients := g.Group("/clients")
	clients.GET("", h.HandleListClients)
	clients.POST("", h.HandleCreateClient)
	clients.GET("/:id", h.HandleGetClient)
	clients.PUT("/:id", h.HandleUpdateClient)
	clients.DELETE("/:id", h.HandleDeleteClient)

	tags := g.Group("/client-tags")
	tags.GET("", h.HandleListTags)
	tags.POST("", h.HandleCreateTag)
	tags.GET("/:id", h.HandleGetTag)
	tags.PUT("/:id", h.HandleUpdateTag)
	tags.DELETE("/:id", h.HandleDeleteTag)

	groups := g.Group("/client-groups")
	groups.GET("", h.HandleListGroups)
	groups.POST("", h.HandleCreateGroup)
	groups.GET("/:id", h.HandleGetGroup)
	groups.PUT("/:id", h.HandleUpdateGroup)
	groups.DELETE("/:id", h.HandleDeleteGroup)
}

func (a *API) registerTemplates(g *gin.RouterGroup) {
	h := &a.handlers.Templates

	templates := g.Group("/templates")
	templates.GET("", h.HandleListTemplates)
	templates.POST("", h.HandleCreateTemplate)
	templates.POST("/actions/duplicate", h.HandleDuplicateTemplates)
	templates.GET("/:id", h.HandleGetTemplate)
	templates.PUT("/:id", h.HandleUpdateTemplate)
	templates.DELETE("/:id", h.HandleDeleteTemplate)
	templates.POST("/:id/render", h.HandleRenderTemplate)

	categories := g.Group("/template-categories")
	categories.GET("", h.HandleListCategories)
	categories.POST("", h.HandleCreateCategory)
	categories.GET("/:id", h.HandleGetCategory)
	categories.PUT("/:id", h.HandleUpdateCategory)
	categories.DELETE("/:id", h.HandleDeleteCategory)

	attachments := g.Group("/template-attachments")
	attachments.GET("", h.HandleListAttachments)
	attachments.POST("", h.HandleCreateAttachment)
	attachments.GET("/:id", h.HandleGetAttachment)
	attachments.DELETE("/:id", h.HandleDeleteAttachment)
}

func (a *API) registerCampaigns(g *gin.RouterGroup) {
	h := &a.handlers.Campaigns

	campaigns := g.Group("/campaigns")
	campaigns.GET("", h.HandleListCampaigns)
	campaigns.POST("", h.HandleCreateCampaign)
	campaigns.POST("/actions/update-statistics", h.HandleUpdateStatistics)
	campaigns.POST("/actions/duplicate", h.HandleDuplicateCampaigns)
	campaigns.POST("/actions/start", h.HandleAction(campaignProcessor.ActionStart))
	campaigns.POST("/actions/pause", h.HandleAction(campaignProcessor.ActionPause))
	campaigns.POST("/actions/complete", h.HandleAction(campaignProcessor.ActionComplete))
	campaigns.GET("/:id", h.HandleGetCampaign)
	campaigns.PUT("/:id", h.HandleUpdateCampaign)
	campaigns.DELETE("/:id", h.HandleDeleteCampaign)

	schedules := g.Group("/campaign-schedules")
	schedules.GET("", h.HandleListSchedules)
	schedules.POST("", h.HandleCreateSchedule)
	schedules.GET("/:id", h.HandleGetSchedule)
	schedules.PUT("/:id", h.HandleUpdateSchedule)
	schedules.DELETE("/:id", h.HandleDeleteSchedule)
}

func (a *API) registerMessages(g *gin.RouterGroup) {
	h := &a.handlers.Messages

	messages := g.Group("/messages")
	messages.GET("", h.HandleListMessages)
	messages.POST("", h.HandleCreateMessage)
	messages.POST("/actions/mark-sent", h.HandleMarkSent)
	messages.POST("/actions/mark-delivered", h.HandleMarkDelivered)
	messages.POST("/actions/mark-read", h.HandleMarkRead)
	messages.POST("/actions/mark-failed", h.HandleMarkFailed)
	messages.GET("/:id", h.HandleGetMessage)
	messages.PUT("/:id", h.HandleUpdateMessage)
	messages.DELETE("/:id", h.HandleDeleteMessage)

	attachments := g.Group("/message-attachments")
	attachments.GET("", h.HandleListAttachments)
	attachments.POST("", h.HandleCreateAttachment)
	attachments.GET("/:id", h.HandleGetAttachment)
	attachments.DELETE("/:id", h.HandleDeleteAttachment)

	// events are append-only
	events := g.Group("/message-events")
	events.GET("", h.HandleListEvents)
	events.POST("", h.HandleCreateEvent)
	events.GET("/:id", h.HandleGetEvent)
}

func (a *API) registerAnalytics(g *gin.RouterGroup) {
	h := &a.handlers.Analytics

	analytics := g.Group("/analytics")
	analytics.GET("", h.HandleListAnalytics)
	analytics.POST("", h.HandleCreateAnalytics)
	analytics.GET("/summary", h.HandleSummary)
	analytics.POST("/actions/recalculate-rates", h.HandleRecalculateRates)
	analytics.GET("/:id", h.HandleGetAnalytics)
	analytics.PUT("/:id", h.HandleUpdateAnalytics)
	analytics.DELETE("/:id", h.HandleDeleteAnalytics)

	engagement := g.Group("/engagement")
	engagement.GET("", h.HandleListEngagement)
	engagement.POST("", h.HandleCreateEngagement)
	engagement.GET("/top", h.HandleTopEngaged)
	engagement.POST("/actions/calculate-score", h.HandleCalculateScores)
	engagement.GET("/:id", h.HandleGetEngagement)
	engagement.PUT("/:id", h.HandleUpdateEngagement)
	engagement.DELETE("/:id", h.HandleDeleteEngagement)

	reports := g.Group("/reports")
	reports.GET("", h.HandleListReports)
	reports.POST("", h.HandleCreateReport)
	reports.GET("/recent", h.HandleRecentReports)
	reports.GET("/:id", h.HandleGetReport)
	reports.PUT("/:id", h.HandleUpdateReport)
	reports.DELETE("/:id", h.HandleDeleteReport)
	reports.GET("/:id/export", h.HandleExportReport)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if a.db != nil {
			if err := a.db.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
