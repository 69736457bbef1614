package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	CreateMessageAnalytics(ctx context.Context, params store.CreateMessageAnalyticsParams) (store.MessageAnalytics, error)
	GetMessageAnalyticsByID(ctx context.Context, id uuid.UUID) (store.MessageAnalytics, error)
	ListMessageAnalytics(ctx context.Context, params store.ListParams) (store.Page[store.MessageAnalytics], error)
	ListMessageAnalyticsIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateMessageAnalytics(ctx context.Context, id uuid.UUID, params store.UpdateMessageAnalyticsParams) (store.MessageAnalytics, error)
	UpdateMessageAnalyticsRates(ctx context.Context, id uuid.UUID, rates store.AnalyticsRates) (store.MessageAnalytics, error)
	DeleteMessageAnalytics(ctx context.Context, id uuid.UUID) error
	SummarizeMessageAnalytics(ctx context.Context, params store.ListParams) (store.AnalyticsSummary, error)

	CreateClientEngagement(ctx context.Context, params store.CreateClientEngagementParams) (store.ClientEngagement, error)
	GetClientEngagementByID(ctx context.Context, id uuid.UUID) (store.ClientEngagement, error)
	ListClientEngagement(ctx context.Context, params store.ListParams) (store.Page[store.ClientEngagement], error)
	ListClientEngagementIDs(ctx context.Context) ([]uuid.UUID, error)
	TopEngagedClients(ctx context.Context, params store.ListParams, limit int) ([]store.ClientEngagement, error)
	UpdateClientEngagement(ctx context.Context, id uuid.UUID, params store.UpdateClientEngagementParams) (store.ClientEngagement, error)
	UpdateEngagementScore(ctx context.Context, id uuid.UUID, score float64) (store.ClientEngagement, error)
	DeleteClientEngagement(ctx context.Context, id uuid.UUID) error

	CreateReport(ctx context.Context, params store.CreateReportParams) (store.ReportData, error)
	GetReportByID(ctx context.Context, id uuid.UUID) (store.ReportData, error)
	ListReports(ctx context.Context, params store.ListParams) (store.Page[store.ReportData], error)
	RecentReports(ctx context.Context, params store.ListParams, limit int) ([]store.ReportData, error)
	UpdateReport(ctx context.Context, id uuid.UUID, params store.UpdateReportParams) (store.ReportData, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}
