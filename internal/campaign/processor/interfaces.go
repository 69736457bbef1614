package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListParams) (store.Page[store.Campaign], error)
	ListCampaignIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	DuplicateCampaign(ctx context.Context, id uuid.UUID, suffix string) (store.Campaign, error)
	SetCampaignsStatus(ctx context.Context, ids []uuid.UUID, status string, stamp store.CampaignTimestamp, at time.Time) (int64, error)
	CountCampaignMessages(ctx context.Context, campaignID uuid.UUID) (store.CampaignStatistics, error)
	UpdateCampaignStatistics(ctx context.Context, id uuid.UUID, stats store.CampaignStatistics) (store.Campaign, error)

	CreateCampaignSchedule(ctx context.Context, params store.CreateCampaignScheduleParams) (store.CampaignSchedule, error)
	GetCampaignScheduleByID(ctx context.Context, id uuid.UUID) (store.CampaignSchedule, error)
	ListCampaignSchedules(ctx context.Context, params store.ListParams) (store.Page[store.CampaignSchedule], error)
	UpdateCampaignSchedule(ctx context.Context, id uuid.UUID, params store.UpdateCampaignScheduleParams) (store.CampaignSchedule, error)
	DeleteCampaignSchedule(ctx context.Context, id uuid.UUID) error
}
