package store

// Client ENUMs
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusLead     = "lead"
	ClientStatusProspect = "prospect"
	ClientStatusCustomer = "customer"
)

// Channel ENUMs, shared by templates, messages and analytics
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// Campaign ENUMs
const (
	CampaignTypeEmail    = "email"
	CampaignTypeWhatsApp = "whatsapp"
	CampaignTypeMixed    = "mixed"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

const (
	CampaignFrequencyOnce    = "once"
	CampaignFrequencyDaily   = "daily"
	CampaignFrequencyWeekly  = "weekly"
	CampaignFrequencyMonthly = "monthly"
	CampaignFrequencyCustom  = "custom"
)

const (
	ScheduleTypeFixed     = "fixed"
	ScheduleTypeRecurring = "recurring"
)

// Message ENUMs
const (
	MessageDirectionIncoming = "incoming"
	MessageDirectionOutgoing = "outgoing"
)

const (
	MessageStatusDraft     = "draft"
	MessageStatusQueued    = "queued"
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
	MessageStatusFailed    = "failed"
)

const (
	MessageEventOpen      = "open"
	MessageEventClick     = "click"
	MessageEventBounce    = "bounce"
	MessageEventComplaint = "complaint"
	MessageEventDelivery  = "delivery"
	MessageEventRead      = "read"
)

// Report ENUMs
const (
	ReportTypeDaily    = "daily"
	ReportTypeWeekly   = "weekly"
	ReportTypeMonthly  = "monthly"
	ReportTypeCampaign = "campaign"
	ReportTypeClient   = "client"
	ReportTypeCustom   = "custom"
)
