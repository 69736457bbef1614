package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// NullableRef is a nullable reference in a partial update. The zero value
// leaves the column unchanged; Set with a nil ID clears it.
type NullableRef struct {
	Set bool
	ID  *uuid.UUID
}

// RefTo returns a NullableRef that points the column at id.
func RefTo(id uuid.UUID) NullableRef {
	return NullableRef{Set: true, ID: &id}
}

// ClearRef returns a NullableRef that sets the column to NULL.
func ClearRef() NullableRef {
	return NullableRef{Set: true}
}

func (r NullableRef) clears() bool {
	return r.Set && r.ID == nil
}

// JSONB is a custom type for JSON object columns
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil || bytes == nil {
		*j = nil
		return err
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = nil
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// RawJSON holds an arbitrary JSON document that is stored and returned untouched.
type RawJSON json.RawMessage

func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return []byte(r), nil
}

func (r *RawJSON) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	*r = append((*r)[:0], bytes...)
	return nil
}

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// IntList is a JSON-encoded list of integers, e.g. days of the week.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal([]int(l))
}

func (l *IntList) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil || len(bytes) == 0 {
		*l = nil
		return err
	}
	var out []int
	if err := json.Unmarshal(bytes, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("incompatible type for JSON column")
	}
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Client struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Email         string     `db:"email" json:"email"`
	Phone         *string    `db:"phone" json:"phone"`
	WhatsApp      *string    `db:"whatsapp" json:"whatsapp"`
	Company       *string    `db:"company" json:"company"`
	Position      *string    `db:"position" json:"position"`
	Address       *string    `db:"address" json:"address"`
	Status        string     `db:"status" json:"status"`
	Source        *string    `db:"source" json:"source"`
	Notes         *string    `db:"notes" json:"notes"`
	LastContacted *time.Time `db:"last_contacted" json:"last_contacted"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`

	FullName string      `db:"-" json:"full_name"`
	Tags     []ClientTag `db:"-" json:"tags"`
	GroupIDs []uuid.UUID `db:"-" json:"group_ids"`
}

// GetFullName joins first and last name with a single space.
func (c Client) GetFullName() string {
	return c.FirstName + " " + c.LastName
}

type ClientTag struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Color       string    `db:"color" json:"color"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ClientGroup struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Description    *string   `db:"description" json:"description"`
	FilterCriteria JSONB     `db:"filter_criteria" json:"filter_criteria"`
	IsDynamic      bool      `db:"is_dynamic" json:"is_dynamic"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`

	ClientIDs []uuid.UUID `db:"-" json:"client_ids"`
}

type TemplateCategory struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type MessageTemplate struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"`
	Subject     *string   `db:"subject" json:"subject"`
	Body        string    `db:"body" json:"body"`
	IsHTML      bool      `db:"is_html" json:"is_html"`
	Variables   JSONB     `db:"variables" json:"variables"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	Categories  []TemplateCategory   `db:"-" json:"categories"`
	Attachments []TemplateAttachment `db:"-" json:"attachments"`
}

type TemplateAttachment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TemplateID  uuid.UUID `db:"template_id" json:"template_id"`
	FilePath    string    `db:"file_path" json:"file_path"`
	Filename    string    `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"content_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Campaign struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Description        *string    `db:"description" json:"description"`
	Type               string     `db:"type" json:"type"`
	ClientGroupID      *uuid.UUID `db:"client_group_id" json:"client_group_id"`
	EmailTemplateID    *uuid.UUID `db:"email_template_id" json:"email_template_id"`
	WhatsAppTemplateID *uuid.UUID `db:"whatsapp_template_id" json:"whatsapp_template_id"`
	IsScheduled        bool       `db:"is_scheduled" json:"is_scheduled"`
	ScheduledStart     *time.Time `db:"scheduled_start" json:"scheduled_start"`
	ScheduledEnd       *time.Time `db:"scheduled_end" json:"scheduled_end"`
	Frequency          string     `db:"frequency" json:"frequency"`
	CustomSchedule     JSONB      `db:"custom_schedule" json:"custom_schedule"`
	Status             string     `db:"status" json:"status"`
	MaxMessagesPerDay  *int       `db:"max_messages_per_day" json:"max_messages_per_day"`
	TotalRecipients    int        `db:"total_recipients" json:"total_recipients"`
	SentCount          int        `db:"sent_count" json:"sent_count"`
	DeliveredCount     int        `db:"delivered_count" json:"delivered_count"`
	ReadCount          int        `db:"read_count" json:"read_count"`
	ErrorCount         int        `db:"error_count" json:"error_count"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
	StartedAt          *time.Time `db:"started_at" json:"started_at"`
	CompletedAt        *time.Time `db:"completed_at" json:"completed_at"`

	ClientIDs []uuid.UUID        `db:"-" json:"client_ids"`
	Schedules []CampaignSchedule `db:"-" json:"schedules"`
}

// CampaignStatistics is the rollup of a campaign's messages by status.
type CampaignStatistics struct {
	TotalRecipients int `db:"total_recipients" json:"total_recipients"`
	SentCount       int `db:"sent_count" json:"sent_count"`
	DeliveredCount  int `db:"delivered_count" json:"delivered_count"`
	ReadCount       int `db:"read_count" json:"read_count"`
	ErrorCount      int `db:"error_count" json:"error_count"`
}

type CampaignSchedule struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	CampaignID    uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	ScheduleType  string     `db:"schedule_type" json:"schedule_type"`
	ScheduledTime *time.Time `db:"scheduled_time" json:"scheduled_time"`
	DaysOfWeek    IntList    `db:"days_of_week" json:"days_of_week"`
	TimeOfDay     *string    `db:"time_of_day" json:"time_of_day"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type Message struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Type           string     `db:"type" json:"type"`
	Direction      string     `db:"direction" json:"direction"`
	ClientID       *uuid.UUID `db:"client_id" json:"client_id"`
	FromEmail      *string    `db:"from_email" json:"from_email"`
	FromNumber     *string    `db:"from_number" json:"from_number"`
	ToEmail        *string    `db:"to_email" json:"to_email"`
	ToNumber       *string    `db:"to_number" json:"to_number"`
	Subject        *string    `db:"subject" json:"subject"`
	Body           string     `db:"body" json:"body"`
	HasAttachments bool       `db:"has_attachments" json:"has_attachments"`
	Status         string     `db:"status" json:"status"`
	StatusDetails  *string    `db:"status_details" json:"status_details"`
	TrackOpens     bool       `db:"track_opens" json:"track_opens"`
	TrackClicks    bool       `db:"track_clicks" json:"track_clicks"`
	CampaignID     *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	TemplateID     *uuid.UUID `db:"template_id" json:"template_id"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	ScheduledAt    *time.Time `db:"scheduled_at" json:"scheduled_at"`
	SentAt         *time.Time `db:"sent_at" json:"sent_at"`
	DeliveredAt    *time.Time `db:"delivered_at" json:"delivered_at"`
	ReadAt         *time.Time `db:"read_at" json:"read_at"`
}

type MessageAttachment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	MessageID   uuid.UUID `db:"message_id" json:"message_id"`
	FilePath    string    `db:"file_path" json:"file_path"`
	Filename    string    `db:"filename" json:"filename"`
	FileSize    int64     `db:"file_size" json:"file_size"`
	ContentType string    `db:"content_type" json:"content_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type MessageEvent struct {
	ID         uuid.UUID `db:"id" json:"id"`
	MessageID  uuid.UUID `db:"message_id" json:"message_id"`
	EventType  string    `db:"event_type" json:"event_type"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
	IPAddress  *string   `db:"ip_address" json:"ip_address"`
	UserAgent  *string   `db:"user_agent" json:"user_agent"`
	URL        *string   `db:"url" json:"url"`
	Metadata   JSONB     `db:"metadata" json:"metadata"`
}

type MessageAnalytics struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	MessageType      string     `db:"message_type" json:"message_type"`
	Date             time.Time  `db:"date" json:"date"`
	CampaignID       *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	SentCount        int        `db:"sent_count" json:"sent_count"`
	DeliveredCount   int        `db:"delivered_count" json:"delivered_count"`
	OpenCount        int        `db:"open_count" json:"open_count"`
	ClickCount       int        `db:"click_count" json:"click_count"`
	UniqueOpenCount  int        `db:"unique_open_count" json:"unique_open_count"`
	UniqueClickCount int        `db:"unique_click_count" json:"unique_click_count"`
	BounceCount      int        `db:"bounce_count" json:"bounce_count"`
	ComplaintCount   int        `db:"complaint_count" json:"complaint_count"`
	DeliveryRate     float64    `db:"delivery_rate" json:"delivery_rate"`
	OpenRate         float64    `db:"open_rate" json:"open_rate"`
	ClickRate        float64    `db:"click_rate" json:"click_rate"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// AnalyticsSummary aggregates a filtered set of MessageAnalytics rows.
type AnalyticsSummary struct {
	TotalSent       int     `db:"total_sent" json:"total_sent"`
	TotalDelivered  int     `db:"total_delivered" json:"total_delivered"`
	AvgDeliveryRate float64 `db:"avg_delivery_rate" json:"avg_delivery_rate"`
	AvgOpenRate     float64 `db:"avg_open_rate" json:"avg_open_rate"`
}

type ClientEngagement struct {
	ID                     uuid.UUID  `db:"id" json:"id"`
	ClientID               uuid.UUID  `db:"client_id" json:"client_id"`
	EmailSentCount         int        `db:"email_sent_count" json:"email_sent_count"`
	EmailOpenCount         int        `db:"email_open_count" json:"email_open_count"`
	EmailClickCount        int        `db:"email_click_count" json:"email_click_count"`
	WhatsAppSentCount      int        `db:"whatsapp_sent_count" json:"whatsapp_sent_count"`
	WhatsAppDeliveredCount int        `db:"whatsapp_delivered_count" json:"whatsapp_delivered_count"`
	WhatsAppReadCount      int        `db:"whatsapp_read_count" json:"whatsapp_read_count"`
	LastEmailSent          *time.Time `db:"last_email_sent" json:"last_email_sent"`
	LastEmailOpened        *time.Time `db:"last_email_opened" json:"last_email_opened"`
	LastEmailClicked       *time.Time `db:"last_email_clicked" json:"last_email_clicked"`
	LastWhatsAppSent       *time.Time `db:"last_whatsapp_sent" json:"last_whatsapp_sent"`
	LastWhatsAppDelivered  *time.Time `db:"last_whatsapp_delivered" json:"last_whatsapp_delivered"`
	LastWhatsAppRead       *time.Time `db:"last_whatsapp_read" json:"last_whatsapp_read"`
	EngagementScore        float64    `db:"engagement_score" json:"engagement_score"`
	CreatedAt              time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updated_at"`

	ClientName  string `db:"client_name" json:"client_name"`
	ClientEmail string `db:"client_email" json:"client_email"`
}

type ReportData struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ReportType  string     `db:"report_type" json:"report_type"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	PeriodStart *time.Time `db:"period_start" json:"period_start"`
	PeriodEnd   *time.Time `db:"period_end" json:"period_end"`
	CampaignID  *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	ClientID    *uuid.UUID `db:"client_id" json:"client_id"`
	Data        RawJSON    `db:"report_data" json:"report_data"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
