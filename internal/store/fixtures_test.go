package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// --- Client Fixtures ---

// ClientOpts customizes client creation.
type ClientOpts struct {
	FirstName string
	LastName  string
	Email     string
	Status    string
	Source    *string
	TagIDs    []uuid.UUID
}

// DefaultClientOpts returns sensible defaults for client creation.
func DefaultClientOpts() ClientOpts {
	return ClientOpts{
		FirstName: "Test",
		LastName:  "Client",
		Email:     "client-" + uuid.New().String()[:8] + "@example.com",
		Status:    ClientStatusActive,
	}
}

// CreateClient creates a test client with optional customization.
func (f *Fixtures) CreateClient(opts ...func(*ClientOpts)) Client {
	f.t.Helper()
	o := DefaultClientOpts()
	for _, fn := range opts {
		fn(&o)
	}

	client, err := f.testDB.Store.CreateClient(f.ctx, CreateClientParams{
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Email:     o.Email,
		Status:    o.Status,
		Source:    o.Source,
		TagIDs:    o.TagIDs,
	})
	require.NoError(f.t, err, "failed to create test client")
	return client
}

// CreateTag creates a client tag with the given name.
func (f *Fixtures) CreateTag(name string) ClientTag {
	f.t.Helper()
	tag, err := f.testDB.Store.CreateClientTag(f.ctx, CreateClientTagParams{Name: name, Color: "#007bff"})
	require.NoError(f.t, err, "failed to create test tag")
	return tag
}

// --- Template Fixtures ---

// TemplateOpts customizes template creation.
type TemplateOpts struct {
	Name        string
	Type        string
	Subject     *string
	Body        string
	IsHTML      bool
	Variables   JSONB
	CategoryIDs []uuid.UUID
}

// DefaultTemplateOpts returns sensible defaults for template creation.
func DefaultTemplateOpts() TemplateOpts {
	return TemplateOpts{
		Name:    "Welcome",
		Type:    ChannelEmail,
		Subject: strPtr("Hello {{.first_name}}"),
		Body:    "Hi {{.first_name}}, welcome aboard.",
	}
}

// CreateTemplate creates a test template with optional customization.
func (f *Fixtures) CreateTemplate(opts ...func(*TemplateOpts)) MessageTemplate {
	f.t.Helper()
	o := DefaultTemplateOpts()
	for _, fn := range opts {
		fn(&o)
	}

	tmpl, err := f.testDB.Store.CreateTemplate(f.ctx, CreateTemplateParams{
		Name:        o.Name,
		Type:        o.Type,
		Subject:     o.Subject,
		Body:        o.Body,
		IsHTML:      o.IsHTML,
		Variables:   o.Variables,
		IsActive:    true,
		CategoryIDs: o.CategoryIDs,
	})
	require.NoError(f.t, err, "failed to create test template")
	return tmpl
}

// --- Campaign Fixtures ---

// CampaignOpts customizes campaign creation.
type CampaignOpts struct {
	Name               string
	Type               string
	Status             string
	ClientGroupID      *uuid.UUID
	ClientIDs          []uuid.UUID
	EmailTemplateID    *uuid.UUID
	WhatsAppTemplateID *uuid.UUID
}

// DefaultCampaignOpts returns sensible defaults for campaign creation.
func DefaultCampaignOpts() CampaignOpts {
	return CampaignOpts{
		Name:   "Spring Promo",
		Type:   ChannelEmail,
		Status: CampaignStatusDraft,
	}
}

// CreateCampaign creates a test campaign with optional customization.
func (f *Fixtures) CreateCampaign(opts ...func(*CampaignOpts)) Campaign {
	f.t.Helper()
	o := DefaultCampaignOpts()
	for _, fn := range opts {
		fn(&o)
	}

	campaign, err := f.testDB.Store.CreateCampaign(f.ctx, CreateCampaignParams{
		Name:               o.Name,
		Type:               o.Type,
		Status:             o.Status,
		ClientGroupID:      o.ClientGroupID,
		ClientIDs:          o.ClientIDs,
		EmailTemplateID:    o.EmailTemplateID,
		WhatsAppTemplateID: o.WhatsAppTemplateID,
		Frequency:          CampaignFrequencyOnce,
	})
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}

// --- Message Fixtures ---

// MessageOpts customizes message creation.
type MessageOpts struct {
	Type       string
	Status     string
	ClientID   *uuid.UUID
	CampaignID *uuid.UUID
	TemplateID *uuid.UUID
	Body       string
}

// DefaultMessageOpts returns sensible defaults for message creation.
func DefaultMessageOpts() MessageOpts {
	return MessageOpts{
		Type:   ChannelEmail,
		Status: MessageStatusDraft,
		Body:   "Hello there",
	}
}

// CreateMessage creates a test outbound message with optional customization.
func (f *Fixtures) CreateMessage(opts ...func(*MessageOpts)) Message {
	f.t.Helper()
	o := DefaultMessageOpts()
	for _, fn := range opts {
		fn(&o)
	}

	msg, err := f.testDB.Store.CreateMessage(f.ctx, CreateMessageParams{
		Type:       o.Type,
		Direction:  MessageDirectionOutgoing,
		ClientID:   o.ClientID,
		ToEmail:    strPtr("to@example.com"),
		Body:       o.Body,
		Status:     o.Status,
		CampaignID: o.CampaignID,
		TemplateID: o.TemplateID,
	})
	require.NoError(f.t, err, "failed to create test message")
	return msg
}

// --- Analytics Fixtures ---

// CreateAnalytics creates an analytics bucket for the given date.
func (f *Fixtures) CreateAnalytics(date time.Time, campaignID *uuid.UUID, counters AnalyticsCounters) MessageAnalytics {
	f.t.Helper()
	row, err := f.testDB.Store.CreateMessageAnalytics(f.ctx, CreateMessageAnalyticsParams{
		MessageType: ChannelEmail,
		Date:        date,
		CampaignID:  campaignID,
		Counters:    counters,
	})
	require.NoError(f.t, err, "failed to create test analytics")
	return row
}
