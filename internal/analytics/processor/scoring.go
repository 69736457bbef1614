package processor

import "github.com/rekarton-ge/client-crm/internal/store"

// Engagement weights per interaction.
const (
	weightEmailSent         = 1.0
	weightEmailOpened       = 2.0
	weightEmailClicked      = 3.0
	weightWhatsAppSent      = 1.5
	weightWhatsAppDelivered = 1.0
	weightWhatsAppRead      = 2.5
)

// RecalculateRates derives the delivery, open and click percentages of a
// bucket. A rate whose denominator is zero keeps its current value.
//
//	delivery = delivered / sent * 100
//	open     = unique_open / delivered * 100
//	click    = unique_click / unique_open * 100
func RecalculateRates(row store.MessageAnalytics) store.AnalyticsRates {
	rates := store.AnalyticsRates{
		DeliveryRate: row.DeliveryRate,
		OpenRate:     row.OpenRate,
		ClickRate:    row.ClickRate,
	}
	if row.SentCount > 0 {
		rates.DeliveryRate = percent(row.DeliveredCount, row.SentCount)
	}
	if row.DeliveredCount > 0 {
		rates.OpenRate = percent(row.UniqueOpenCount, row.DeliveredCount)
	}
	if row.UniqueOpenCount > 0 {
		rates.ClickRate = percent(row.UniqueClickCount, row.UniqueOpenCount)
	}
	return rates
}

func percent(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}

// EngagementScore is the weighted sum of a client's email and WhatsApp interactions.
func EngagementScore(e store.ClientEngagement) float64 {
	email := float64(e.EmailSentCount)*weightEmailSent +
		float64(e.EmailOpenCount)*weightEmailOpened +
		float64(e.EmailClickCount)*weightEmailClicked
	whatsapp := float64(e.WhatsAppSentCount)*weightWhatsAppSent +
		float64(e.WhatsAppDeliveredCount)*weightWhatsAppDelivered +
		float64(e.WhatsAppReadCount)*weightWhatsAppRead
	return email + whatsapp
}
