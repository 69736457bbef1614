package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rekarton-ge/client-crm/internal/store"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary   = "Summary"
	sheetData      = "Data"
	sheetAnalytics = "Analytics"
)

// ExportReport renders a report as an XLSX workbook: a Summary sheet with
// the report metadata, a Data sheet flattening the JSON payload and, for
// campaign reports, an Analytics sheet with the campaign's daily buckets.
func (p *AnalyticsProcessor) ExportReport(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	ctx = reportFields(ctx, id)

	report, err := p.GetReport(ctx, id)
	if err != nil {
		return "", nil, err
	}

	var buckets []store.MessageAnalytics
	if report.CampaignID != nil {
		page, err := p.store.ListMessageAnalytics(ctx, store.ListParams{
			Filters:  map[string]string{"campaign": report.CampaignID.String()},
			Ordering: "date",
			Page:     1,
			Limit:    store.MaxPageSize,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to load campaign analytics for export", err)
			return "", nil, err
		}
		buckets = page.Results
	}

	content, err := buildWorkbook(report, buckets)
	if err != nil {
		p.logger.Error(ctx, "failed to build report workbook", err)
		return "", nil, err
	}

	p.logger.Info(ctx, "report exported")
	return fmt.Sprintf("report-%s.xlsx", report.ID), content, nil
}

func buildWorkbook(report store.ReportData, buckets []store.MessageAnalytics) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), sheetSummary); err != nil {
		return nil, err
	}
	bold, err := xl.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	summary := [][]string{
		{"Title", report.Title},
		{"Type", report.ReportType},
		{"Description", deref(report.Description)},
		{"Period start", formatDate(report.PeriodStart)},
		{"Period end", formatDate(report.PeriodEnd)},
		{"Campaign", formatID(report.CampaignID)},
		{"Client", formatID(report.ClientID)},
		{"Created at", report.CreatedAt.UTC().Format(time.RFC3339)},
	}
	if err := writeRows(xl, sheetSummary, summary); err != nil {
		return nil, err
	}
	if err := xl.SetColStyle(sheetSummary, "A", bold); err != nil {
		return nil, err
	}
	if err := xl.SetColWidth(sheetSummary, "A", "A", 16); err != nil {
		return nil, err
	}
	if err := xl.SetColWidth(sheetSummary, "B", "B", 48); err != nil {
		return nil, err
	}

	dataRows, err := flattenPayload(report.Data)
	if err != nil {
		return nil, err
	}
	if _, err := xl.NewSheet(sheetData); err != nil {
		return nil, err
	}
	if err := writeRows(xl, sheetData, dataRows); err != nil {
		return nil, err
	}
	if err := xl.SetRowStyle(sheetData, 1, 1, bold); err != nil {
		return nil, err
	}

	if len(buckets) > 0 {
		if _, err := xl.NewSheet(sheetAnalytics); err != nil {
			return nil, err
		}
		if err := writeRows(xl, sheetAnalytics, analyticsRows(buckets)); err != nil {
			return nil, err
		}
		if err := xl.SetRowStyle(sheetAnalytics, 1, 1, bold); err != nil {
			return nil, err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(xl *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := xl.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// flattenPayload turns a report payload into rows. An object becomes
// key/value pairs, a list of objects becomes a table over the union of
// their keys, anything else a single cell.
func flattenPayload(raw store.RawJSON) ([][]string, error) {
	if len(raw) == 0 {
		return [][]string{{"value"}}, nil
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode report data: %w", err)
	}

	switch v := payload.(type) {
	case map[string]any:
		rows := [][]string{{"key", "value"}}
		for _, key := range sortedKeys(v) {
			rows = append(rows, []string{key, cellValue(v[key])})
		}
		return rows, nil
	case []any:
		if objects, ok := asObjects(v); ok {
			columns := unionKeys(objects)
			rows := [][]string{columns}
			for _, obj := range objects {
				row := make([]string, len(columns))
				for i, col := range columns {
					row[i] = cellValue(obj[col])
				}
				rows = append(rows, row)
			}
			return rows, nil
		}
		rows := [][]string{{"value"}}
		for _, item := range v {
			rows = append(rows, []string{cellValue(item)})
		}
		return rows, nil
	default:
		return [][]string{{"value"}, {cellValue(v)}}, nil
	}
}

func asObjects(items []any) ([]map[string]any, bool) {
	if len(items) == 0 {
		return nil, false
	}
	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		objects = append(objects, obj)
	}
	return objects, true
}

func unionKeys(objects []map[string]any) []string {
	seen := map[string]bool{}
	var keys []string
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func analyticsRows(buckets []store.MessageAnalytics) [][]string {
	rows := [][]string{{
		"date", "message_type", "sent", "delivered", "opens", "clicks",
		"unique_opens", "unique_clicks", "bounces", "complaints",
		"delivery_rate", "open_rate", "click_rate",
	}}
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Date.Format("2006-01-02"),
			b.MessageType,
			strconv.Itoa(b.SentCount),
			strconv.Itoa(b.DeliveredCount),
			strconv.Itoa(b.OpenCount),
			strconv.Itoa(b.ClickCount),
			strconv.Itoa(b.UniqueOpenCount),
			strconv.Itoa(b.UniqueClickCount),
			strconv.Itoa(b.BounceCount),
			strconv.Itoa(b.ComplaintCount),
			strconv.FormatFloat(b.DeliveryRate, 'f', 2, 64),
			strconv.FormatFloat(b.OpenRate, 'f', 2, 64),
			strconv.FormatFloat(b.ClickRate, 'f', 2, 64),
		})
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
