package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-docs-sync/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("ctrl+c: quit")

	return b.String()
}

// viewTitle picks the server title, then the catalog title, then the id.
func viewTitle(state models.SyncState, viewID string) string {
	if state.Data != nil && strings.TrimSpace(state.Data.Title) != "" {
		return state.Data.Title
	}
	if title, ok := models.KnownViews[viewID]; ok {
		return title
	}
	return viewID
}

func renderMeta(state models.SyncState, org, viewID string, live bool) string {
	parts := []string{
		"org: " + valueOrDash(org),
		"view: " + valueOrDash(viewID),
	}
	if state.Data != nil {
		parts = append(parts,
			fmt.Sprintf("rows: %d", state.Data.RowCount),
			"generated: "+valueOrDash(state.Data.GeneratedAt),
		)
	}
	if live {
		parts = append(parts, "live")
	}
	return strings.Join(parts, "  ·  ")
}

// renderRows renders one compact JSON row per line, cut to width.
func renderRows(data *models.ViewData, width int) string {
	if data == nil {
		return ""
	}
	if len(data.Data) == 0 {
		return "(empty view)"
	}

	var b strings.Builder
	for i, row := range data.Data {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fitText(compactRow(row), width))
	}
	return b.String()
}

func compactRow(row json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, row); err != nil {
		return string(row)
	}
	return buf.String()
}

// rowsJSON is the clipboard payload for the current view.
func rowsJSON(data *models.ViewData) (string, error) {
	rows := data.Data
	if rows == nil {
		rows = []json.RawMessage{}
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal rows: %w", err)
	}
	return string(out), nil
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
