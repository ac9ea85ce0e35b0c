package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sm2/internal/sm2"
	"github.com/abhisek/sm2/internal/ui/theme"
)

// result is what review, interval and show report about an item.
type result struct {
	Key      string       `json:"key,omitempty"`
	Quality  *sm2.Quality `json:"quality,omitempty"`
	Item     sm2.Item     `json:"item"`
	Interval sm2.Interval `json:"interval_days"`
	Repeat   bool         `json:"repeat,omitempty"`
}

func newResult(key string, item sm2.Item) result {
	return result{Key: key, Item: item, Interval: item.Interval()}
}

func writeResult(w io.Writer, r result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	_, err := lipgloss.Fprintln(w, renderResult(r))
	return err
}

func renderResult(r result) string {
	var b strings.Builder
	if r.Key != "" {
		b.WriteString(theme.Title.Render(r.Key))
		b.WriteString("\n")
	}
	if r.Quality != nil {
		row(&b, "quality", qualityStyle(*r.Quality).Render(r.Quality.String()))
	}
	row(&b, "repetitions", theme.Value.Render(fmt.Sprint(r.Item.Repetitions())))
	row(&b, "easiness", theme.Value.Render(fmt.Sprintf("%.2f", r.Item.Easiness())))
	row(&b, "interval", theme.Value.Render(formatDays(r.Interval)))
	if r.Repeat {
		b.WriteString(theme.Hint.Render("repeat this item before the session ends"))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(theme.Label.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func qualityStyle(q sm2.Quality) lipgloss.Style {
	switch {
	case q.Forgot():
		return theme.Forgotten
	case q.Repeat():
		return theme.Struggled
	default:
		return theme.Recalled
	}
}

func formatDays(d sm2.Interval) string {
	if d == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", d)
}
