package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KillianMeersman/telemeter/internal/domain"
	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/theme"
	"github.com/KillianMeersman/telemeter/internal/ui/components"
)

// BreakdownView splits the period's consumption by traffic category:
// a donut chart next to a striped table. Categories keep the order the
// portal reports them in.
type BreakdownView struct {
	record   *domain.UsageRecord
	AnimTick uint
}

func NewBreakdownView() *BreakdownView {
	return &BreakdownView{}
}

func (v *BreakdownView) SetRecord(rec *domain.UsageRecord) {
	v.record = rec
}

func (v *BreakdownView) Update(msg tea.Msg) tea.Cmd {
	return nil
}

func (v *BreakdownView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	card := components.Card{
		Title:   i18n.T("tab_breakdown"),
		Tick:    v.AnimTick,
		Width:   cardWidth,
		Compact: compact,
	}

	if v.record == nil {
		card.Content = theme.MutedStyle.Render(i18n.T("loading"))
		return card.Render()
	}

	slices := v.slices()
	innerW := card.InnerWidth()

	var sections []string

	chart := components.PieChart{
		Slices:    slices,
		ChartSize: 18,
		Width:     innerW,
	}
	sections = append(sections, components.CenterBlock(chart.Render(), innerW))
	sections = append(sections, "")
	sections = append(sections, components.CenterBlock(v.renderTable(slices), innerW))

	card.Content = strings.Join(sections, "\n")
	return card.Render()
}

// slices converts the record's categories, keeping their order.
func (v *BreakdownView) slices() []components.PieSlice {
	var total int64
	for _, c := range v.record.Categories {
		total += c.UsedBytes
	}

	slices := make([]components.PieSlice, 0, len(v.record.Categories))
	for _, c := range v.record.Categories {
		pct := 0.0
		if total > 0 {
			pct = float64(c.UsedBytes) / float64(total) * 100
		}
		slices = append(slices, components.PieSlice{
			Label:      i18n.CategoryName(c.Name),
			Bytes:      c.UsedBytes,
			Percentage: pct,
		})
	}
	return slices
}

func (v *BreakdownView) renderTable(slices []components.PieSlice) string {
	labelW := len(i18n.T("breakdown_category"))
	for _, s := range slices {
		if len(s.Label) > labelW {
			labelW = len(s.Label)
		}
	}
	widths := []int{labelW + 2, -10, -8}

	headings := []string{
		i18n.T("breakdown_category"),
		i18n.T("breakdown_usage"),
		i18n.T("breakdown_share"),
	}

	rows := []string{components.TableHeader(headings, widths)}
	var total int64
	for i, s := range slices {
		cells := []string{
			s.Label,
			components.FormatBytes(s.Bytes),
			fmt.Sprintf("%.1f%%", s.Percentage),
		}
		rows = append(rows, components.RowBackground(i).Render(
			components.FormatColumns(cells, widths)))
		total += s.Bytes
	}
	rows = append(rows, components.TableTotal(
		[]string{"", components.FormatBytes(total), ""}, widths))

	return strings.Join(rows, "\n")
}
