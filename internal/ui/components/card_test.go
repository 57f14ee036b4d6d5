package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCardRenderWidth(t *testing.T) {
	c := Card{
		Title:   "Usage",
		Width:   40,
		Content: "hello\nworld",
	}
	out := c.Render()
	for i, line := range strings.Split(out, "\n") {
		if got := lipgloss.Width(line); got != 40 {
			t.Errorf("line %d: width = %d, want 40", i, got)
		}
	}
}

func TestCardRenderContainsContent(t *testing.T) {
	c := Card{Title: "Period", Width: 30, Content: "23 days left"}
	out := c.Render()
	if !strings.Contains(out, "23 days left") {
		t.Errorf("rendered card missing content:\n%s", out)
	}
}

func TestCardLongTitleDoesNotPanic(t *testing.T) {
	c := Card{
		Title:   "a very long title that exceeds the card width entirely",
		Width:   20,
		Content: "x",
	}
	if out := c.Render(); out == "" {
		t.Fatal("empty render")
	}
}

func TestCardInnerWidth(t *testing.T) {
	c := Card{Width: 80}
	if got := c.InnerWidth(); got != 76 {
		t.Errorf("InnerWidth() = %d, want 76", got)
	}
	c.Compact = true
	if got := c.InnerWidth(); got != 78 {
		t.Errorf("Compact InnerWidth() = %d, want 78", got)
	}
}

func TestCompactCardHasSeparator(t *testing.T) {
	c := Card{Title: "Breakdown", Width: 30, Content: "rows", Compact: true}
	out := c.Render()
	if !strings.Contains(out, "─") {
		t.Errorf("compact card missing separator:\n%s", out)
	}
	if strings.Contains(out, "╭") {
		t.Errorf("compact card should not have a border:\n%s", out)
	}
}
