// Package ux renders riskready CLI output with lipgloss. Styles are keyed by
// the display tag names the engine attaches to derived values.
package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette, one color per display tag.
var (
	ColorSuccess   = lipgloss.Color("#2E7D32")
	ColorWarning   = lipgloss.Color("#F9A825")
	ColorError     = lipgloss.Color("#C62828")
	ColorInfo      = lipgloss.Color("#0288D1")
	ColorPrimary   = lipgloss.Color("#1565C0")
	ColorSecondary = lipgloss.Color("#7B1FA2")
	ColorMuted     = lipgloss.Color("#757575")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Bold   lipgloss.Style
	Muted  lipgloss.Style
	Box    lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
	Header: lipgloss.NewStyle().Bold(true).Underline(true),
	Bold:   lipgloss.NewStyle().Bold(true),
	Muted:  lipgloss.NewStyle().Foreground(ColorMuted),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1),
}

var tagColors = map[string]lipgloss.Color{
	"success":   ColorSuccess,
	"warning":   ColorWarning,
	"error":     ColorError,
	"info":      ColorInfo,
	"primary":   ColorPrimary,
	"secondary": ColorSecondary,
	"default":   ColorMuted,
}

// TagStyle returns the style for a display tag. Unknown tags use the muted
// color.
func TagStyle(tag string) lipgloss.Style {
	c, ok := tagColors[tag]
	if !ok {
		c = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Icon is a status marker.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconBullet  Icon = "•"
)

// Printer writes styled output to w. A plain printer writes no escape
// sequences, for pipes and tests.
type Printer struct {
	w     io.Writer
	plain bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, plain: plain}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Badge renders text in the color of tag.
func (p *Printer) Badge(tag, text string) string {
	return p.render(TagStyle(tag), text)
}

// Title prints a styled heading.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.render(Styles.Title, text))
}

// Line prints a formatted line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Muted prints secondary text.
func (p *Printer) Muted(text string) {
	fmt.Fprintln(p.w, p.render(Styles.Muted, text))
}

// Success prints a message with a check mark.
func (p *Printer) Success(text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Badge("success", string(IconSuccess)), text)
}

// Warning prints a message with a warning mark.
func (p *Printer) Warning(text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Badge("warning", string(IconWarning)), text)
}

// Box prints content in a rounded box under a title.
func (p *Printer) Box(title, content string) {
	if p.plain {
		fmt.Fprintf(p.w, "%s\n%s\n", title, content)
		return
	}
	fmt.Fprintln(p.w, Styles.Box.Render(Styles.Title.Render(title)+"\n"+content))
}

// Table prints rows as aligned columns under headers. Cells may already
// carry styling; widths are measured without escape sequences.
func (p *Printer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	head := make([]string, len(headers))
	for i, h := range headers {
		head[i] = p.render(Styles.Header, h) + pad(h, widths[i])
	}
	fmt.Fprintln(p.w, strings.TrimRight(strings.Join(head, "  "), " "))

	for _, row := range rows {
		cells := make([]string, len(widths))
		for i := range widths {
			if i < len(row) {
				cells[i] = row[i] + pad(row[i], widths[i])
			} else {
				cells[i] = strings.Repeat(" ", widths[i])
			}
		}
		fmt.Fprintln(p.w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func pad(cell string, width int) string {
	n := width - lipgloss.Width(cell)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// ProgressBar renders a percentage as a bar of the given width colored by
// tag.
func (p *Printer) ProgressBar(percentage, width int, tag string) string {
	percentage = min(max(percentage, 0), 100)
	filled := percentage * width / 100
	bar := p.Badge(tag, strings.Repeat("█", filled)) +
		p.render(Styles.Muted, strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %3d%%", bar, percentage)
}
