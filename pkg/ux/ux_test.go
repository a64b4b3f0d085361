package ux_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/riskready/pkg/ux"
)

func TestTagStyle_UnknownFallsBackToMuted(t *testing.T) {
	assert.Equal(t, ux.ColorError, ux.TagStyle("error").GetForeground())
	assert.Equal(t, ux.ColorMuted, ux.TagStyle("nope").GetForeground())
}

func TestPrinter_PlainWritesNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := ux.NewPrinter(&buf, true)

	p.Title("Dashboard")
	p.Success("saved")
	p.Warning("low stock")
	p.Line("%d items", 3)

	assert.Equal(t, "Dashboard\n✓ saved\n⚠ low stock\n3 items\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := ux.NewPrinter(&buf, true)

	p.Table([]string{"ID", "Name"}, [][]string{
		{"1", "Power Outage"},
		{"10", "Pandemic"},
		{"7"},
	})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  Name", lines[0])
	assert.Equal(t, "1   Power Outage", lines[1])
	assert.Equal(t, "10  Pandemic", lines[2])
	assert.Equal(t, "7", lines[3])
}

func TestPrinter_ProgressBar(t *testing.T) {
	p := ux.NewPrinter(&bytes.Buffer{}, true)

	assert.Equal(t, "█████░░░░░  50%", p.ProgressBar(50, 10, "warning"))
	assert.Equal(t, "░░░░░░░░░░   0%", p.ProgressBar(-5, 10, "error"))
	assert.Equal(t, "██████████ 100%", p.ProgressBar(140, 10, "success"))
}

func TestPrinter_Box(t *testing.T) {
	var buf bytes.Buffer
	ux.NewPrinter(&buf, true).Box("Risk", "score 3.2")
	assert.Equal(t, "Risk\nscore 3.2\n", buf.String())
}
