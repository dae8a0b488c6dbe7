package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "0.1.0\n")

	out := buf.String()
	assert.Contains(t, out, "v0.1.0")
	assert.NotContains(t, out, "\x1b[", "no escape codes for a non-terminal writer")
}

func TestNewRenderer(t *testing.T) {
	render := NewRenderer(60)
	out, err := render("# You got it!")
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}
