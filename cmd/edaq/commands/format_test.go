package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	p := printer{w: &buf}

	p.Table([]string{"name", "n"}, [][]string{
		{"a", "1"},
		{"longer", "22"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"name    n",
		"──────────",
		"a       1",
		"longer  22",
	}, lines)
}

func TestFormatHelpers(t *testing.T) {
	v := 1.23456789
	assert.Equal(t, "1.23457", formatOptional(&v))
	assert.Equal(t, "-", formatOptional(nil))
	assert.Equal(t, "25.0%", formatPct(0.25))
	assert.Equal(t, "-", formatList(nil))
	assert.Equal(t, "a, b", formatList([]string{"a", "b"}))
}
