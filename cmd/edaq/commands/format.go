package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const ruleWidth = 59

// printer writes formatted report output to one writer
type printer struct {
	w io.Writer
}

// Header prints a titled double-line header
func (p printer) Header(title string) {
	fmt.Fprintln(p.w)
	p.DoubleSeparator()
	fmt.Fprintf(p.w, "  %s\n", title)
	p.Separator()
}

// Section prints a section title
func (p printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "▶ %s\n", title)
}

// Separator prints a visual separator
func (p printer) Separator() {
	fmt.Fprintln(p.w, strings.Repeat("─", ruleWidth))
}

// DoubleSeparator prints a double-line separator
func (p printer) DoubleSeparator() {
	fmt.Fprintln(p.w, strings.Repeat("═", ruleWidth))
}

// Warning prints a warning message
func (p printer) Warning(message string) {
	fmt.Fprintf(p.w, "⚠️  %s\n", message)
}

// Success prints a success message
func (p printer) Success(message string) {
	fmt.Fprintf(p.w, "✅ %s\n", message)
}

// Error prints an error message
func (p printer) Error(message string) {
	fmt.Fprintf(p.w, "❌ %s\n", message)
}

// Info prints an info message
func (p printer) Info(message string) {
	fmt.Fprintf(p.w, "ℹ️  %s\n", message)
}

// KeyValue prints key-value pairs
func (p printer) KeyValue(key string, value string, keyWidth int) {
	fmt.Fprintf(p.w, "   %-*s : %s\n", keyWidth, key, value)
}

// List prints a bulleted list
func (p printer) List(items []string) {
	for _, item := range items {
		fmt.Fprintf(p.w, "   • %s\n", item)
	}
}

// Table prints rows under a header. Column widths grow to fit the content.
func (p printer) Table(columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len([]rune(col))
	}
	for _, row := range rows {
		for i, val := range row {
			if n := len([]rune(val)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	p.tableRow(columns, widths)

	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Fprintln(p.w, strings.Repeat("─", totalWidth))

	for _, row := range rows {
		p.tableRow(row, widths)
	}
}

func (p printer) tableRow(values []string, widths []int) {
	var b strings.Builder
	for i, val := range values {
		b.WriteString(val)
		if i < len(values)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(val))+2))
		}
	}
	fmt.Fprintln(p.w, b.String())
}

// formatPct renders a share as a percentage
func formatPct(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 1, 64) + "%"
}

// formatOptional renders an optional statistic, "-" when absent
func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', 6, 64)
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
