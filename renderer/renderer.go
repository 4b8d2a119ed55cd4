// Package renderer formats report structs into markdown strings. It owns
// presentation only; all numbers arrive already computed.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates markdown output.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer { return &mdRenderer{Builder: &strings.Builder{}} }

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// barWidth is the width of the longest bar in a chart.
const barWidth = 40

// bar renders a value as a proportional block bar against the chart maximum.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
