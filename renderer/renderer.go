// Package renderer builds the markdown reports shown by the CLI.
package renderer

import (
	"fmt"
	"strings"
)

// builder wraps a strings.Builder with a Printf helper, so report code reads
// as a sequence of formatted lines.
type builder struct {
	*strings.Builder
}

func newBuilder() *builder { return &builder{&strings.Builder{}} }

// Printf formats according to a format specifier and writes to the builder.
func (b *builder) Printf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}
