// internal/app/print.go
package app

import (
	"fmt"
	"io"
	"strings"
)

// Fprint пишет заголовок с сидом и по строке на каждый ряд j,
// одна заглавная буква на клетку.
func (g *Game) Fprint(w io.Writer) error {
	m := g.Map
	if _, err := fmt.Fprintf(w, "seed=%d freq=%d noise=%s size=%dx%d\n",
		m.Seed, m.Frequency, g.NoiseKind(), m.Width, m.Height); err != nil {
		return err
	}
	for _, row := range m.Cells {
		var sb strings.Builder
		for _, b := range row {
			sb.WriteString(strings.ToUpper(string(b)[:1]))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
