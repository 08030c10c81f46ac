package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestFprint(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 15, 20
	opts.Seed, opts.Frequency = 42, 7
	game, err := NewGame(opts, nil)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := game.Fprint(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("expected header + 20 rows, got %d lines", len(lines))
	}
	if lines[0] != "seed=42 freq=7 noise=simplex size=15x20" {
		t.Errorf("header = %q", lines[0])
	}
	for _, row := range lines[1:] {
		if len(row) != 15 || strings.Trim(row, "WBDJSF") != "" {
			t.Errorf("unexpected row %q", row)
		}
	}
}
