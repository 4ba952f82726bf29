//go:build !wasm
// +build !wasm

package counter

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vcrobe/elmish/apptest"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		action Action
		model  int
		want   int
	}{
		{Inc, 0, 1},
		{Dec, 0, -1},
		{Reset, 42, 0},
		{Action("unknown"), 7, 7},
	}
	for _, tt := range tests {
		if got := Update(tt.action, tt.model); got != tt.want {
			t.Errorf("Update(%q, %d) = %d, want %d", tt.action, tt.model, got, tt.want)
		}
	}
}

// TestCounter_MountAndReset mounts with 7, reads the count out of the full
// container text and resets it to zero.
func TestCounter_MountAndReset(t *testing.T) {
	h := apptest.Mount(t, 7, Update, View)

	text := h.Text()
	stripped := strings.TrimPrefix(strings.TrimSuffix(text, "-Reset"), "+")
	if n, err := strconv.Atoi(stripped); err != nil || n != 7 {
		t.Fatalf("Expected initial state 7, container text was '%s'", text)
	}

	h.Click(".reset")

	if got := h.Find(".count").TextContent(); got != "0" {
		t.Errorf("Expected state 0 after reset, got '%s'", got)
	}
}

func TestCounter_IncDec(t *testing.T) {
	h := apptest.Mount(t, 0, Update, View)

	h.Click(".inc")
	h.Click(".inc")
	h.Click(".inc")
	h.Click(".dec")

	if got := h.Find(".count").TextContent(); got != "2" {
		t.Errorf("Expected '2', got '%s'", got)
	}
	if got := len(h.Doc.ElementsByClassName("count")); got != 1 {
		t.Errorf("Expected a single count element, got %d", got)
	}
}
