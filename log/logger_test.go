package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	specs := []struct {
		in       string
		out      Level
		expError bool
	}{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"", Notice, false},
		{"warn", Warning, false},
		{"error", Error, false},
		{"chatty", Notice, true},
	}

	for idx, s := range specs {
		lvl, err := ParseLevel(s.in)
		if s.expError && err == nil {
			t.Fatalf("[spec %d] expected an error parsing %q", idx, s.in)
		}
		if !s.expError && err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
		if lvl != s.out {
			t.Fatalf("[spec %d] expected level %d; got %d", idx, s.out, lvl)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")
	SetLevel(Warning)
	logger.Notice("hidden")
	logger.Error("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected notice message to be filtered at warning level; got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected error message tagged with module name; got %q", out)
	}
}
