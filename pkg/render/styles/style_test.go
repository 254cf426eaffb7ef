package styles

import (
	"strings"
	"testing"
)

func TestValid(t *testing.T) {
	for _, name := range []string{Simple, Handdrawn} {
		if !Valid(name) {
			t.Errorf("Valid(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "fancy", "SIMPLE"} {
		if Valid(name) {
			t.Errorf("Valid(%q) = true, want false", name)
		}
	}
}

func TestFontFamily(t *testing.T) {
	if got := FontFamily(Handdrawn); !strings.Contains(got, "xkcd Script") {
		t.Errorf("FontFamily(handdrawn) = %q, want xkcd Script first", got)
	}
	if FontFamily("unknown") != FontFamily(Simple) {
		t.Error("unknown style should fall back to simple")
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct{ in, want string }{
		{"[Instruction]*", "[Instruction]*"},
		{"a < b & c", "a &lt; b &amp; c"},
		{`"quoted"`, "&#34;quoted&#34;"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
