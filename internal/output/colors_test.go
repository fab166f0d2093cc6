package output

import (
	"testing"
)

func TestColorSchemes(t *testing.T) {
	for name, scheme := range map[string]*ColorScheme{
		"DefaultColorScheme": DefaultColorScheme(),
		"NoColorScheme":      NoColorScheme(),
	} {
		if scheme.Key == nil || scheme.Value == nil || scheme.Path == nil ||
			scheme.Index == nil || scheme.Muted == nil {
			t.Errorf("%s has nil colors: %+v", name, scheme)
		}
	}
}

func TestNoColorSchemePlainText(t *testing.T) {
	scheme := NoColorScheme()
	if got := scheme.Key.Sprint("key"); got != "key" {
		t.Errorf("NoColorScheme.Key.Sprint() = %q, want %q", got, "key")
	}
}

func TestInfoIcon(t *testing.T) {
	if got := InfoIcon(true); got != "ℹ" {
		t.Errorf("InfoIcon(true) = %q, want %q", got, "ℹ")
	}
}
