package models

import "testing"

func TestValidPageKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{PageKindStandard, PageKindLanding, PageKindFAQ} {
		if !ValidPageKind(kind) {
			t.Errorf("expected %q to be valid", kind)
		}
	}
	for _, kind := range []string{"", "blog", "Standard", "FAQ"} {
		if ValidPageKind(kind) {
			t.Errorf("expected %q to be invalid", kind)
		}
	}
}
