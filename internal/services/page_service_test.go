package services

import (
	"errors"
	"testing"

	"github.com/selimcobanoglu/storehub-backend/internal/dto"
	"github.com/selimcobanoglu/storehub-backend/internal/models"
)

func TestSlugPattern(t *testing.T) {
	t.Parallel()

	valid := []string{"about", "about-us", "faq-2024", "a", "1-2-3"}
	for _, slug := range valid {
		if !slugPattern.MatchString(slug) {
			t.Errorf("expected %q to be valid", slug)
		}
	}

	invalid := []string{"", "About", "about us", "-about", "about-", "about--us", "über"}
	for _, slug := range invalid {
		if slugPattern.MatchString(slug) {
			t.Errorf("expected %q to be rejected", slug)
		}
	}
}

func TestValidatePageRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.UpsertPageRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  dto.UpsertPageRequest{Slug: "about-us", Title: "About Us", Kind: models.PageKindStandard},
		},
		{
			name:    "bad slug",
			req:     dto.UpsertPageRequest{Slug: "About Us", Title: "About Us", Kind: models.PageKindStandard},
			wantErr: ErrInvalidSlug,
		},
		{
			name:    "unknown kind",
			req:     dto.UpsertPageRequest{Slug: "about-us", Title: "About Us", Kind: "blog"},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePageRequest(&tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
