package sociallink

import (
	"context"
	"testing"

	"atlas/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkValidator_AcceptsValidLinks(t *testing.T) {
	validator := NewLinkValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		platform entity.SocialPlatform
		url      string
	}{
		{"facebook page", entity.PlatformFacebook, "https://www.facebook.com/corner.bakery"},
		{"facebook short host", entity.PlatformFacebook, "https://fb.com/cornerbakery"},
		{"instagram handle", entity.PlatformInstagram, "https://instagram.com/corner_bakery"},
		{"twitter handle", entity.PlatformTwitter, "https://twitter.com/cornerbakery"},
		{"x.com handle", entity.PlatformTwitter, "https://x.com/cornerbakery"},
		{"linkedin company", entity.PlatformLinkedIn, "https://www.linkedin.com/company/corner-bakery"},
		{"linkedin person", entity.PlatformLinkedIn, "https://linkedin.com/in/jane-doe"},
		{"youtube handle", entity.PlatformYouTube, "https://www.youtube.com/@cornerbakery"},
		{"youtube channel", entity.PlatformYouTube, "https://youtube.com/channel/UCabc123_def"},
		{"tiktok handle", entity.PlatformTikTok, "https://www.tiktok.com/@corner.bakery"},
		{"whatsapp number", entity.PlatformWhatsApp, "https://wa.me/34600111222"},
		{"trailing slash", entity.PlatformInstagram, "https://instagram.com/corner_bakery/"},
		{"surrounding whitespace", entity.PlatformTwitter, "  https://twitter.com/cornerbakery  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, validator.Validate(ctx, tt.platform, tt.url))
		})
	}
}

func TestLinkValidator_RejectsInvalidLinks(t *testing.T) {
	validator := NewLinkValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		platform entity.SocialPlatform
		url      string
	}{
		{"wrong host", entity.PlatformFacebook, "https://instagram.com/corner_bakery"},
		{"lookalike host", entity.PlatformInstagram, "https://instagram.com.evil.example/corner_bakery"},
		{"not a URL", entity.PlatformTwitter, "not a url at all"},
		{"ftp scheme", entity.PlatformTwitter, "ftp://twitter.com/cornerbakery"},
		{"missing handle", entity.PlatformInstagram, "https://instagram.com/"},
		{"twitter handle too long", entity.PlatformTwitter, "https://twitter.com/this_handle_is_way_too_long"},
		{"linkedin without prefix", entity.PlatformLinkedIn, "https://linkedin.com/corner-bakery"},
		{"tiktok without at sign", entity.PlatformTikTok, "https://tiktok.com/cornerbakery"},
		{"whatsapp with letters", entity.PlatformWhatsApp, "https://wa.me/not-a-number"},
		{"youtube watch link", entity.PlatformYouTube, "https://youtube.com/watch?v=abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validator.Validate(ctx, tt.platform, tt.url))
		})
	}
}

func TestLinkValidator_UnknownPlatform(t *testing.T) {
	validator := NewLinkValidator()

	err := validator.Validate(context.Background(), entity.SocialPlatform("myspace"), "https://myspace.com/band")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported platform")
}
