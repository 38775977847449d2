// Package sociallink validates that profile links actually point at the claimed platform.
package sociallink

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"

	"github.com/pkg/errors"
)

// platformRules maps each supported platform to the hosts it accepts and a
// pattern the URL path must match.
//
//nolint:gochecknoglobals
var platformRules = map[entity.SocialPlatform]struct {
	hosts []string
	path  *regexp.Regexp
}{
	entity.PlatformFacebook: {
		hosts: []string{"facebook.com", "www.facebook.com", "fb.com", "m.facebook.com"},
		path:  regexp.MustCompile(`^/[A-Za-z0-9.\-]{3,}/?$`),
	},
	entity.PlatformInstagram: {
		hosts: []string{"instagram.com", "www.instagram.com"},
		path:  regexp.MustCompile(`^/[A-Za-z0-9._]{1,30}/?$`),
	},
	entity.PlatformTwitter: {
		hosts: []string{"twitter.com", "www.twitter.com", "x.com", "www.x.com"},
		path:  regexp.MustCompile(`^/[A-Za-z0-9_]{1,15}/?$`),
	},
	entity.PlatformLinkedIn: {
		hosts: []string{"linkedin.com", "www.linkedin.com"},
		path:  regexp.MustCompile(`^/(in|company)/[A-Za-z0-9\-_%]+/?$`),
	},
	entity.PlatformYouTube: {
		hosts: []string{"youtube.com", "www.youtube.com"},
		path:  regexp.MustCompile(`^/(@[A-Za-z0-9._\-]+|channel/[A-Za-z0-9_\-]+|c/[A-Za-z0-9._\-]+)/?$`),
	},
	entity.PlatformTikTok: {
		hosts: []string{"tiktok.com", "www.tiktok.com"},
		path:  regexp.MustCompile(`^/@[A-Za-z0-9._]{1,24}/?$`),
	},
	entity.PlatformWhatsApp: {
		hosts: []string{"wa.me", "api.whatsapp.com", "whatsapp.com", "www.whatsapp.com"},
		path:  regexp.MustCompile(`^/(\+?[0-9]{6,15}|send/?)?$`),
	},
}

type linkValidator struct{}

// NewLinkValidator creates the platform URL validator.
func NewLinkValidator() service.LinkValidator {
	return &linkValidator{}
}

// Validate returns nil when the URL is a well formed link on the claimed platform.
func (v *linkValidator) Validate(_ context.Context, platform entity.SocialPlatform, rawURL string) error {
	rules, ok := platformRules[platform]
	if !ok {
		return errors.Errorf("unsupported platform: %s", platform)
	}

	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return errors.Wrap(err, "malformed URL")
	}

	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.Errorf("URL must use http or https, got %q", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	var hostMatch bool
	for _, allowed := range rules.hosts {
		if host == allowed {
			hostMatch = true

			break
		}
	}
	if !hostMatch {
		return errors.Errorf("host %q does not belong to %s", host, platform)
	}

	if !rules.path.MatchString(parsed.Path) {
		return errors.Errorf("path %q is not a valid %s profile path", parsed.Path, platform)
	}

	return nil
}
