package normalize

import (
	"net/url"
	"strings"

	"github.com/aswinr92/lead-generator/internal/model"
)

// normalizeWebsite canonicalizes a URL: defaults the scheme to https,
// strips tracking query parameters and the fragment, and classifies the
// listing's web presence by host. Unparseable input degrades to no
// presence.
func (n *Normalizer) normalizeWebsite(raw string) (string, model.PresenceKind) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", model.PresenceNone
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", model.PresenceNone
	}

	q := u.Query()
	for name := range q {
		if n.isTrackingParam(name) {
			q.Del(name)
		}
	}
	u.RawQuery = q.Encode() // Encode sorts keys, keeping output stable
	u.Fragment = ""

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if n.isSocialHost(host) {
		return u.String(), model.PresenceSocialOnly
	}
	return u.String(), model.PresenceWebsite
}

func (n *Normalizer) isTrackingParam(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range n.opts.TrackingParams {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(lower, prefix) {
				return true
			}
			continue
		}
		if lower == pattern {
			return true
		}
	}
	return false
}

func (n *Normalizer) isSocialHost(host string) bool {
	for _, social := range n.opts.SocialHosts {
		if host == social || strings.HasSuffix(host, "."+social) {
			return true
		}
	}
	return false
}
