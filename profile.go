package webml

import "strings"

// SiteProfile is a host-keyed content extraction strategy. It tells the
// content root selector where the article lives on a known site and which
// site-specific noise to strip from it.
type SiteProfile struct {
	// Name identifies the profile (e.g., "wikipedia").
	Name string `json:"name" yaml:"name"`

	// Hosts lists the hostnames the profile applies to. A host matches
	// exactly or as a parent domain ("wikipedia.org" matches
	// "en.wikipedia.org").
	Hosts []string `json:"hosts" yaml:"hosts"`

	// ContentSelectors are tried in order; the first non-empty match is
	// the content root.
	ContentSelectors []string `json:"content" yaml:"content"`

	// NoiseSelectors are removed from the content root.
	NoiseSelectors []string `json:"noise" yaml:"noise"`

	// Framework, when set, applies the profile to pages generated by that
	// framework on hosts no other profile claims.
	Framework Framework `json:"framework,omitempty" yaml:"framework,omitempty"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *SiteProfile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if len(p.Hosts) == 0 && p.Framework == FrameworkUnknown {
		return Errorf(EINVALID, "profile %q: at least one host or a framework required", p.Name)
	}
	if len(p.ContentSelectors) == 0 {
		return Errorf(EINVALID, "profile %q: at least one content selector required", p.Name)
	}
	return nil
}

// MatchHost reports whether the profile applies to host.
func (p *SiteProfile) MatchHost(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return false
	}
	for _, h := range p.Hosts {
		h = strings.ToLower(strings.TrimPrefix(h, "."))
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
