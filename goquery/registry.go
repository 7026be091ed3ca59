package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webml"
)

// genericContentSelectors are tried in order when no site profile applies
// or the profile's container is missing: semantic containers first, then
// common class and id conventions.
var genericContentSelectors = []string{
	"main",
	"article",
	"[role=main]",
	"#content",
	"#main-content",
	".content",
	".post-content",
	".entry-content",
	".article-body",
}

// DefaultProfiles returns the built-in site profiles.
func DefaultProfiles() []webml.SiteProfile {
	return []webml.SiteProfile{
		{
			Name:             "wikipedia",
			Hosts:            []string{"wikipedia.org"},
			ContentSelectors: []string{"#mw-content-text"},
			NoiseSelectors: []string{
				".mw-editsection",
				".reference",
				".reflist",
				".references",
				".navbox",
				".metadata",
				".toc",
				"#toc",
				".mw-jump-link",
				".catlinks",
				".hatnote",
			},
		},
		{
			Name:             "github",
			Hosts:            []string{"github.com"},
			ContentSelectors: []string{".markdown-body"},
			NoiseSelectors:   []string{".anchor", ".octicon"},
		},
		{
			Name:             "docusaurus",
			Framework:        webml.FrameworkDocusaurus,
			ContentSelectors: []string{"article .markdown", "article"},
			NoiseSelectors:   []string{".hash-link", ".theme-doc-toc-mobile", ".pagination-nav", ".theme-edit-this-page"},
		},
		{
			Name:             "mkdocs",
			Framework:        webml.FrameworkMkDocs,
			ContentSelectors: []string{".md-content__inner", ".md-content"},
			NoiseSelectors:   []string{".headerlink", ".md-content__button", ".md-source-file"},
		},
		{
			Name:             "sphinx",
			Framework:        webml.FrameworkSphinx,
			ContentSelectors: []string{"[itemprop=articleBody]", "div.body", "[role=main]"},
			NoiseSelectors:   []string{".headerlink", ".sphinxsidebar", ".rst-footer-buttons"},
		},
		{
			Name:             "vitepress",
			Framework:        webml.FrameworkVitePress,
			ContentSelectors: []string{".VPDoc .vp-doc", ".VPDoc"},
			NoiseSelectors:   []string{".header-anchor", ".VPDocFooter", ".VPDocAsideOutline"},
		},
		{
			Name:             "vuepress",
			Framework:        webml.FrameworkVuePress,
			ContentSelectors: []string{".theme-default-content"},
			NoiseSelectors:   []string{".header-anchor", ".page-edit", ".page-nav"},
		},
		{
			Name:             "gitbook",
			Framework:        webml.FrameworkGitBook,
			ContentSelectors: []string{"[data-testid='page.contentEditor']", "main"},
			NoiseSelectors:   []string{"[data-testid='page.desktopTableOfContents']"},
		},
		{
			Name:             "nextra",
			Framework:        webml.FrameworkNextra,
			ContentSelectors: []string{"article", "main"},
			NoiseSelectors:   []string{".nextra-toc", ".nextra-breadcrumb"},
		},
	}
}

// Registry is the dispatch table from hostnames and site generators to
// profiles. Host profiles are matched in registration order, then the
// detected framework is tried; the generic candidate list is used when
// nothing matches, so new sites never touch the fallback path.
type Registry struct {
	profiles []webml.SiteProfile
	fallback []string
	detector *Detector
}

// NewRegistry creates a Registry holding the given profiles in order.
func NewRegistry(profiles ...webml.SiteProfile) *Registry {
	r := &Registry{fallback: genericContentSelectors, detector: NewDetector()}
	for _, p := range profiles {
		r.Register(p)
	}
	return r
}

// Register adds a profile. A profile with the same name is replaced in
// place, keeping its position.
func (r *Registry) Register(profile webml.SiteProfile) {
	for i := range r.profiles {
		if r.profiles[i].Name == profile.Name {
			r.profiles[i] = profile
			return
		}
	}
	r.profiles = append(r.profiles, profile)
}

// LookupFramework returns the first profile keyed by framework, or nil.
func (r *Registry) LookupFramework(framework webml.Framework) *webml.SiteProfile {
	if framework == webml.FrameworkUnknown {
		return nil
	}
	for i := range r.profiles {
		if r.profiles[i].Framework == framework {
			return &r.profiles[i]
		}
	}
	return nil
}

// Lookup returns the first profile matching host, or nil.
func (r *Registry) Lookup(host string) *webml.SiteProfile {
	for i := range r.profiles {
		if r.profiles[i].MatchHost(host) {
			return &r.profiles[i]
		}
	}
	return nil
}

// List returns the names of all registered profiles in match order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	return names
}

// SelectRoot picks the content root of doc. The profile matching the
// page host, or failing that the detected framework, is returned even when
// its container is missing, because its noise selectors still apply.
// Selection is first-match, never scored.
func (r *Registry) SelectRoot(doc *goquery.Document, pageURL *url.URL) (*goquery.Selection, *webml.SiteProfile) {
	var profile *webml.SiteProfile
	if pageURL != nil {
		profile = r.Lookup(pageURL.Hostname())
	}
	if profile == nil {
		profile = r.LookupFramework(r.detector.Detect(doc))
	}

	if profile != nil {
		for _, selector := range profile.ContentSelectors {
			if sel := doc.Find(selector).First(); sel.Length() > 0 {
				return sel, profile
			}
		}
	}

	var noise []string
	if profile != nil {
		noise = profile.NoiseSelectors
	}
	for _, selector := range r.fallback {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && hasText(sel, noise) {
			return sel, profile
		}
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return body, profile
	}
	return doc.Selection, profile
}

// hasText reports whether sel keeps any text once noise is filtered out.
func hasText(sel *goquery.Selection, noise []string) bool {
	return cleanText(filterNoise(sel, noise).Text()) != ""
}
