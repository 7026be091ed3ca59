package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webml"
)

// frameworkMarker lists the DOM selectors a site generator emits. One
// strong selector identifies the framework on its own; weak selectors are
// class names other sites also use, so two of them must match.
type frameworkMarker struct {
	framework webml.Framework
	strong    []string
	weak      []string
}

// frameworkMarkers are checked in order. VitePress precedes VuePress
// because it reuses some VuePress class names.
var frameworkMarkers = []frameworkMarker{
	{
		framework: webml.FrameworkDocusaurus,
		strong:    []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"},
		weak:      []string{"html[data-rh][data-theme]", ".theme-doc-markdown", ".navbar__brand"},
	},
	{
		framework: webml.FrameworkMkDocs,
		strong:    []string{"[data-md-color-scheme]", "[data-md-component]"},
		weak:      []string{".md-nav--primary", ".md-content"},
	},
	{
		framework: webml.FrameworkSphinx,
		strong:    []string{".toctree-wrapper", ".wy-nav-side"},
		weak:      []string{".sphinxsidebar", ".wy-menu-vertical", ".documentwrapper"},
	},
	{
		framework: webml.FrameworkVitePress,
		strong:    []string{"#VPContent", ".VPDoc"},
		weak:      []string{".VPDocAsideOutline", ".vp-doc"},
	},
	{
		framework: webml.FrameworkVuePress,
		strong:    []string{".theme-default-content"},
		weak:      []string{".sidebar-links", ".page-nav", ".page-edit", ".navbar .site-name"},
	},
	{
		framework: webml.FrameworkGitBook,
		strong:    []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"},
		weak:      []string{"html.circular-corners", "html.theme-clean", "html.tint"},
	},
	{
		framework: webml.FrameworkNextra,
		strong:    []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"},
	},
}

// weakMarkerThreshold is how many weak selectors must match.
const weakMarkerThreshold = 2

// matches reports whether doc carries the marker.
func (m frameworkMarker) matches(doc *goquery.Document) bool {
	for _, sel := range m.strong {
		if doc.Find(sel).Length() > 0 {
			return true
		}
	}
	count := 0
	for _, sel := range m.weak {
		if doc.Find(sel).Length() > 0 {
			count++
		}
	}
	return count >= weakMarkerThreshold
}

// generatorNames maps substrings of <meta name="generator"> onto frameworks.
// VitePress precedes VuePress for the same reason as above.
var generatorNames = []struct {
	name      string
	framework webml.Framework
}{
	{"sphinx", webml.FrameworkSphinx},
	{"gitbook", webml.FrameworkGitBook},
	{"docusaurus", webml.FrameworkDocusaurus},
	{"mkdocs", webml.FrameworkMkDocs},
	{"vitepress", webml.FrameworkVitePress},
	{"vuepress", webml.FrameworkVuePress},
	{"nextra", webml.FrameworkNextra},
}

// Detector identifies the site generator of a parsed page.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the framework that generated doc, or
// webml.FrameworkUnknown. The generator meta tag wins over DOM markers.
func (d *Detector) Detect(doc *goquery.Document) webml.Framework {
	if f := d.fromMetaGenerator(doc); f != webml.FrameworkUnknown {
		return f
	}

	for _, m := range frameworkMarkers {
		if m.matches(doc) {
			return m.framework
		}
	}
	return webml.FrameworkUnknown
}

func (d *Detector) fromMetaGenerator(doc *goquery.Document) webml.Framework {
	generator := strings.ToLower(doc.Find("meta[name='generator']").Last().AttrOr("content", ""))
	if generator == "" {
		return webml.FrameworkUnknown
	}
	for _, g := range generatorNames {
		if strings.Contains(generator, g.name) {
			return g.framework
		}
	}
	return webml.FrameworkUnknown
}
