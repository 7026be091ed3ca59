package webml

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Semantic extraction limits.
const (
	MaxNavigateActions = 10
	MaxFormActions     = 5
	MaxActionFields    = 15
)

// Confidence bounds and the fixed score of non-HTML documents.
const (
	MinConfidence     = 0.2
	MaxConfidence     = 0.95
	NonHTMLConfidence = 0.3
)

// Entity and relation types.
const (
	EntityArticle      = "article"
	EntityResource     = "resource"
	RelationReferences = "references"
)

// PageEntityPolicy decides when the page ("article") entity is seeded.
// Resource entities and references relations always point at the page
// entity, so they are only emitted while one exists.
type PageEntityPolicy int

const (
	// PageEntityIfTitled seeds the page entity only when the page has a
	// title. Titleless pages get no entities and no relations.
	PageEntityIfTitled PageEntityPolicy = iota

	// PageEntityAlways seeds the page entity unconditionally, naming it by
	// the source URL when the page has no title.
	PageEntityAlways
)

// ParsePageEntityPolicy parses "if-titled" or "always".
func ParsePageEntityPolicy(s string) (PageEntityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "if-titled":
		return PageEntityIfTitled, nil
	case "always":
		return PageEntityAlways, nil
	}
	return PageEntityIfTitled, Errorf(EINVALID, "unknown page entity policy %q", s)
}

// Semantics is the entity/relation graph, action list and confidence
// inferred from a NormalizedPage.
type Semantics struct {
	Entities   []Entity
	Relations  []Relation
	Actions    []Action
	Confidence float64
}

// ExtractSemantics infers actions, entities and relations from a page.
// The first MaxNavigateActions page links become navigate actions, and the
// first MaxFormActions forms become search or submit_form actions. Action
// and entity ids are sequential and unique within the result.
func ExtractSemantics(page *NormalizedPage, sourceURL string, policy PageEntityPolicy) *Semantics {
	s := &Semantics{
		Entities:  []Entity{},
		Relations: []Relation{},
		Actions:   []Action{},
	}

	if page.Title != "" || policy == PageEntityAlways {
		name := page.Title
		if name == "" {
			name = sourceURL
		}
		s.Entities = append(s.Entities, Entity{
			ID:         makeID("e", 1),
			Type:       EntityArticle,
			Name:       name,
			Attributes: map[string]string{"url": sourceURL},
		})
	}

	links := page.Links
	if len(links) > MaxNavigateActions {
		links = links[:MaxNavigateActions]
	}
	for _, l := range links {
		s.Actions = append(s.Actions, Action{
			ID:       makeID("a", len(s.Actions)+1),
			Type:     ActionNavigate,
			Method:   MethodGet,
			Endpoint: l.Href,
			Fields:   []ActionField{},
		})

		if len(s.Entities) == 0 {
			continue
		}
		id := makeID("e", len(s.Entities)+1)
		name := l.Href
		if l.Text != nil && *l.Text != "" {
			name = *l.Text
		}
		s.Entities = append(s.Entities, Entity{
			ID:         id,
			Type:       EntityResource,
			Name:       name,
			Attributes: map[string]string{"url": l.Href},
		})
		s.Relations = append(s.Relations, Relation{
			From: s.Entities[0].ID,
			To:   id,
			Type: RelationReferences,
		})
	}

	forms := page.Forms
	if len(forms) > MaxFormActions {
		forms = forms[:MaxFormActions]
	}
	for _, f := range forms {
		typ := ActionSubmitForm
		if isSearchForm(f) {
			typ = ActionSearch
		}

		fields := f.Fields
		if len(fields) > MaxActionFields {
			fields = fields[:MaxActionFields]
		}
		actionFields := make([]ActionField, 0, len(fields))
		for _, fld := range fields {
			actionFields = append(actionFields, ActionField{
				Name:     fld.Name,
				Type:     MapFieldType(fld.Type),
				Required: fld.Required,
			})
		}

		method := f.Method
		if method == "" {
			method = MethodGet
		}
		s.Actions = append(s.Actions, Action{
			ID:       makeID("a", len(s.Actions)+1),
			Type:     typ,
			Method:   method,
			Endpoint: f.Action,
			Fields:   actionFields,
		})
	}

	s.Confidence = Confidence(page.Title != "", len(s.Actions), utf8.RuneCountInString(page.Content))
	return s
}

// Confidence scores extraction quality: 0.5 with a title (0.35 without),
// plus 0.2 when any action exists, plus 0.15 when the content is longer
// than 200 characters, clamped to [MinConfidence, MaxConfidence].
func Confidence(hasTitle bool, actionCount int, contentLength int) float64 {
	c := 0.35
	if hasTitle {
		c = 0.5
	}
	if actionCount > 0 {
		c += 0.2
	}
	if contentLength > 200 {
		c += 0.15
	}
	return min(MaxConfidence, max(MinConfidence, c))
}

// MapFieldType maps a raw input type or tag name onto a FieldType.
func MapFieldType(raw string) FieldType {
	switch strings.ToLower(raw) {
	case "number":
		return FieldNumber
	case "checkbox", "radio":
		return FieldBoolean
	case "select":
		return FieldSelect
	case "hidden":
		return FieldHidden
	}
	return FieldText
}

// ParseMethod normalizes a form method. Anything outside
// GET/POST/PUT/DELETE, including the empty string, becomes GET.
func ParseMethod(raw string) Method {
	switch m := Method(strings.ToUpper(strings.TrimSpace(raw))); m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m
	}
	return MethodGet
}

// searchFieldPatterns are matched case-insensitively as substrings of
// field names. "q" alone matches names such as "qty" too.
var searchFieldPatterns = []string{"search", "q", "query"}

// isSearchForm reports whether a form looks like a search box: its action
// mentions "search", or a field name contains one of searchFieldPatterns.
func isSearchForm(f Form) bool {
	if strings.Contains(strings.ToLower(f.Action), "search") {
		return true
	}
	for _, fld := range f.Fields {
		name := strings.ToLower(fld.Name)
		for _, pattern := range searchFieldPatterns {
			if strings.Contains(name, pattern) {
				return true
			}
		}
	}
	return false
}

func makeID(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}
