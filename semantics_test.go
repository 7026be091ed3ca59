package webml_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/webml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExtractSemantics_NavigateActions(t *testing.T) {
	t.Parallel()

	t.Run("emits one navigate action per link", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{
			Title: "Hello",
			Links: []webml.Link{{Href: "https://ex.com/x", Text: strPtr("Go")}},
		}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 1)
		assert.Equal(t, "a1", s.Actions[0].ID)
		assert.Equal(t, webml.ActionNavigate, s.Actions[0].Type)
		assert.Equal(t, webml.MethodGet, s.Actions[0].Method)
		assert.Equal(t, "https://ex.com/x", s.Actions[0].Endpoint)
		assert.NotNil(t, s.Actions[0].Fields)
		assert.Empty(t, s.Actions[0].Fields)
	})

	t.Run("caps navigate actions at ten", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{Links: makeLinks(25)}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		assert.Len(t, s.Actions, webml.MaxNavigateActions)
		assert.Equal(t, "a10", s.Actions[9].ID)
	})
}

func TestExtractSemantics_Entities(t *testing.T) {
	t.Parallel()

	t.Run("seeds article entity and references for titled page", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{
			Title: "Hello",
			Links: []webml.Link{
				{Href: "https://ex.com/a", Text: strPtr("A")},
				{Href: "https://ex.com/b"},
			},
		}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Entities, 3)
		assert.Equal(t, webml.Entity{
			ID: "e1", Type: webml.EntityArticle, Name: "Hello",
			Attributes: map[string]string{"url": "https://ex.com/"},
		}, s.Entities[0])
		assert.Equal(t, "e2", s.Entities[1].ID)
		assert.Equal(t, webml.EntityResource, s.Entities[1].Type)
		assert.Equal(t, "A", s.Entities[1].Name)
		assert.Equal(t, "https://ex.com/b", s.Entities[2].Name, "falls back to href when text is absent")

		assert.Equal(t, []webml.Relation{
			{From: "e1", To: "e2", Type: webml.RelationReferences},
			{From: "e1", To: "e3", Type: webml.RelationReferences},
		}, s.Relations)
	})

	t.Run("titleless page gets no entities under if-titled policy", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{Links: makeLinks(3)}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		assert.Empty(t, s.Entities)
		assert.Empty(t, s.Relations)
		assert.Len(t, s.Actions, 3)
	})

	t.Run("always policy seeds page entity named by url", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{Links: makeLinks(2)}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityAlways)

		require.Len(t, s.Entities, 3)
		assert.Equal(t, "https://ex.com/", s.Entities[0].Name)
		for _, r := range s.Relations {
			assert.Equal(t, "e1", r.From)
		}
	})

	t.Run("relations only reference existing entities", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{Title: "T", Links: makeLinks(30)}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		ids := map[string]bool{}
		for _, e := range s.Entities {
			assert.False(t, ids[e.ID], "duplicate entity id %s", e.ID)
			ids[e.ID] = true
		}
		for _, r := range s.Relations {
			assert.True(t, ids[r.From])
			assert.True(t, ids[r.To])
		}
	})
}

func TestExtractSemantics_FormActions(t *testing.T) {
	t.Parallel()

	t.Run("classifies search form by field name", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{
			Forms: []webml.Form{{
				Action: "https://ex.com/find",
				Method: webml.MethodPost,
				Fields: []webml.FormField{{Name: "q", Type: "text"}},
			}},
		}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 1)
		assert.Equal(t, webml.ActionSearch, s.Actions[0].Type)
		assert.Equal(t, webml.MethodPost, s.Actions[0].Method)
		assert.Equal(t, []webml.ActionField{{Name: "q", Type: webml.FieldText, Required: false}}, s.Actions[0].Fields)
	})

	t.Run("classifies search form by action url", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{
			Forms: []webml.Form{{Action: "https://ex.com/Search", Method: webml.MethodGet}},
		}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 1)
		assert.Equal(t, webml.ActionSearch, s.Actions[0].Type)
	})

	t.Run("classifies other forms as submit_form", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{
			Forms: []webml.Form{{
				Action: "https://ex.com/signup",
				Method: webml.MethodPost,
				Fields: []webml.FormField{
					{Name: "email", Type: "email", Required: true},
					{Name: "amount", Type: "number"},
					{Name: "agree", Type: "checkbox"},
					{Name: "plan", Type: "select"},
					{Name: "token", Type: "hidden"},
				},
			}},
		}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 1)
		assert.Equal(t, webml.ActionSubmitForm, s.Actions[0].Type)
		assert.Equal(t, []webml.ActionField{
			{Name: "email", Type: webml.FieldText, Required: true},
			{Name: "amount", Type: webml.FieldNumber},
			{Name: "agree", Type: webml.FieldBoolean},
			{Name: "plan", Type: webml.FieldSelect},
			{Name: "token", Type: webml.FieldHidden},
		}, s.Actions[0].Fields)
	})

	t.Run("matches search field patterns as substrings", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"qty", "request", "sq", "SearchTerm", "user_query"} {
			page := &webml.NormalizedPage{
				Forms: []webml.Form{{
					Action: "https://ex.com/cart",
					Method: webml.MethodPost,
					Fields: []webml.FormField{{Name: name, Type: "text"}},
				}},
			}

			s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

			require.Len(t, s.Actions, 1, name)
			assert.Equal(t, webml.ActionSearch, s.Actions[0].Type, name)
		}
	})

	t.Run("defaults empty method to GET", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{Forms: []webml.Form{{Action: "https://ex.com/x"}}}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 1)
		assert.Equal(t, webml.MethodGet, s.Actions[0].Method)
	})

	t.Run("caps forms at five and fields at fifteen", func(t *testing.T) {
		t.Parallel()

		var fields []webml.FormField
		for i := 0; i < 20; i++ {
			fields = append(fields, webml.FormField{Name: fmt.Sprintf("f%d", i), Type: "text"})
		}
		var forms []webml.Form
		for i := 0; i < 8; i++ {
			forms = append(forms, webml.Form{Action: "https://ex.com/post", Method: webml.MethodPost, Fields: fields})
		}
		page := &webml.NormalizedPage{Links: makeLinks(12), Forms: forms}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 15)
		for _, a := range s.Actions[10:] {
			assert.Len(t, a.Fields, webml.MaxActionFields)
		}
	})

	t.Run("numbers actions sequentially across passes", func(t *testing.T) {
		t.Parallel()

		page := &webml.NormalizedPage{
			Links: makeLinks(2),
			Forms: []webml.Form{{Action: "https://ex.com/post"}},
		}

		s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

		require.Len(t, s.Actions, 3)
		assert.Equal(t, "a1", s.Actions[0].ID)
		assert.Equal(t, "a2", s.Actions[1].ID)
		assert.Equal(t, "a3", s.Actions[2].ID)
	})
}

func TestConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hasTitle bool
		actions  int
		length   int
		want     float64
	}{
		{"nothing", false, 0, 0, 0.35},
		{"title only", true, 0, 0, 0.5},
		{"actions only", false, 3, 0, 0.55},
		{"long content only", false, 0, 201, 0.5},
		{"content at threshold does not count", false, 0, 200, 0.35},
		{"everything", true, 1, 1000, 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := webml.Confidence(tt.hasTitle, tt.actions, tt.length)

			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, webml.MinConfidence)
			assert.LessOrEqual(t, got, webml.MaxConfidence)
		})
	}
}

func TestExtractSemantics_ConfidenceCountsCharacters(t *testing.T) {
	t.Parallel()

	// 150 two-byte runes: 300 bytes but only 150 characters.
	page := &webml.NormalizedPage{Content: strings.Repeat("é", 150)}

	s := webml.ExtractSemantics(page, "https://ex.com/", webml.PageEntityIfTitled)

	assert.InDelta(t, 0.35, s.Confidence, 1e-9)
}

func TestMapFieldType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webml.FieldNumber, webml.MapFieldType("NUMBER"))
	assert.Equal(t, webml.FieldBoolean, webml.MapFieldType("radio"))
	assert.Equal(t, webml.FieldSelect, webml.MapFieldType("select"))
	assert.Equal(t, webml.FieldHidden, webml.MapFieldType("hidden"))
	assert.Equal(t, webml.FieldText, webml.MapFieldType("textarea"))
	assert.Equal(t, webml.FieldText, webml.MapFieldType("password"))
	assert.Equal(t, webml.FieldText, webml.MapFieldType(""))
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, webml.MethodPost, webml.ParseMethod("post"))
	assert.Equal(t, webml.MethodPut, webml.ParseMethod(" Put "))
	assert.Equal(t, webml.MethodDelete, webml.ParseMethod("DELETE"))
	assert.Equal(t, webml.MethodGet, webml.ParseMethod(""))
	assert.Equal(t, webml.MethodGet, webml.ParseMethod("dialog"))
}

func TestParsePageEntityPolicy(t *testing.T) {
	t.Parallel()

	p, err := webml.ParsePageEntityPolicy("always")
	require.NoError(t, err)
	assert.Equal(t, webml.PageEntityAlways, p)

	p, err = webml.ParsePageEntityPolicy("")
	require.NoError(t, err)
	assert.Equal(t, webml.PageEntityIfTitled, p)

	_, err = webml.ParsePageEntityPolicy("sometimes")
	require.Error(t, err)
	assert.Equal(t, webml.EINVALID, webml.ErrorCode(err))
}

func makeLinks(n int) []webml.Link {
	links := make([]webml.Link, 0, n)
	for i := 0; i < n; i++ {
		links = append(links, webml.Link{
			Href: fmt.Sprintf("https://ex.com/p%d", i),
			Text: strPtr(fmt.Sprintf("Page %d", i)),
		})
	}
	return links
}
