package webml

import (
	"context"
	"time"
)

// Method is an HTTP method allowed on actions and forms.
type Method string

// Allowed methods.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ActionType classifies an inferred affordance.
type ActionType string

// Action types.
const (
	ActionNavigate   ActionType = "navigate"
	ActionOpen       ActionType = "open"
	ActionSubmit     ActionType = "submit"
	ActionSubmitForm ActionType = "submit_form"
	ActionSearch     ActionType = "search"
)

// FieldType is the normalized type of an action field.
type FieldType string

// Field types.
const (
	FieldText    FieldType = "text"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldSelect  FieldType = "select"
	FieldHidden  FieldType = "hidden"
)

// Entity is a node of the lightweight semantic graph.
type Entity struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
}

// Relation is a typed edge between two entities of the same document.
type Relation struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// ActionField is a typed input of an action.
type ActionField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

// Action is an executable description of an affordance.
type Action struct {
	ID       string        `json:"id"`
	Type     ActionType    `json:"type"`
	Method   Method        `json:"method"`
	Endpoint string        `json:"endpoint"`
	Fields   []ActionField `json:"fields"`
}

// Source describes where and how a document was retrieved.
type Source struct {
	URL             string          `json:"url"`
	RetrievedAt     time.Time       `json:"retrieved_at"`
	ContentType     ContentKind     `json:"content_type"`
	RetrievalMethod RetrievalMethod `json:"retrieval_method"`
	Status          int             `json:"status"`
	ContentHash     string          `json:"content_hash"`
}

// Metadata holds document-level facts and the confidence estimate.
// Absent values serialize as null.
type Metadata struct {
	Title         *string `json:"title"`
	Language      *string `json:"language"`
	Confidence    float64 `json:"confidence"`
	Byline        *string `json:"byline"`
	Excerpt       *string `json:"excerpt"`
	SiteName      *string `json:"site_name"`
	PublishedTime *string `json:"published_time"`
}

// Document is the WebML output root. It is created fresh per request and
// never mutated after assembly.
type Document struct {
	Kind         string      `json:"kind"`
	Version      string      `json:"version"`
	Source       Source      `json:"source"`
	Title        *string     `json:"title"`
	Text         *string     `json:"text"`
	Content      string      `json:"content"`
	Markdown     *string     `json:"markdown"`
	TextBlocks   []TextBlock `json:"text_blocks"`
	Links        []Link      `json:"links"`
	ContentLinks []Link      `json:"content_links"`
	Entities     []Entity    `json:"entities"`
	Relations    []Relation  `json:"relations"`
	Actions      []Action    `json:"actions"`
	Metadata     Metadata    `json:"metadata"`
}

// Generator produces WebML documents from URLs.
type Generator interface {
	// Generate retrieves the URL and assembles its document.
	// Invalid input returns EINVALID before any network call;
	// retrieval failures return EFETCH.
	Generate(ctx context.Context, url string, method RetrievalMethod) (*Document, error)
}
