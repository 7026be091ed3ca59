// Package webml converts a single web page into a WebML document: a
// normalized, machine-consumable summary of the page's title, text, links
// and interactive affordances, intended for downstream agents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, readability/).
package webml

// Version is the WebML schema version stamped on every document.
const Version = "0.2"

// Kind is the document kind stamped on every document.
const Kind = "webml"
