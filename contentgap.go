// Package contentgap provides a content-gap analysis engine for SEO
// research. Given a target keyword and a draft piece of content, it
// compares the draft's vocabulary against the vocabulary of the
// top-ranking competitor pages for that keyword and reports which
// important terms are present or missing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, prose/, gonum/).
package contentgap
