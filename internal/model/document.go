package model

import "encoding/json"

// Document is an opaque JSON value passed through to the caller untouched
type Document = json.RawMessage

// EmptyDocument returns the empty JSON object served when nothing else is available
func EmptyDocument() Document {
	return Document(`{}`)
}

// Source records where a served document came from
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceFixture  Source = "fixture"
	SourceEmpty    Source = "empty"
)
