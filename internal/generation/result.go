// Package generation produces roadmap text through an OpenAI-compatible
// generation API, with a single fallback attempt against the entry-tier model.
package generation

// Source tags the provenance of a generation result.
type Source string

const (
	// SourcePrimary means the requested model produced the text.
	SourcePrimary Source = "primary"
	// SourceFallback means the fallback model produced the text after the
	// requested model failed or returned nothing.
	SourceFallback Source = "fallback"
	// SourceFailed means both attempts failed; Text and ModelUsed are empty.
	SourceFailed Source = "failed"
)

// Result is the outcome of a generation request. It is always returned,
// never an error: a terminal failure is encoded as SourceFailed with an
// empty Text.
type Result struct {
	Text      string
	ModelUsed string
	Source    Source
}

// Failed reports whether both generation attempts failed.
func (r Result) Failed() bool {
	return r.Source == SourceFailed || r.Text == ""
}
