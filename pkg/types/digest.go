// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DigestStatus indicates whether a digest could be generated for a paper.
type DigestStatus string

const (
	DigestOK     DigestStatus = "ok"
	DigestFailed DigestStatus = "failed"
)

// DigestResult is the outcome of the digest stage for one paper. Downstream
// stages branch on Status rather than inspecting the text, so an extraction
// failure is a typed condition, not a magic string.
type DigestResult struct {
	// Status is DigestOK when Markdown holds a generated digest.
	Status DigestStatus `json:"status" yaml:"status"`

	// Markdown is the generated digest. Empty when Status is DigestFailed.
	Markdown string `json:"markdown,omitempty" yaml:"markdown,omitempty"`

	// Reason explains a failure (e.g. "no text could be extracted").
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// OK reports whether a digest was generated.
func (r DigestResult) OK() bool { return r.Status == DigestOK }
