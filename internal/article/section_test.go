package article

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSection_RoundTripsUnknownFields(t *testing.T) {
	in := []byte(`{"id":"chapter-1","heading":"The Persistence Principle","blocks":[{"kind":"paragraph","text":"hello"}],"metadata":{"author":"someone"}}`)

	var sec Section
	require.NoError(t, json.Unmarshal(in, &sec))

	assert.Equal(t, "chapter-1", sec.ID)
	assert.Contains(t, sec.Extra, "heading")
	assert.Contains(t, sec.Extra, "blocks")
	require.NotNil(t, sec.Metadata)
	assert.Contains(t, sec.Metadata.Extra, "author")

	out, err := json.Marshal(sec)
	require.NoError(t, err)

	var got, want map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal(in, &want))
	assert.Equal(t, want, got)
}

func TestSection_OmitsUnsetEnrichmentFields(t *testing.T) {
	sec := Section{ID: "intro"}

	out, err := json.Marshal(sec)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, map[string]any{"id": "intro"}, got)
}

func TestSection_EmitsSetEnrichmentFields(t *testing.T) {
	sec := Section{
		ID:            "chapter-3",
		Type:          "chapter",
		ChapterNumber: 3,
		PartNumber:    2,
		Metadata: &SectionMetadata{
			EstimatedReadingTime: 35,
			Tags:                 []string{"theory", "axioms"},
		},
		KeyTakeaways: []string{"stable things last longer"},
		References:   []Reference{{ID: "r1", Number: 1, Text: "Some reference."}},
		Exercises:    []Exercise{{ID: "e1", Type: "worksheet", Title: "Worksheet"}},
	}

	out, err := json.Marshal(sec)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "chapter", got["type"])
	assert.Equal(t, float64(3), got["chapterNumber"])
	assert.Equal(t, float64(2), got["partNumber"])
	meta, ok := got["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(35), meta["estimatedReadingTime"])
	assert.Equal(t, []any{"theory", "axioms"}, meta["tags"])
	assert.Len(t, got["keyTakeaways"], 1)
	assert.Len(t, got["references"], 1)
	assert.Len(t, got["exercises"], 1)
}

func TestSection_DoesNotEscapeHTMLInContent(t *testing.T) {
	sec := Section{ID: "notes", KeyTakeaways: []string{"x < y && y > z"}}

	// The save path never HTML-escapes; plain json.Marshal would.
	out, err := marshalNoEscape(sec)
	require.NoError(t, err)
	assert.Contains(t, string(out), "x < y && y > z")
}

func TestSection_CloneIsIndependent(t *testing.T) {
	orig := Section{
		ID:       "chapter-1",
		Metadata: &SectionMetadata{Tags: []string{"a"}},
		Extra:    map[string]json.RawMessage{"heading": json.RawMessage(`"H"`)},
	}

	clone := orig.Clone()
	clone.Metadata.Tags = append(clone.Metadata.Tags, "b")
	clone.Metadata.EstimatedReadingTime = 5
	clone.Extra["new"] = json.RawMessage(`1`)

	assert.Equal(t, []string{"a"}, orig.Metadata.Tags)
	assert.Zero(t, orig.Metadata.EstimatedReadingTime)
	assert.NotContains(t, orig.Extra, "new")
}
