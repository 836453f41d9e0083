package enhancer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookbind/internal/article"
	"bookbind/internal/catalog"
)

var testTime = time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC)

func docWithSections(ids ...string) *article.Document {
	doc := &article.Document{Title: "The Persistence Principle"}
	for _, id := range ids {
		doc.Sections = append(doc.Sections, article.Section{
			ID:    id,
			Extra: map[string]json.RawMessage{"body": json.RawMessage(`"text"`)},
		})
	}
	return doc
}

func TestEnhance_AppliesCatalogEntryExactly(t *testing.T) {
	cat := catalog.Builtin()
	doc := docWithSections("chapter-5")

	enhanced, res := Enhance(doc, cat, testTime)

	assert.Equal(t, 1, res.EnrichedCount)
	require.Len(t, enhanced.Sections, 1)
	sec := enhanced.Sections[0]

	assert.Equal(t, "chapter", sec.Type)
	assert.Equal(t, 5, sec.ChapterNumber)
	assert.Equal(t, 3, sec.PartNumber)
	require.NotNil(t, sec.Metadata)
	assert.Equal(t, 35, sec.Metadata.EstimatedReadingTime)
	assert.Equal(t, []string{"AI", "deep learning", "neural networks", "machine learning"}, sec.Metadata.Tags)
	assert.Len(t, sec.KeyTakeaways, 3)
	require.Len(t, sec.References, 2)
	assert.Equal(t, "garipov-2018", sec.References[0].ID)
	assert.Equal(t, "li-2018", sec.References[1].ID)

	// Untouched content fields survive.
	assert.Contains(t, sec.Extra, "body")
}

func TestEnhance_ExplicitTypeOverrideWins(t *testing.T) {
	// A chapter number alone implies type "chapter"; an explicit type wins
	// even when both are set.
	cat := &catalog.Catalog{
		Profile: catalog.Builtin().Profile,
		Sections: map[string]catalog.SectionMeta{
			"special": {
				ChapterNumber:        4,
				EstimatedReadingTime: 10,
				Tags:                 []string{"x"},
				Type:                 "interlude",
			},
			"plain-chapter": {
				ChapterNumber:        5,
				EstimatedReadingTime: 10,
				Tags:                 []string{"y"},
			},
		},
	}
	doc := docWithSections("special", "plain-chapter")

	enhanced, _ := Enhance(doc, cat, testTime)

	assert.Equal(t, "interlude", enhanced.Sections[0].Type)
	assert.Equal(t, 4, enhanced.Sections[0].ChapterNumber)
	assert.Equal(t, "chapter", enhanced.Sections[1].Type)
}

func TestEnhance_UnknownIDPassesThroughUnchanged(t *testing.T) {
	cat := catalog.Builtin()
	in := []byte(`{"id":"afterword","heading":"After","metadata":{"note":"keep me"},"blocks":[1,2,3]}`)

	var sec article.Section
	require.NoError(t, json.Unmarshal(in, &sec))
	doc := &article.Document{Title: "T", Sections: []article.Section{sec}}

	enhanced, res := Enhance(doc, cat, testTime)

	assert.Equal(t, 0, res.EnrichedCount)
	assert.Equal(t, 1, res.PassthroughCount)

	out, err := json.Marshal(enhanced.Sections[0])
	require.NoError(t, err)
	var got, want map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.NoError(t, json.Unmarshal(in, &want))
	assert.Equal(t, want, got)
}

func TestEnhance_EnvelopeShape(t *testing.T) {
	cat := catalog.Builtin()
	doc := docWithSections("visual-abstract", "afterword", "chapter-1", "bibliography")

	enhanced, res := Enhance(doc, cat, testTime)

	assert.Equal(t, "The Persistence Principle", enhanced.Title)
	assert.Equal(t, "1.0", enhanced.Version)
	assert.Equal(t, "2025-11-18T00:00:00Z", enhanced.Metadata.Created)
	assert.Equal(t, enhanced.Metadata.Created, enhanced.Metadata.LastModified)
	assert.Equal(t, "light", enhanced.Settings.Theme)

	// Same length, same order.
	require.Len(t, enhanced.Sections, 4)
	for i, id := range []string{"visual-abstract", "afterword", "chapter-1", "bibliography"} {
		assert.Equal(t, id, enhanced.Sections[i].ID)
	}
	assert.Equal(t, 4, res.SectionCount)
	assert.Equal(t, 3, res.EnrichedCount)
	assert.Equal(t, []string{"visual-abstract", "chapter-1", "bibliography"}, res.EnrichedIDs)
}

func TestEnhance_PreservesExistingMetadataKeys(t *testing.T) {
	cat := catalog.Builtin()
	raw := []byte(`{"id":"glossary","metadata":{"curator":"someone","estimatedReadingTime":99,"tags":["stale"]}}`)

	var sec article.Section
	require.NoError(t, json.Unmarshal(raw, &sec))
	doc := &article.Document{Title: "T", Sections: []article.Section{sec}}

	enhanced, _ := Enhance(doc, cat, testTime)
	meta := enhanced.Sections[0].Metadata
	require.NotNil(t, meta)

	// Enrichment overwrites reading time and tags, keeps everything else.
	assert.Equal(t, 15, meta.EstimatedReadingTime)
	assert.Equal(t, []string{"reference", "definitions", "terminology"}, meta.Tags)
	assert.Contains(t, meta.Extra, "curator")
}

func TestEnhance_DoesNotMutateInput(t *testing.T) {
	cat := catalog.Builtin()
	doc := docWithSections("chapter-1")

	before, err := json.Marshal(doc.Sections[0])
	require.NoError(t, err)

	_, _ = Enhance(doc, cat, testTime)

	after, err := json.Marshal(doc.Sections[0])
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestEnhance_ReapplicationOverwritesInsteadOfAppending(t *testing.T) {
	cat := catalog.Builtin()
	doc := docWithSections("chapter-1")

	first, _ := Enhance(doc, cat, testTime)
	second, _ := Enhance(&article.Document{Title: first.Title, Sections: first.Sections}, cat, testTime)

	sec := second.Sections[0]
	assert.Len(t, sec.KeyTakeaways, 4)
	assert.Len(t, sec.Metadata.Tags, 4)
	assert.Equal(t, 25, sec.Metadata.EstimatedReadingTime)
}
