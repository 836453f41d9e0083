package enhancer

import (
	"time"

	"bookbind/internal/article"
	"bookbind/internal/catalog"
)

// Result summarizes one enhancement run.
type Result struct {
	SectionCount     int
	EnrichedCount    int
	PassthroughCount int
	EnrichedIDs      []string
}

// Enhance wraps the article in the document envelope and merges catalog
// metadata into every section whose id has a table entry. Sections come out
// in input order, one output section per input section. The input document
// is not mutated.
func Enhance(doc *article.Document, cat *catalog.Catalog, now time.Time) (*article.EnhancedDocument, *Result) {
	stamp := now.UTC().Format(time.RFC3339)
	out := &article.EnhancedDocument{
		Title:   doc.Title,
		Version: cat.Profile.Version,
		Metadata: article.DocumentMeta{
			Authors:      append([]article.Author(nil), cat.Profile.Authors...),
			Created:      stamp,
			LastModified: stamp,
			Keywords:     append([]string(nil), cat.Profile.Keywords...),
			Description:  cat.Profile.Description,
			Language:     cat.Profile.Language,
			Subject:      append([]string(nil), cat.Profile.Subject...),
		},
		Settings: cat.Profile.Settings,
		Sections: make([]article.Section, 0, len(doc.Sections)),
	}

	res := &Result{SectionCount: len(doc.Sections)}
	for _, sec := range doc.Sections {
		meta, ok := cat.Lookup(sec.ID)
		if !ok {
			out.Sections = append(out.Sections, sec.Clone())
			res.PassthroughCount++
			continue
		}
		out.Sections = append(out.Sections, applyMeta(sec, meta))
		res.EnrichedCount++
		res.EnrichedIDs = append(res.EnrichedIDs, sec.ID)
	}
	return out, res
}

// applyMeta merges one table entry into a copy of the section. A chapter
// number implies type "chapter"; an explicit type override is applied after
// and wins. Reading time and tags always land in the nested metadata, which
// is created when the section has none. Fields are overwritten, never
// appended.
func applyMeta(sec article.Section, meta catalog.SectionMeta) article.Section {
	out := sec.Clone()

	if meta.ChapterNumber > 0 {
		out.Type = "chapter"
		out.ChapterNumber = meta.ChapterNumber
	}
	if meta.PartNumber > 0 {
		out.PartNumber = meta.PartNumber
	}
	if meta.Type != "" {
		out.Type = meta.Type
	}

	if out.Metadata == nil {
		out.Metadata = &article.SectionMetadata{}
	}
	out.Metadata.EstimatedReadingTime = meta.EstimatedReadingTime
	out.Metadata.Tags = append([]string(nil), meta.Tags...)

	if len(meta.KeyTakeaways) > 0 {
		out.KeyTakeaways = append([]string(nil), meta.KeyTakeaways...)
	}
	if len(meta.References) > 0 {
		out.References = append([]article.Reference(nil), meta.References...)
	}
	if len(meta.Exercises) > 0 {
		out.Exercises = append([]article.Exercise(nil), meta.Exercises...)
	}
	return out
}
