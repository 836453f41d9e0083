package planner

import (
	"bookbind/internal/article"
	"bookbind/internal/catalog"
)

// EnhancePlan describes what an enhancement run would do without touching
// the file.
type EnhancePlan struct {
	Matched          []SectionImpact
	Passthrough      []string
	UnusedCatalogIDs []string
}

// SectionImpact lists the field groups the catalog entry will set on a
// section.
type SectionImpact struct {
	SectionID string
	Fields    []string
}

// BuildEnhancePlan partitions the document's sections into matched and
// passthrough, and reports catalog entries that match no section. Matched
// and Passthrough follow document order; UnusedCatalogIDs is sorted.
func BuildEnhancePlan(doc *article.Document, cat *catalog.Catalog) *EnhancePlan {
	plan := &EnhancePlan{}
	if doc == nil || cat == nil {
		return plan
	}

	matchedIDs := make(map[string]bool)
	for _, sec := range doc.Sections {
		meta, ok := cat.Lookup(sec.ID)
		if !ok {
			plan.Passthrough = append(plan.Passthrough, sec.ID)
			continue
		}
		matchedIDs[sec.ID] = true
		plan.Matched = append(plan.Matched, SectionImpact{
			SectionID: sec.ID,
			Fields:    impactFields(meta),
		})
	}

	// cat.IDs is sorted, so UnusedCatalogIDs comes out sorted too.
	for _, id := range cat.IDs() {
		if !matchedIDs[id] {
			plan.UnusedCatalogIDs = append(plan.UnusedCatalogIDs, id)
		}
	}
	return plan
}

func impactFields(meta catalog.SectionMeta) []string {
	fields := []string{"reading-time", "tags"}
	if meta.ChapterNumber > 0 {
		fields = append(fields, "chapter")
	}
	if meta.PartNumber > 0 {
		fields = append(fields, "part")
	}
	if meta.Type != "" {
		fields = append(fields, "type-override")
	}
	if len(meta.KeyTakeaways) > 0 {
		fields = append(fields, "key-takeaways")
	}
	if len(meta.References) > 0 {
		fields = append(fields, "references")
	}
	if len(meta.Exercises) > 0 {
		fields = append(fields, "exercises")
	}
	return fields
}
