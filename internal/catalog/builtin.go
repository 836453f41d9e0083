package catalog

import "bookbind/internal/article"

// Builtin returns the static metadata table and document profile for the
// persistence-principle article. External catalogs start from this and
// override it.
func Builtin() *Catalog {
	return &Catalog{
		Sections: builtinSections(),
		Profile: DocumentProfile{
			Version: "1.0",
			Authors: []article.Author{
				{Name: "Manus AI", Role: "Author"},
			},
			Keywords: []string{
				"persistence", "complexity science", "interference",
				"evolution", "artificial intelligence", "cosmology",
				"philosophy of science", "differential stability",
				"attractor dynamics", "emergent systems",
			},
			Description: "A fundamental reframing of how we understand order in the universe, proposing that stable configurations persist rather than being actively constructed through emergence.",
			Language:    "en",
			Subject:     []string{"Physics", "Biology", "Computer Science", "Philosophy"},
			Settings: article.Settings{
				Theme:             "light",
				FontSize:          "medium",
				ShowDifficulty:    true,
				ShowEstimatedTime: true,
				EnableNavigation:  true,
				EnableSearch:      true,
			},
		},
	}
}

func builtinSections() map[string]SectionMeta {
	return map[string]SectionMeta{
		"visual-abstract": {
			EstimatedReadingTime: 5,
			Tags:                 []string{"overview", "introduction", "conceptual"},
			Type:                 "visual-abstract",
		},
		"executive-summaries": {
			EstimatedReadingTime: 10,
			Tags:                 []string{"summary", "overview", "accessible"},
		},
		"reading-guide": {
			EstimatedReadingTime: 5,
			Tags:                 []string{"navigation", "guide", "overview"},
		},
		"glossary": {
			EstimatedReadingTime: 15,
			Tags:                 []string{"reference", "definitions", "terminology"},
			Type:                 "glossary",
		},
		"chapter-1": {
			ChapterNumber:        1,
			PartNumber:           1,
			EstimatedReadingTime: 25,
			Tags:                 []string{"foundations", "philosophy", "examples", "introduction"},
			KeyTakeaways: []string{
				"Persistence asks 'what prevents things from continuing' rather than 'why does order emerge'",
				"Stable configurations naturally outlast unstable ones",
				"The universe edits instability rather than constructs complexity",
				"The persistence principle appears in everyday phenomena",
			},
		},
		"chapter-2": {
			ChapterNumber:        2,
			PartNumber:           1,
			EstimatedReadingTime: 30,
			Tags:                 []string{"physics", "quantum mechanics", "metaphor", "critical analysis"},
			KeyTakeaways: []string{
				"Real interference requires Hilbert space, superposition, and phase coherence",
				"Most metaphorical uses of 'interference' lack mathematical rigor",
				"Brain waves are legitimate waves; market 'interference' is just competition",
			},
			References: []article.Reference{
				{
					ID:     "feynman-2006",
					Number: 1,
					Text:   "Feynman, R. P. (2006). QED: The Strange Theory of Light and Matter. Princeton University Press.",
				},
			},
		},
		"chapter-3": {
			ChapterNumber:        3,
			PartNumber:           2,
			EstimatedReadingTime: 35,
			Tags:                 []string{"theory", "axioms", "principles", "analogies"},
			KeyTakeaways: []string{
				"Conservation laws ensure substrate persistence",
				"Differential persistence: stable things last longer",
				"Persistence is a passive property, not an active force",
			},
		},
		"chapter-4": {
			ChapterNumber:        4,
			PartNumber:           2,
			EstimatedReadingTime: 30,
			Tags:                 []string{"worldview", "philosophy", "comparison", "paradigm shift"},
			KeyTakeaways: []string{
				"Construction view asks 'why does order emerge?'",
				"Persistence view asks 'what prevents continuation?'",
				"Similar to Copernican and Darwinian revolutions",
			},
		},
		"chapter-5": {
			ChapterNumber:        5,
			PartNumber:           3,
			EstimatedReadingTime: 35,
			Tags:                 []string{"AI", "deep learning", "neural networks", "machine learning"},
			KeyTakeaways: []string{
				"Loss landscapes have large connected basins (mode connectivity)",
				"Training doesn't construct solutions, it finds persistent states",
				"AI safety is about attractor engineering",
			},
			References: []article.Reference{
				{
					ID:     "garipov-2018",
					Number: 1,
					Text:   "Garipov, T., et al. (2018). Loss surfaces, mode connectivity, and fast ensembling of DNNs.",
				},
				{
					ID:     "li-2018",
					Number: 2,
					Text:   "Li, H., et al. (2018). Visualizing the Loss Landscape of Neural Nets.",
				},
			},
		},
		"chapter-6": {
			ChapterNumber:        6,
			PartNumber:           3,
			EstimatedReadingTime: 25,
			Tags:                 []string{"evolution", "biology", "LTEE", "natural selection"},
			KeyTakeaways: []string{
				"Evolution is persistence in action: stable forms survive",
				"LTEE shows power-law fitness improvements",
				"Life origin: What stops self-sustaining reactions from continuing?",
			},
			References: []article.Reference{
				{
					ID:     "lenski-2023",
					Number: 1,
					Text:   "Lenski, R. E. (2023). The E. coli Long-Term Evolution Experiment.",
				},
			},
		},
		"chapter-7": {
			ChapterNumber:        7,
			PartNumber:           3,
			EstimatedReadingTime: 25,
			Tags:                 []string{"cosmology", "physics", "anthropic principle", "dark matter"},
			KeyTakeaways: []string{
				"Anthropic principle is survivor bias on cosmic scale",
				"Fine-tuning problem dissolves: we observe persistent configurations",
				"Simpler models (classical dark matter) likely more persistent",
			},
			References: []article.Reference{
				{
					ID:     "hui-2021",
					Number: 1,
					Text:   "Hui, L. (2021). Wave Dark Matter. Annual Review of Astronomy and Astrophysics.",
				},
			},
		},
		"chapter-8": {
			ChapterNumber:        8,
			PartNumber:           4,
			EstimatedReadingTime: 30,
			Tags:                 []string{"critique", "physics envy", "pseudoscience", "methodology"},
			KeyTakeaways: []string{
				"Physics envy: inappropriate importation of physics concepts",
				"Quantum mind fails: brain too warm and wet for quantum effects",
				"Economic 'quantum' models lack predictive power",
			},
		},
		"chapter-9": {
			ChapterNumber:        9,
			PartNumber:           4,
			EstimatedReadingTime: 40,
			Tags:                 []string{"FAQ", "objections", "defense", "philosophy of science"},
			KeyTakeaways: []string{
				"Semantics matter: words guide research programs",
				"Persistence unifies attractor dynamics, SOC, natural selection",
				"Conservation laws may be more fundamental than Schrödinger equation",
			},
		},
		"chapter-10": {
			ChapterNumber:        10,
			PartNumber:           5,
			EstimatedReadingTime: 25,
			Tags:                 []string{"toolkit", "practical", "application", "methodology"},
			KeyTakeaways: []string{
				"Identify what persists, transformation operators, attractors",
				"To change a state: make it less persistent or create deeper attractor",
				"Avoid confusing persistence with desirability",
			},
			Exercises: []article.Exercise{
				{
					ID:          "persistence-worksheet",
					Type:        "worksheet",
					Title:       "Persistence Analysis Worksheet",
					Difficulty:  "orange",
					Description: "Apply the persistence framework to analyze a system",
				},
			},
		},
		"chapter-11": {
			ChapterNumber:        11,
			PartNumber:           5,
			EstimatedReadingTime: 20,
			Tags:                 []string{"resources", "bibliography", "further reading"},
			KeyTakeaways: []string{
				"Key resources: Gleick's Chaos, Kauffman's At Home in the Universe",
				"Interactive tools: PhET simulations, 3Blue1Brown videos",
				"Santa Fe Institute: leading center for complexity science",
			},
		},
		"appendices": {
			EstimatedReadingTime: 30,
			Tags:                 []string{"technical", "mathematics", "advanced"},
			Type:                 "appendix",
		},
		"bibliography": {
			EstimatedReadingTime: 20,
			Tags:                 []string{"references", "citations", "resources"},
			Type:                 "bibliography",
		},
	}
}
