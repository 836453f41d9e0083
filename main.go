package main

import (
	"fmt"
	"log"
	"time"

	"bookbind/internal/article"
	"bookbind/internal/catalog"
	"bookbind/internal/config"
	"bookbind/internal/enhancer"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Resolve the metadata catalog
	cat := catalog.Builtin()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	// 3. Read the article
	doc, err := article.Load(cfg.Article.Path)
	if err != nil {
		log.Fatalf("Failed to read article: %v", err)
	}

	// 4. Enhance
	enhanced, res := enhancer.Enhance(doc, cat, time.Now())

	// 5. Write the enhanced version
	outPath := cfg.OutputPath()
	if err := article.SaveEnhanced(outPath, enhanced); err != nil {
		log.Fatalf("Failed to write enhanced article: %v", err)
	}

	fmt.Printf("✓ Enhanced %s created\n", outPath)
	fmt.Println("✓ Added metadata, version, settings")
	fmt.Printf("✓ Enhanced %d sections (%d enriched, %d passed through)\n",
		res.SectionCount, res.EnrichedCount, res.PassthroughCount)
	fmt.Println("✓ Added reading times, tags, key takeaways, references")
}
