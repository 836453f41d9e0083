package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"bookbind/internal/article"
	"bookbind/internal/catalog"
	"bookbind/internal/config"
	"bookbind/internal/enhancer"
	"bookbind/internal/planner"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bookbind",
		Short: "Article metadata enhancement tool",
	}
	configPath  string
	outputPath  string
	catalogPath string
	reportPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	enhanceCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the enhanced document here instead of overwriting the input")
	enhanceCmd.Flags().StringVar(&catalogPath, "catalog", "", "External metadata catalog (YAML)")
	enhanceCmd.Flags().StringVar(&reportPath, "report", "", "Write a run report (JSON) to this path")
	planCmd.Flags().StringVar(&catalogPath, "catalog", "", "External metadata catalog (YAML)")

	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadSetup resolves config, catalog and article path for a command run.
func loadSetup(args []string) (*config.Config, *catalog.Catalog, string) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	cat := catalog.Builtin()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	path := cfg.Article.Path
	if len(args) > 0 {
		path = args[0]
		cfg.Article.Path = path
	}
	return cfg, cat, path
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance [path]",
	Short: "Enrich the article's sections and wrap it in the document envelope",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, cat, path := loadSetup(args)
		if outputPath != "" {
			cfg.Article.Output = outputPath
		}
		if reportPath != "" {
			cfg.Report.Path = reportPath
		}
		outPath := cfg.OutputPath()

		report := enhancer.NewRunReport(path, outPath)

		// 1. Load
		h := report.BeginStage("load")
		doc, err := article.Load(path)
		if err != nil {
			report.EndStage(h, nil, err)
			log.Fatalf("Failed to read article: %v", err)
		}
		report.EndStage(h, map[string]float64{"sections": float64(len(doc.Sections))}, nil)
		fmt.Printf("📖 Loaded %s (%d sections)\n", path, len(doc.Sections))

		// 2. Plan (for unused-entry signals only; the plan costs nothing)
		h = report.BeginStage("plan")
		plan := planner.BuildEnhancePlan(doc, cat)
		report.EndStage(h, map[string]float64{
			"matched":     float64(len(plan.Matched)),
			"passthrough": float64(len(plan.Passthrough)),
		}, nil)
		for _, id := range plan.UnusedCatalogIDs {
			report.AddSignal("unused_catalog_entry", "plan", "warning",
				fmt.Sprintf("catalog entry %q matches no section", id), 0)
		}

		// 3. Enhance
		h = report.BeginStage("enhance")
		enhanced, res := enhancer.Enhance(doc, cat, time.Now())
		report.SetResult(res)
		report.EndStage(h, map[string]float64{"enriched": float64(res.EnrichedCount)}, nil)

		// 4. Write
		h = report.BeginStage("write")
		err = article.SaveEnhanced(outPath, enhanced)
		report.EndStage(h, nil, err)
		if err != nil {
			log.Fatalf("Failed to write enhanced article: %v", err)
		}

		if cfg.Report.Path != "" {
			if err := report.Save(cfg.Report.Path); err != nil {
				log.Fatalf("Failed to write run report: %v", err)
			}
			fmt.Printf("📊 Run report: %s\n", cfg.Report.Path)
		}

		fmt.Printf("✨ Enhanced %d of %d sections -> %s\n", res.EnrichedCount, res.SectionCount, outPath)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Show what an enhancement run would change, without writing anything",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, cat, path := loadSetup(args)

		doc, err := article.Load(path)
		if err != nil {
			log.Fatalf("Failed to read article: %v", err)
		}

		plan := planner.BuildEnhancePlan(doc, cat)
		fmt.Printf("📋 Plan for %s\n", path)
		for _, impact := range plan.Matched {
			fmt.Printf("  ✏️  %s: %s\n", impact.SectionID, strings.Join(impact.Fields, ", "))
		}
		for _, id := range plan.Passthrough {
			fmt.Printf("  ➖ %s: passthrough\n", id)
		}
		for _, id := range plan.UnusedCatalogIDs {
			fmt.Printf("  ⚠️  unused catalog entry: %s\n", id)
		}
		fmt.Printf("Summary: %d to enrich, %d passthrough, %d unused entries\n",
			len(plan.Matched), len(plan.Passthrough), len(plan.UnusedCatalogIDs))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate an already-enhanced document",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		path := cfg.OutputPath()
		if len(args) > 0 {
			path = args[0]
		}

		if err := article.ValidateFile(path); err != nil {
			log.Fatalf("❌ %s is not valid: %v", path, err)
		}
		fmt.Printf("✅ %s is valid\n", path)
	},
}
