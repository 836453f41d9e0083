package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Article struct {
		Path   string `yaml:"path"`
		Output string `yaml:"output"` // empty means overwrite the input in place
	} `yaml:"article"`
	Catalog struct {
		Path string `yaml:"path"` // optional external metadata table
	} `yaml:"catalog"`
	Report struct {
		Path string `yaml:"path"` // optional run report output
	} `yaml:"report"`
}

func Default() *Config {
	var cfg Config
	cfg.Article.Path = "article.json"
	return &cfg
}

// LoadConfig reads config.yaml and applies env overrides. A missing config
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	if cfg.Article.Path == "" {
		cfg.Article.Path = "article.json"
	}

	// 3. Override with Environment Variables if present
	if p := os.Getenv("BOOKBIND_ARTICLE_PATH"); p != "" {
		cfg.Article.Path = p
	}
	if p := os.Getenv("BOOKBIND_CATALOG_PATH"); p != "" {
		cfg.Catalog.Path = p
	}
	if p := os.Getenv("BOOKBIND_REPORT_PATH"); p != "" {
		cfg.Report.Path = p
	}

	return cfg, nil
}

// OutputPath resolves where the enhanced document is written: the configured
// output, or the input path itself.
func (c *Config) OutputPath() string {
	if c.Article.Output != "" {
		return c.Article.Output
	}
	return c.Article.Path
}
