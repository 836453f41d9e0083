package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"bookbind/internal/article"
)

// SectionMeta is one entry of the metadata table. Zero values mean the field
// is absent: every real value is positive or non-empty.
type SectionMeta struct {
	EstimatedReadingTime int                 `yaml:"estimated_reading_time"`
	Tags                 []string            `yaml:"tags"`
	Type                 string              `yaml:"type"`
	ChapterNumber        int                 `yaml:"chapter_number"`
	PartNumber           int                 `yaml:"part_number"`
	KeyTakeaways         []string            `yaml:"key_takeaways"`
	References           []article.Reference `yaml:"references"`
	Exercises            []article.Exercise  `yaml:"exercises"`
}

// DocumentProfile holds the envelope defaults written into every enhanced
// document.
type DocumentProfile struct {
	Version     string
	Authors     []article.Author
	Keywords    []string
	Description string
	Language    string
	Subject     []string
	Settings    article.Settings
}

// Catalog maps section ids to their metadata and carries the document
// profile.
type Catalog struct {
	Sections map[string]SectionMeta
	Profile  DocumentProfile
}

func (c *Catalog) Lookup(id string) (SectionMeta, bool) {
	meta, ok := c.Sections[id]
	return meta, ok
}

// IDs returns every table key in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Sections))
	for id := range c.Sections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// catalogFile is the YAML shape of an external catalog. Sections replace the
// builtin table wholesale; profile fields fall back to the builtin profile
// individually.
type catalogFile struct {
	Profile  *profileFile           `yaml:"profile"`
	Sections map[string]SectionMeta `yaml:"sections"`
}

type profileFile struct {
	Version     string        `yaml:"version"`
	Authors     []authorFile  `yaml:"authors"`
	Keywords    []string      `yaml:"keywords"`
	Description string        `yaml:"description"`
	Language    string        `yaml:"language"`
	Subject     []string      `yaml:"subject"`
	Settings    *settingsFile `yaml:"settings"`
}

type authorFile struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

type settingsFile struct {
	Theme             string `yaml:"theme"`
	FontSize          string `yaml:"font_size"`
	ShowDifficulty    bool   `yaml:"show_difficulty"`
	ShowEstimatedTime bool   `yaml:"show_estimated_time"`
	EnableNavigation  bool   `yaml:"enable_navigation"`
	EnableSearch      bool   `yaml:"enable_search"`
}

// Load reads an external catalog from YAML.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	cat := Builtin()
	if file.Sections != nil {
		cat.Sections = file.Sections
	}
	if file.Profile != nil {
		applyProfile(&cat.Profile, file.Profile)
	}
	return cat, nil
}

func applyProfile(dst *DocumentProfile, src *profileFile) {
	if src.Version != "" {
		dst.Version = src.Version
	}
	if len(src.Authors) > 0 {
		authors := make([]article.Author, 0, len(src.Authors))
		for _, a := range src.Authors {
			authors = append(authors, article.Author{Name: a.Name, Role: a.Role})
		}
		dst.Authors = authors
	}
	if len(src.Keywords) > 0 {
		dst.Keywords = src.Keywords
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if len(src.Subject) > 0 {
		dst.Subject = src.Subject
	}
	if src.Settings != nil {
		dst.Settings = article.Settings{
			Theme:             src.Settings.Theme,
			FontSize:          src.Settings.FontSize,
			ShowDifficulty:    src.Settings.ShowDifficulty,
			ShowEstimatedTime: src.Settings.ShowEstimatedTime,
			EnableNavigation:  src.Settings.EnableNavigation,
			EnableSearch:      src.Settings.EnableSearch,
		}
	}
}
