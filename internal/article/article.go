package article

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the raw article as read from disk: a title and an ordered list
// of sections. Unknown top-level keys are dropped, matching the envelope
// rebuild on every run.
type Document struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// EnhancedDocument wraps the article with the document-level envelope.
type EnhancedDocument struct {
	Title    string       `json:"title"`
	Version  string       `json:"version"`
	Metadata DocumentMeta `json:"metadata"`
	Settings Settings     `json:"settings"`
	Sections []Section    `json:"sections"`
}

type DocumentMeta struct {
	Authors      []Author `json:"authors"`
	Created      string   `json:"created"`
	LastModified string   `json:"lastModified"`
	Keywords     []string `json:"keywords"`
	Description  string   `json:"description"`
	Language     string   `json:"language"`
	Subject      []string `json:"subject"`
}

type Author struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Settings are the reader display and navigation toggles.
type Settings struct {
	Theme             string `json:"theme"`
	FontSize          string `json:"fontSize"`
	ShowDifficulty    bool   `json:"showDifficulty"`
	ShowEstimatedTime bool   `json:"showEstimatedTime"`
	EnableNavigation  bool   `json:"enableNavigation"`
	EnableSearch      bool   `json:"enableSearch"`
}

func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read article %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse article %s: %w", path, err)
	}
	return &doc, nil
}

// SaveEnhanced validates and writes the enhanced document: two-space indent,
// no HTML escaping (non-ASCII is never escaped by encoding/json), trailing
// newline.
func SaveEnhanced(path string, doc *EnhancedDocument) error {
	if err := validateWithSchema(path, doc); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	b, err := encodeEnhanced(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

func encodeEnhanced(doc *EnhancedDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *EnhancedDocument) Validate() error {
	if d == nil {
		return fmt.Errorf("enhanced document is nil")
	}
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if d.Version == "" {
		return fmt.Errorf("version is required")
	}
	seen := make(map[string]bool, len(d.Sections))
	for _, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("section id is required")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id: %s", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// ValidateFile checks an already-enhanced document on disk: structural
// validation plus schema validation when a schema file is present.
func ValidateFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc EnhancedDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("failed to parse enhanced document %s: %w", path, err)
	}
	return validateWithSchema(path, &doc)
}

func (d *Document) SectionByID(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}
