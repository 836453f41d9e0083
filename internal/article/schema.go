package article

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaFileName = "enhanced_article.schema.json"

var (
	schemaCacheMu sync.Mutex
	schemaCache   = make(map[string]*jsonschema.Schema)
)

// validateWithSchema runs structural validation, then JSON-Schema validation
// when a schema file can be found. No schema file means structural checks
// only.
func validateWithSchema(outPath string, doc *EnhancedDocument) error {
	if doc == nil {
		return fmt.Errorf("enhanced document is nil")
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	schemaPath := resolveSchemaPath(outPath)
	if schemaPath == "" {
		return nil
	}

	schema, err := loadCompiledSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to compile article schema: %w", err)
	}

	raw, err := encodeEnhanced(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document for schema validation: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to normalize document for schema validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("article schema validation failed: %w", err)
	}
	return nil
}

func resolveSchemaPath(outPath string) string {
	candidates := []string{
		filepath.Join(filepath.Dir(outPath), schemaFileName),
		filepath.Join("docs", schemaFileName),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func loadCompiledSchema(schemaPath string) (*jsonschema.Schema, error) {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, err
	}

	schemaCacheMu.Lock()
	if cached, ok := schemaCache[abs]; ok {
		schemaCacheMu.Unlock()
		return cached, nil
	}
	schemaCacheMu.Unlock()

	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile("file://" + filepath.ToSlash(abs))
	if err != nil {
		return nil, err
	}

	schemaCacheMu.Lock()
	schemaCache[abs] = compiled
	schemaCacheMu.Unlock()
	return compiled, nil
}
