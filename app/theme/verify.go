package theme

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var embeddedSchemaData []byte

// GenerateSchema generates JSON schema for theme table files.
func GenerateSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&FileConfig{})
	schema.Title = "Delta Theme Table"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// VerifyTable validates a decoded theme document against the embedded JSON schema.
func VerifyTable(doc any) error {
	if len(embeddedSchemaData) == 0 {
		return errors.New("embedded theme schema is empty")
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("theme table validation failed: %w", err)
	}
	return nil
}
