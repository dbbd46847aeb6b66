package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemaFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	register := func(eventType, eventVersion, path string) {
		raw, err := schemaFS.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read schema %s: %v", path, err)
		}
		if err := compiler.AddResource(path, strings.NewReader(string(raw))); err != nil {
			log.Fatalf("failed to add schema resource %s: %v", path, err)
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			log.Fatalf("failed to compile schema %s: %v", path, err)
		}

		key := fmt.Sprintf("%s/%s", eventType, eventVersion)
		compiledSchemas[key] = schema
		log.Printf("Successfully loaded schema: %s", key)
	}

	register("VenueBatchEvent", "1.0.0", "schemas/events/venue-batch/v1.json")
}

// ValidateEvent принимает тело сообщения и его метаданные и проверяет по схеме
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	key := fmt.Sprintf("%s/%s", eventType, eventVersion)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for event '%s' version '%s' not found", eventType, eventVersion)
	}

	// Валидация по схеме возможна только над распарсенным значением
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}
