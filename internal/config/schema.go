package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the generated schema.
const SchemaID = "https://github.com/dshills/rune/config.schema.json"

// Schema returns the JSON schema describing the config file.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := reflector.Reflect(&Config{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "rune configuration"
	return s
}

// SchemaJSON returns the schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
