package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// packagesSchema describes the shape of the package list, independent of the file format.
// URL structure and the provider/version values are validated later when remotes are built,
// so that one bad entry does not prevent the others from being checked.
const packagesSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "url", "package_type", "version_type"],
		"properties": {
			"name":         {"type": "string", "pattern": "\\S"},
			"url":          {"type": "string", "pattern": "\\S"},
			"package_type": {"type": "string", "pattern": "\\S"},
			"version_type": {"type": "string", "pattern": "\\S"}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(packagesSchema)

// validateShape checks a generically decoded package list against packagesSchema.
func validateShape(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("could not validate configuration: %w", err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(problems, "; "))
}
