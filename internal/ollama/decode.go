package ollama

import (
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/mwiater/ollamatool/internal/models"
	"github.com/xeipuuv/gojsonschema"
)

var errInvalidUTF8 = errors.New("body is not valid UTF-8")

// tagsSchema describes the /api/tags payload. Everything except
// details.families is required.
var tagsSchema = map[string]any{
	"type":     "object",
	"required": []string{"models"},
	"properties": map[string]any{
		"models": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"name", "model", "modified_at", "size", "digest", "details"},
				"properties": map[string]any{
					"name":        map[string]any{"type": "string"},
					"model":       map[string]any{"type": "string"},
					"modified_at": map[string]any{"type": "string"},
					"size":        map[string]any{"type": "integer", "minimum": 0},
					"digest":      map[string]any{"type": "string"},
					"details": map[string]any{
						"type":     "object",
						"required": []string{"parent_model", "format", "family", "parameter_size", "quantization_level"},
						"properties": map[string]any{
							"parent_model": map[string]any{"type": "string"},
							"format":       map[string]any{"type": "string"},
							"family":       map[string]any{"type": "string"},
							"families": map[string]any{
								"type":  []string{"array", "null"},
								"items": map[string]any{"type": "string"},
							},
							"parameter_size":     map[string]any{"type": "string"},
							"quantization_level": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

// ReadText reads the whole body as UTF-8 text.
func ReadText(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", &BodyReadError{Err: err}
	}
	if !utf8.Valid(data) {
		return "", &BodyReadError{Err: errInvalidUTF8}
	}
	return string(data), nil
}

// DecodeModels reads the whole body and decodes it as an /api/tags payload.
// Malformed JSON or any shape violation yields a *DecodeError and an empty
// Models value; a partially filled list is never returned.
func DecodeModels(body io.Reader) (models.Models, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return models.Models{}, &BodyReadError{Err: err}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(tagsSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return models.Models{}, &DecodeError{Err: err}
	}
	if !result.Valid() {
		var violations []string
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return models.Models{}, &DecodeError{Violations: violations}
	}

	var decoded models.Models
	if err := json.Unmarshal(data, &decoded); err != nil {
		return models.Models{}, &DecodeError{Err: err}
	}
	return decoded, nil
}
