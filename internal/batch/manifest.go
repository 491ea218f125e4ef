// Package batch parses the JSON manifest an admin bulk upload produces: the
// list of report files already placed in durable storage.
package batch

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/simdocs-io/report-reconciler/internal/common"
	"github.com/simdocs-io/report-reconciler/internal/entity"
)

// manifestSchema rejects malformed batches before any document is touched.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["reports"],
  "properties": {
    "reports": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["file_name", "file_path"],
        "properties": {
          "file_name": {"type": "string", "minLength": 1},
          "file_path": {"type": "string", "minLength": 1}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var compiledSchema = jsonschema.MustCompileString("manifest.json", manifestSchema)

// Manifest is one batch of uploaded report files.
type Manifest struct {
	Reports []entity.ReportFile `json:"reports"`
}

// Parse validates raw manifest bytes against the schema and decodes them.
func Parse(raw []byte) (*Manifest, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewAppError("BAD_MANIFEST", "manifest is not valid JSON", common.ErrInvalidInput)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, common.NewAppError("BAD_MANIFEST", err.Error(), common.ErrInvalidInput)
	}

	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, common.NewAppError("BAD_MANIFEST", "manifest decode failed", common.ErrInvalidInput)
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read manifest")
	}
	return Parse(raw)
}
