package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mesh-intelligence/shelf/pkg/types"
)

// Schema returns the JSON Schema of a library file, reflected from
// types.Catalog. Every book key is required and no other key is allowed.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	s := r.Reflect(types.Catalog{})
	s.Title = "shelf library"
	return s
}

// compiledSchema is the validator built from Schema. The $schema keyword is
// dropped because gojsonschema only recognises drafts up to 7; the keywords
// actually used are common to every draft.
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	s := Schema()
	s.Version = ""
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog schema: %w", err)
	}
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
})

// validateCatalog checks that data is a JSON array of well-formed books.
func validateCatalog(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling catalog schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}
