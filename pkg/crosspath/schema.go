package crosspath

import (
	"errors"

	invopopjsonschema "github.com/invopop/jsonschema"

	"github.com/MacroPower/crosspath/pkg/pathconv"
)

// ConfigSchema reflects [Config] into a JSON Schema, so that configuration
// can be validated when persisted or transmitted. Enum-valued fields carry
// their allowed values.
func ConfigSchema() (*invopopjsonschema.Schema, error) {
	r := &invopopjsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	schema := r.Reflect(&Config{})

	style, ok := schema.Properties.Get("style")
	if !ok {
		return nil, errors.New("reflected schema is missing the style property")
	}
	style.Enum = pathconv.StyleEnum

	return schema, nil
}
