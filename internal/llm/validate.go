package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled holds one compiled schema per Schema.Name.
var compiled sync.Map

// validate checks raw against schema. A nil schema accepts anything.
func validate(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compile(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	if err := sch.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema %s: %w", schema.Name, err)}
	}
	return nil
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON values, not Go maps of
	// arbitrary types.
	b, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", schema.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode schema %s: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := "mem://" + schema.Name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", schema.Name, err)
	}
	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schema.Name, err)
	}
	compiled.Store(schema.Name, sch)
	return sch, nil
}
