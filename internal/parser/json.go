package parser

import (
	"encoding/json"
	"fmt"
)

// ObservationsKey is the top-level key holding the observation list in
// object-shaped JSON and YAML inputs.
const ObservationsKey = "observations"

// JSONParser parses JSON observation lists. Accepted layouts are a list of
// strings, a list of objects with a "text" field, or either list under an
// "observations" key.
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeJSON
}

// Parse parses a JSON file
func (p *JSONParser) Parse(path string, content []byte) (*Document, error) {
	var data interface{}
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	observations, err := observationsFrom(data)
	if err != nil {
		return nil, err
	}

	return &Document{
		Path:         path,
		Content:      content,
		FileType:     FileTypeJSON,
		Observations: observations,
	}, nil
}

// observationsFrom extracts observations from decoded JSON
func observationsFrom(data interface{}) ([]Observation, error) {
	if obj, ok := data.(map[string]interface{}); ok {
		list, found := obj[ObservationsKey]
		if !found {
			return nil, fmt.Errorf("%w: object without %q key", ErrUnsupportedLayout, ObservationsKey)
		}
		data = list
	}

	items, ok := data.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, got %T", ErrUnsupportedLayout, data)
	}

	observations := make([]Observation, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			observations = append(observations, Observation{Text: v})
		case map[string]interface{}:
			txt, ok := v["text"].(string)
			if !ok {
				return nil, fmt.Errorf("%w: item %d has no string \"text\" field", ErrUnsupportedLayout, i+1)
			}
			observations = append(observations, Observation{Text: txt})
		default:
			return nil, fmt.Errorf("%w: item %d is %T", ErrUnsupportedLayout, i+1, item)
		}
	}

	return observations, nil
}
