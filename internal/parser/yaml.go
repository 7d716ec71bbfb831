package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML observation lists, in the same layouts as
// JSONParser. Observations keep the line they start on.
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	ft := GetFileType(path)
	return ft == FileTypeYAML
}

// Parse parses a YAML file
func (p *YAMLParser) Parse(path string, content []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}

	var observations []Observation
	if len(root.Content) > 0 {
		var err error
		observations, err = p.extractObservations(root.Content[0])
		if err != nil {
			return nil, err
		}
	}

	return &Document{
		Path:         path,
		Content:      content,
		FileType:     FileTypeYAML,
		Observations: observations,
	}, nil
}

// extractObservations reads the observation sequence from the document node
func (p *YAMLParser) extractObservations(node *yaml.Node) ([]Observation, error) {
	if node.Kind == yaml.MappingNode {
		list := mappingValue(node, ObservationsKey)
		if list == nil {
			return nil, fmt.Errorf("%w: mapping without %q key", ErrUnsupportedLayout, ObservationsKey)
		}
		node = list
	}

	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a list at line %d", ErrUnsupportedLayout, node.Line)
	}

	observations := make([]Observation, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			observations = append(observations, Observation{Text: item.Value, Line: item.Line})
		case yaml.MappingNode:
			txt := mappingValue(item, "text")
			if txt == nil || txt.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: item at line %d has no \"text\" field", ErrUnsupportedLayout, item.Line)
			}
			observations = append(observations, Observation{Text: txt.Value, Line: txt.Line})
		default:
			return nil, fmt.Errorf("%w: unexpected item at line %d", ErrUnsupportedLayout, item.Line)
		}
	}

	return observations, nil
}

// mappingValue returns the value node for key, or nil
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
