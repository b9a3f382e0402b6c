package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"go.yaml.in/yaml/v4"
)

// MarshalOrderedJSON marshals the parsed document to JSON keeping the field
// order of the source document.
//
// Ordering requires the PreserveOrder option at parse time; without it this
// falls back to standard JSON marshaling, which sorts map keys.
//
// Ordered output keeps diffs small when converting service documents between
// formats and makes hash-based caching of round-tripped documents possible.
//
// Example:
//
//	result, _ := parser.ParseWithOptions(
//	    parser.WithFilePath("users-service.yaml"),
//	    parser.WithPreserveOrder(true),
//	)
//	orderedJSON, _ := result.MarshalOrderedJSON()
func (pr *ParseResult) MarshalOrderedJSON() ([]byte, error) {
	if pr.sourceNode == nil {
		return json.Marshal(pr.Document)
	}

	var buf bytes.Buffer
	if err := appendOrderedJSON(&buf, pr.sourceNode, pr.Data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalOrderedJSONIndent is MarshalOrderedJSON with indented output.
func (pr *ParseResult) MarshalOrderedJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := pr.MarshalOrderedJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalOrderedYAML marshals the parsed document to YAML keeping the field
// order of the source document. Like MarshalOrderedJSON it requires the
// PreserveOrder option and otherwise falls back to standard marshaling.
//
// Example:
//
//	result, _ := parser.ParseWithOptions(
//	    parser.WithFilePath("users-service.yaml"),
//	    parser.WithPreserveOrder(true),
//	)
//	orderedYAML, _ := result.MarshalOrderedYAML()
func (pr *ParseResult) MarshalOrderedYAML() ([]byte, error) {
	if pr.sourceNode == nil {
		return yaml.Marshal(pr.Document)
	}

	node, err := orderedYAMLNode(pr.sourceNode, pr.Data)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// HasPreservedOrder reports whether the source field ordering was captured
// during parsing, which is the case when PreserveOrder was enabled.
func (pr *ParseResult) HasPreservedOrder() bool {
	return pr.sourceNode != nil
}

// appendOrderedJSON writes data to buf as JSON, ordering map keys the way
// node orders them. The values come from data, not the node, so edits made
// after parsing survive; keys missing from data are skipped and keys absent
// from the node are appended in sorted order.
func appendOrderedJSON(buf *bytes.Buffer, node *yaml.Node, data any) error {
	if node == nil {
		return appendJSON(buf, data)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			return appendOrderedJSON(buf, node.Content[0], data)
		}
		return appendJSON(buf, data)

	case yaml.MappingNode:
		dataMap, ok := data.(map[string]any)
		if !ok {
			// The document was restructured under this node; source
			// order no longer applies.
			return appendJSON(buf, data)
		}

		children := childNodes(node)
		buf.WriteByte('{')
		first := true
		for _, key := range orderedKeys(node, dataMap) {
			val, exists := dataMap[key]
			if !exists {
				continue
			}

			if !first {
				buf.WriteByte(',')
			}
			first = false

			keyJSON, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')

			if err := appendOrderedJSON(buf, children[key], val); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		dataSlice, ok := data.([]any)
		if !ok {
			return appendJSON(buf, data)
		}

		buf.WriteByte('[')
		for i, item := range dataSlice {
			if i > 0 {
				buf.WriteByte(',')
			}
			var child *yaml.Node
			if i < len(node.Content) {
				child = node.Content[i]
			}
			if err := appendOrderedJSON(buf, child, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		// Scalars, aliases, and anything unexpected.
		return appendJSON(buf, data)
	}
}

// orderedYAMLNode builds a yaml.Node tree carrying the values of data in the
// key order of sourceNode, following the same skip/append rules as
// appendOrderedJSON.
func orderedYAMLNode(sourceNode *yaml.Node, data any) (*yaml.Node, error) {
	if sourceNode == nil {
		return anyToNode(data)
	}

	switch sourceNode.Kind {
	case yaml.DocumentNode:
		if len(sourceNode.Content) > 0 {
			child, err := orderedYAMLNode(sourceNode.Content[0], data)
			if err != nil {
				return nil, err
			}
			return &yaml.Node{
				Kind:    yaml.DocumentNode,
				Content: []*yaml.Node{child},
			}, nil
		}
		return anyToNode(data)

	case yaml.MappingNode:
		dataMap, ok := data.(map[string]any)
		if !ok {
			return anyToNode(data)
		}

		children := childNodes(sourceNode)
		result := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range orderedKeys(sourceNode, dataMap) {
			val, exists := dataMap[key]
			if !exists {
				continue
			}

			valNode, err := orderedYAMLNode(children[key], val)
			if err != nil {
				return nil, err
			}
			result.Content = append(result.Content, scalarYAMLNode("!!str", key), valNode)
		}
		return result, nil

	case yaml.SequenceNode:
		dataSlice, ok := data.([]any)
		if !ok {
			return anyToNode(data)
		}

		result := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(dataSlice)),
		}
		for i, item := range dataSlice {
			var child *yaml.Node
			if i < len(sourceNode.Content) {
				child = sourceNode.Content[i]
			}
			itemNode, err := orderedYAMLNode(child, item)
			if err != nil {
				return nil, err
			}
			result.Content = append(result.Content, itemNode)
		}
		return result, nil

	default:
		return anyToNode(data)
	}
}

// orderedKeys returns the keys of a MappingNode in source order, followed by
// keys that exist only in dataMap, sorted so documents edited after parsing
// still marshal deterministically.
func orderedKeys(node *yaml.Node, dataMap map[string]any) []string {
	keys := make([]string, 0, len(dataMap))
	seen := make(map[string]bool, len(dataMap))
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode {
			keys = append(keys, k.Value)
			seen[k.Value] = true
		}
	}

	var extra []string
	for k := range dataMap {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)

	return append(keys, extra...)
}

// childNodes indexes the value nodes of a MappingNode by key. Paths sections
// can hold hundreds of keys, so lookups during the walk need to be constant
// time.
func childNodes(node *yaml.Node) map[string]*yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	children := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode {
			children[k.Value] = node.Content[i+1]
		}
	}
	return children
}

func appendJSON(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

func scalarYAMLNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// anyToNode converts a decoded value to a yaml.Node. Maps marshal with
// sorted keys since there is no source node to take an order from.
func anyToNode(v any) (*yaml.Node, error) {
	if v == nil {
		return scalarYAMLNode("!!null", "null"), nil
	}

	switch val := v.(type) {
	case bool:
		return scalarYAMLNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarYAMLNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarYAMLNode("!!int", strconv.FormatInt(val, 10)), nil
	case float64:
		return scalarYAMLNode("!!float", strconv.FormatFloat(val, 'f', -1, 64)), nil
	case string:
		return scalarYAMLNode("!!str", val), nil
	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(val)),
		}
		for _, item := range val {
			child, err := anyToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			valNode, err := anyToNode(val[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarYAMLNode("!!str", k), valNode)
		}
		return node, nil
	default:
		// Values decoded from YAML or JSON never reach here, but callers
		// may hand us arbitrary structs via Data; round-trip through JSON.
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to yaml.Node: %w", v, err)
		}
		var result any
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}
		return anyToNode(result)
	}
}
