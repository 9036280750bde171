// Package yaml provides a YAML codec implementation.
package yaml

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zoobzio/datapath"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements datapath.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() datapath.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML. *datapath.Map keeps its key order.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// Unmarshal decodes YAML data into v. A *any receives an ordered tree.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	out, ok := v.(*any)
	if !ok {
		return yaml.Unmarshal(data, v)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := fromNode(&doc)
	if err != nil {
		return err
	}
	*out = val
	return nil
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		m := datapath.NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Tag == "!!merge" {
				if err := merge(m, v); err != nil {
					return nil, err
				}
				continue
			}
			val, err := fromNode(v)
			if err != nil {
				return nil, err
			}
			m.Store(k.Value, val)
		}
		return m, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
}

// merge applies a "<<" key: entries from the merged mappings fill keys the
// mapping does not set itself.
func merge(m *datapath.Map, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := fromNode(src)
		if err != nil {
			return err
		}
		sm, ok := v.(*datapath.Map)
		if !ok {
			return fmt.Errorf("merge value at line %d is not a mapping", src.Line)
		}
		for _, e := range sm.Entries() {
			if _, exists := m.Lookup(e.Key); !exists {
				m.Store(e.Key, e.Value)
			}
		}
	}
	return nil
}

func toNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case *datapath.Map:
		if t == nil {
			return nullNode(), nil
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range t.Entries() {
			if err := appendPair(n, e.Key, e.Value); err != nil {
				return nil, err
			}
		}
		return n, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			if err := appendPair(n, k, t[k]); err != nil {
				return nil, err
			}
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			in, err := toNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, in)
		}
		return n, nil
	case json.Number:
		tag := "!!float"
		if _, err := t.Int64(); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func appendPair(n *yaml.Node, key string, v any) error {
	vn, err := toNode(v)
	if err != nil {
		return err
	}
	kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	n.Content = append(n.Content, kn, vn)
	return nil
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
