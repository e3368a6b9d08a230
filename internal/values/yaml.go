package values

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML parses one YAML document into a Value. Mapping key order is
// preserved by walking the yaml.Node tree instead of unmarshalling into a map.
func FromYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Nothing(), err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Nothing(), nil
	}
	return fromYAMLNode(root.Content[0])
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return yamlScalar(n), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := fromYAMLNode(child)
			if err != nil {
				return Nothing(), err
			}
			items = append(items, v)
		}
		return List(items), nil
	case yaml.MappingNode:
		rec := NewRecord()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Nothing(), err
			}
			rec.Set(key, v)
		}
		return RecordValue(rec), nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	default:
		return Nothing(), fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func yamlScalar(n *yaml.Node) Value {
	switch n.Tag {
	case "!!null":
		return Nothing()
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err == nil {
			return Bool(b)
		}
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err == nil {
			return Int(i)
		}
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err == nil {
			return Float(f)
		}
	}
	return String(n.Value)
}
