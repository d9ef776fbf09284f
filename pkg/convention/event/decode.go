package event

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML drops empty strings, so "host: ''" declares no host at all.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)

	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || value.Value == "" {
			*s = nil
			return nil
		}
		*s = StringList{value.Value}
		return nil

	case yaml.SequenceNode:
		list := make(StringList, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected string, got %s", item.Line, kindName(item.Kind))
			}
			if item.Value == "" {
				continue
			}
			list = append(list, item.Value)
		}
		*s = list
		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of strings, got %s", value.Line, kindName(value.Kind))
	}
}

// UnmarshalYAML keeps a bare "alb:" entry as an empty Definition so that
// validation reports its missing priority.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)

	switch value.Kind {
	case yaml.MappingNode:
		if len(value.Content) == 0 {
			return nil
		}
		e.Kind = value.Content[0].Value
		if e.Kind != Kind {
			return nil
		}

		var def Definition
		if err := value.Content[1].Decode(&def); err != nil {
			return fmt.Errorf("alb event: %w", err)
		}
		e.Alb = &def
		return nil

	case yaml.ScalarNode:
		e.Kind = value.Value
		return nil

	default:
		return fmt.Errorf("line %d: unexpected event of kind %s", value.Line, kindName(value.Kind))
	}
}

// UnmarshalYAML keeps the order of declared keys, which a plain map decode would lose.
func (c *Conditions) UnmarshalYAML(value *yaml.Node) error {
	value = resolve(value)
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: conditions must be a mapping, got %s", value.Line, kindName(value.Kind))
	}

	*c = Conditions{Declared: []string{}}

	for _, clause := range pairs(value) {
		key, val := clause.key, clause.value
		c.Declared = append(c.Declared, key)

		switch key {
		case "path":
			if val.Kind == yaml.ScalarNode {
				c.Path = val.Value
			}

		case "host":
			c.Host = decodeList(val)

		case "method":
			c.Method = decodeList(val)

		case "ip":
			c.Ip = decodeList(val)

		case "header":
			if val.Kind != yaml.MappingNode {
				continue
			}
			var header HeaderCondition
			if err := val.Decode(&header); err != nil {
				continue
			}
			c.Header = &header

		case "query":
			if val.Kind != yaml.MappingNode {
				continue
			}
			entries := pairs(val)
			params := make([]QueryParam, 0, len(entries))
			for _, entry := range entries {
				params = append(params, QueryParam{
					Key:   entry.key,
					Value: entry.value.Value,
				})
			}
			c.Query = params
		}
	}

	return nil
}

type pair struct {
	key   string
	value *yaml.Node
}

// pairs flattens a mapping into its key/value pairs in source order, with
// aliases resolved and "<<" merge keys expanded in place. Keys written in the
// mapping itself win over merged ones; among merged sources the first wins.
func pairs(mapping *yaml.Node) []pair {
	mapping = resolve(mapping)

	explicit := map[string]bool{}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if !isMerge(mapping.Content[i]) {
			explicit[mapping.Content[i].Value] = true
		}
	}

	seen := map[string]bool{}
	var out []pair

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, val := mapping.Content[i], resolve(mapping.Content[i+1])

		if !isMerge(keyNode) {
			seen[keyNode.Value] = true
			out = append(out, pair{key: keyNode.Value, value: val})
			continue
		}

		sources := []*yaml.Node{val}
		if val.Kind == yaml.SequenceNode {
			sources = val.Content
		}

		for _, source := range sources {
			source = resolve(source)
			if source.Kind != yaml.MappingNode {
				continue
			}
			for _, merged := range pairs(source) {
				if explicit[merged.key] || seen[merged.key] {
					continue
				}
				seen[merged.key] = true
				out = append(out, merged)
			}
		}
	}

	return out
}

func isMerge(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.Value == "<<" && (key.Tag == "!!merge" || key.Tag == "")
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// malformed clauses decode to an empty list and are dropped at compile time
func decodeList(node *yaml.Node) StringList {
	var list StringList
	if err := node.Decode(&list); err != nil {
		return nil
	}
	return list
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
