package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"dictpivot/internal/ordered"
)

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
	tagMerge = "!!merge"
)

// maxAliasExpansions bounds the total number of alias dereferences in one
// document so nested aliases cannot expand exponentially.
const maxAliasExpansions = 10000

func decodeYAML(data []byte) (any, error) {
	var root yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	d := &nodeDecoder{expanding: make(map[*yaml.Node]bool)}
	return d.fromNode(&root)
}

// nodeDecoder walks a yaml.Node tree. expanding holds the anchored nodes on
// the current alias path.
type nodeDecoder struct {
	expanding map[*yaml.Node]bool
	aliases   int
}

// follow dereferences an alias node. Targets still being decoded further up
// the tree form a cycle.
func (d *nodeDecoder) follow(n *yaml.Node) (*yaml.Node, error) {
	if n.Alias == nil {
		return nil, fmt.Errorf("%w: dangling alias at line %d", ErrSyntax, n.Line)
	}
	if d.expanding[n.Alias] {
		return nil, fmt.Errorf("%w: alias cycle at line %d", ErrSyntax, n.Line)
	}
	d.aliases++
	if d.aliases > maxAliasExpansions {
		return nil, fmt.Errorf("%w: more than %d alias expansions", ErrSyntax, maxAliasExpansions)
	}
	return n.Alias, nil
}

// enter marks an anchored collection as in progress until release is called.
func (d *nodeDecoder) enter(n *yaml.Node) (release func(), err error) {
	if n.Anchor == "" {
		return func() {}, nil
	}
	if d.expanding[n] {
		return nil, fmt.Errorf("%w: alias cycle at line %d", ErrSyntax, n.Line)
	}
	d.expanding[n] = true
	return func() { delete(d.expanding, n) }, nil
}

func (d *nodeDecoder) fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		target, err := d.follow(n)
		if err != nil {
			return nil, err
		}
		return d.fromNode(target)
	case yaml.MappingNode:
		release, err := d.enter(n)
		if err != nil {
			return nil, err
		}
		defer release()
		obj := ordered.New[any](len(n.Content) / 2)
		if err := d.mergeMapping(obj, n); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.SequenceNode:
		release, err := d.enter(n)
		if err != nil {
			return nil, err
		}
		defer release()
		items := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := d.fromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return nil, nil
	}
}

func (d *nodeDecoder) mergeMapping(obj *ordered.Map[any], n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.ShortTag() == tagMerge {
			if err := d.merge(obj, valueNode); err != nil {
				return err
			}
			continue
		}
		value, err := d.fromNode(valueNode)
		if err != nil {
			return err
		}
		obj.Set(keyNode.Value, value)
	}
	return nil
}

// merge applies a "<<" value: a mapping, an alias to one, or a sequence of
// either.
func (d *nodeDecoder) merge(obj *ordered.Map[any], valueNode *yaml.Node) error {
	source := valueNode
	if source.Kind == yaml.AliasNode {
		target, err := d.follow(source)
		if err != nil {
			return err
		}
		source = target
	}
	switch source.Kind {
	case yaml.MappingNode:
		release, err := d.enter(source)
		if err != nil {
			return err
		}
		defer release()
		return d.mergeMapping(obj, source)
	case yaml.SequenceNode:
		for _, item := range source.Content {
			if item.Kind == yaml.SequenceNode {
				return fmt.Errorf("%w: merge value at line %d is not a mapping", ErrSyntax, item.Line)
			}
			if err := d.merge(obj, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: merge value at line %d is not a mapping", ErrSyntax, valueNode.Line)
	}
}

// fromScalar converts a resolved scalar. Numbers whose text is already valid
// JSON are kept verbatim so precision and formatting survive a round trip.
func fromScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case tagNull:
		return nil, nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n.Line, err)
		}
		return b, nil
	case tagInt:
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}
		var i int64
		if err := n.Decode(&i); err == nil {
			return json.Number(strconv.FormatInt(i, 10)), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return json.Number(strconv.FormatUint(u, 10)), nil
		}
		return n.Value, nil
	case tagFloat:
		if isJSONNumber(n.Value) {
			return json.Number(n.Value), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, n.Line, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return n.Value, nil
		}
		return json.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return n.Value, nil
	}
}

func encodeYAML(v any, indent int) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	if indent < 2 {
		indent = 2
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func toNode(v any) (*yaml.Node, error) {
	switch value := v.(type) {
	case nil:
		return scalar(tagNull, "null"), nil
	case string:
		return scalar(tagStr, value), nil
	case bool:
		return scalar(tagBool, strconv.FormatBool(value)), nil
	case json.Number:
		return numberNode(value.String()), nil
	case int:
		return scalar(tagInt, strconv.Itoa(value)), nil
	case int64:
		return scalar(tagInt, strconv.FormatInt(value, 10)), nil
	case float64:
		return numberNode(strconv.FormatFloat(value, 'g', -1, 64)), nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range value {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	case ordered.Iterable:
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		value.Each(func(key string, item any) bool {
			var child *yaml.Node
			child, err = toNode(item)
			if err != nil {
				return false
			}
			mapping.Content = append(mapping.Content, scalar(tagStr, key), child)
			return true
		})
		if err != nil {
			return nil, err
		}
		return mapping, nil
	default:
		return nil, fmt.Errorf("encode yaml value: unsupported type %T", v)
	}
}

func numberNode(text string) *yaml.Node {
	if text == "" {
		text = "0"
	}
	if strings.ContainsAny(text, ".eE") {
		return scalar(tagFloat, text)
	}
	return scalar(tagInt, text)
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
