package schema

import (
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Kind classifies the value held by a Node.
type Kind int

const (
	// KindNull is an explicit null (or an empty document).
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindNumber is an integer or floating point scalar.
	KindNumber
	// KindString is a string scalar.
	KindString
	// KindArray is a sequence.
	KindArray
	// KindObject is a mapping.
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is one key/value pair of an object node, in document order.
type Field struct {
	Key   string
	Value *Node
}

// Node is an immutable view of one subtree of a schema document. Object keys
// keep the order they have in the source. A nil *Node is valid and behaves
// like an absent value: Has reports false and Get returns nil.
type Node struct {
	y       *yaml.Node
	doc     *Document
	pointer string
}

func newNode(y *yaml.Node, doc *Document, pointer string) *Node {
	for y != nil && y.Kind == yaml.AliasNode {
		y = y.Alias
	}
	if y != nil && y.Kind == yaml.DocumentNode {
		if len(y.Content) == 0 {
			y = nil
		} else {
			y = y.Content[0]
		}
	}
	return &Node{y: y, doc: doc, pointer: pointer}
}

// Kind returns the kind of value held by the node.
func (n *Node) Kind() Kind {
	if n == nil || n.y == nil {
		return KindNull
	}
	switch n.y.Kind {
	case yaml.MappingNode:
		return KindObject
	case yaml.SequenceNode:
		return KindArray
	case yaml.ScalarNode:
		switch n.y.ShortTag() {
		case "!!null":
			return KindNull
		case "!!bool":
			return KindBool
		case "!!int", "!!float":
			return KindNumber
		default:
			return KindString
		}
	}
	return KindNull
}

// IsObject reports whether the node is a mapping.
func (n *Node) IsObject() bool {
	return n.Kind() == KindObject
}

// Has reports whether an object node contains key.
func (n *Node) Has(key string) bool {
	return n.lookup(key) != nil
}

// Get returns the value stored under key, or nil when the node is not an
// object or has no such key.
func (n *Node) Get(key string) *Node {
	y := n.lookup(key)
	if y == nil {
		return nil
	}
	return newNode(y, n.doc, n.pointer+"/"+escapePointerToken(key))
}

func (n *Node) lookup(key string) *yaml.Node {
	if n == nil || n.y == nil || n.y.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.y.Content); i += 2 {
		if n.y.Content[i].Value == key {
			return n.y.Content[i+1]
		}
	}
	return nil
}

// Keys returns the keys of an object node in document order.
func (n *Node) Keys() []string {
	if n == nil || n.y == nil || n.y.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.y.Content)/2)
	for i := 0; i+1 < len(n.y.Content); i += 2 {
		keys = append(keys, n.y.Content[i].Value)
	}
	return keys
}

// Fields returns the key/value pairs of an object node in document order.
func (n *Node) Fields() []Field {
	keys := n.Keys()
	if len(keys) == 0 {
		return nil
	}
	fields := make([]Field, 0, len(keys))
	for i, key := range keys {
		value := newNode(n.y.Content[2*i+1], n.doc, n.pointer+"/"+escapePointerToken(key))
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields
}

// Items returns the elements of an array node.
func (n *Node) Items() []*Node {
	if n == nil || n.y == nil || n.y.Kind != yaml.SequenceNode {
		return nil
	}
	items := make([]*Node, 0, len(n.y.Content))
	for i, child := range n.y.Content {
		items = append(items, newNode(child, n.doc, n.pointer+"/"+strconv.Itoa(i)))
	}
	return items
}

// Text returns the raw text of a scalar node, or "" for other kinds.
func (n *Node) Text() string {
	if n == nil || n.y == nil || n.y.Kind != yaml.ScalarNode {
		return ""
	}
	return n.y.Value
}

// Bool returns the value of a boolean scalar. Any other node yields false.
func (n *Node) Bool() bool {
	if n.Kind() != KindBool {
		return false
	}
	var b bool
	if err := n.y.Decode(&b); err != nil {
		return false
	}
	return b
}

// Value decodes the node into plain Go values (string, bool, int, float64,
// []any, map[string]any or nil).
func (n *Node) Value() (any, error) {
	if n == nil || n.y == nil {
		return nil, nil
	}
	var v any
	if err := n.y.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Pointer returns the JSON pointer of the node within its document.
// The document root has the empty pointer.
func (n *Node) Pointer() string {
	if n == nil {
		return ""
	}
	return n.pointer
}

// Document returns the document the node belongs to.
func (n *Node) Document() *Document {
	if n == nil {
		return nil
	}
	return n.doc
}

// ID returns the identity of the node: its document URI and JSON pointer.
// Two nodes reached through different $ref paths share the same ID.
func (n *Node) ID() string {
	if n == nil {
		return ""
	}
	uri := ""
	if n.doc != nil {
		uri = n.doc.URI
	}
	return uri + "#" + n.pointer
}

// Line returns the 1-based source line of the node (0 if unknown).
func (n *Node) Line() int {
	if n == nil || n.y == nil {
		return 0
	}
	return n.y.Line
}

// Column returns the 1-based source column of the node (0 if unknown).
func (n *Node) Column() int {
	if n == nil || n.y == nil {
		return 0
	}
	return n.y.Column
}

// Parent returns the node that holds n, or nil for a document root or a
// detached node.
func (n *Node) Parent() *Node {
	if n == nil || n.doc == nil || n.pointer == "" {
		return nil
	}
	i := strings.LastIndexByte(n.pointer, '/')
	parent, err := n.doc.Lookup(n.pointer[:i])
	if err != nil {
		return nil
	}
	return parent
}

// NewBool returns a detached boolean node, for rules that need to apply a
// keyword value the schema implies but does not spell out.
func NewBool(v bool) *Node {
	return newNode(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil, "")
}
