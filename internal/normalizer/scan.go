package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EfiPay payloads are scanned for "the first key named X", so extraction must
// be deterministic in document order. encoding/json maps randomize key order;
// payloads are decoded into this ordered tree instead.

type nodeKind int

const (
	kindNull nodeKind = iota
	kindString
	kindNumber
	kindBool
	kindObject
	kindArray
)

type node struct {
	kind    nodeKind
	str     string
	num     json.Number
	boolean bool
	members []member // kindObject, in document order
	elems   []*node  // kindArray
}

type member struct {
	key   string
	value *node
}

func parseTree(raw []byte) (*node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseValue(dec, tok)
}

func parseValue(dec *json.Decoder, tok json.Token) (*node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := &node{kind: kindObject}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := parseValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				obj.members = append(obj.members, member{key: key, value: val})
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &node{kind: kindArray}
			for dec.More() {
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				val, err := parseValue(dec, valTok)
				if err != nil {
					return nil, err
				}
				arr.elems = append(arr.elems, val)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case string:
		return &node{kind: kindString, str: v}, nil
	case json.Number:
		return &node{kind: kindNumber, num: v}, nil
	case bool:
		return &node{kind: kindBool, boolean: v}, nil
	case nil:
		return &node{kind: kindNull}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// walk visits every key/value pair depth-first in document order, a parent
// key before the keys inside its value. Returning false from fn stops the
// walk early.
func walk(n *node, fn func(key string, value *node) bool) bool {
	if n == nil {
		return true
	}
	switch n.kind {
	case kindObject:
		for _, m := range n.members {
			if !fn(m.key, m.value) {
				return false
			}
			if !walk(m.value, fn) {
				return false
			}
		}
	case kindArray:
		for _, el := range n.elems {
			if !walk(el, fn) {
				return false
			}
		}
	}
	return true
}

// child returns the value of a direct member, or nil.
func (n *node) child(key string) *node {
	if n == nil || n.kind != kindObject {
		return nil
	}
	for _, m := range n.members {
		if m.key == key {
			return m.value
		}
	}
	return nil
}

// index returns the i-th array element, or nil.
func (n *node) index(i int) *node {
	if n == nil || n.kind != kindArray || i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

// scalarString renders a string or number node as a string reference value.
func (n *node) scalarString() (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.kind {
	case kindString:
		return n.str, n.str != ""
	case kindNumber:
		return n.num.String(), true
	}
	return "", false
}
