// Package trie stores slash-separated names ("module/demo") so that a name
// can be matched against every prefix that was inserted.
package trie

import (
	"sort"
	"strings"
)

// Nodes live in one slice and refer to each other by index.

type nodeIndex int

const root nodeIndex = 0

type node struct {
	children map[string]nodeIndex
	isEnd    bool
}

// Trie is a segment trie. The zero value is not usable; call New.
type Trie struct {
	nodes []node
}

func New() *Trie {
	return &Trie{
		nodes: []node{{children: make(map[string]nodeIndex)}},
	}
}

func split(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool { return r == '/' })
}

func (t *Trie) newNode() nodeIndex {
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node{children: make(map[string]nodeIndex)})
	return idx
}

// Insert adds name. Empty names are ignored.
func (t *Trie) Insert(name string) {
	parts := split(name)
	if len(parts) == 0 {
		return
	}

	current := root
	for _, part := range parts {
		child, ok := t.nodes[current].children[part]
		if !ok {
			child = t.newNode()
			t.nodes[current].children[part] = child
		}
		current = child
	}
	t.nodes[current].isEnd = true
}

// Covers reports whether name or one of its segment prefixes was inserted.
// After Insert("stdlib"), both "stdlib" and "stdlib/math" are covered, but
// "stdlibx" is not.
func (t *Trie) Covers(name string) bool {
	current := root
	for _, part := range split(name) {
		child, ok := t.nodes[current].children[part]
		if !ok {
			return false
		}
		if t.nodes[child].isEnd {
			return true
		}
		current = child
	}
	return false
}

// Names returns every inserted name in sorted order.
func (t *Trie) Names() []string {
	var out []string
	t.walk(root, nil, &out)
	sort.Strings(out)
	return out
}

func (t *Trie) walk(idx nodeIndex, prefix []string, out *[]string) {
	n := t.nodes[idx]
	if n.isEnd {
		*out = append(*out, strings.Join(prefix, "/"))
	}
	for part, child := range n.children {
		t.walk(child, append(prefix[:len(prefix):len(prefix)], part), out)
	}
}
