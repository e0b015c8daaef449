package scenetree

// Node represents one entry in the scene hierarchy.
type Node struct {
	Name     string
	Type     string
	Parent   string // full path of the parent node, empty for the root
	FullPath string
}

// PropertySet holds the key/value overrides of a single node. Keys keep
// the order they were first seen in; setting an existing key replaces its
// value in place.
type PropertySet struct {
	keys   []string
	values map[string]string
}

func (p *PropertySet) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *PropertySet) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *PropertySet) Keys() []string {
	return p.keys
}

func (p *PropertySet) Len() int {
	return len(p.keys)
}

// Properties maps a node name to its property overrides. Lookups are by
// name alone, so same-name nodes in different subtrees share an entry.
type Properties map[string]*PropertySet
