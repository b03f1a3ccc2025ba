package appjwt

import (
	"bytes"
	"encoding/json"
)

// PathOptions carries the per-path grant options serialized into the acl
// claim. The only key consumers currently interpret is "methods" (a list of
// HTTP verb strings), but arbitrary additional keys pass through verbatim.
type PathOptions map[string]any

// Methods builds a PathOptions restricting a path grant to the given HTTP
// verbs.
func Methods(verbs ...string) PathOptions {
	return PathOptions{"methods": verbs}
}

// PathEntry is one path grant for SetPaths: either a bare path (nil Options,
// grant with no restrictions) or a path with explicit options.
type PathEntry struct {
	Path    string
	Options PathOptions
}

// Path builds a bare path grant with no options.
func Path(path string) PathEntry {
	return PathEntry{Path: path}
}

// PathWith builds a path grant with explicit options.
func PathWith(path string, opts PathOptions) PathEntry {
	return PathEntry{Path: path, Options: opts}
}

// acl is the ordered path-grant collection behind the acl claim. Iteration
// and serialization follow insertion order; re-adding an existing path
// overwrites its options in place.
type acl struct {
	order []string
	opts  map[string]PathOptions
}

func (a *acl) add(path string, opts PathOptions) {
	if opts == nil {
		opts = PathOptions{}
	}
	if a.opts == nil {
		a.opts = make(map[string]PathOptions)
	}
	if _, ok := a.opts[path]; !ok {
		a.order = append(a.order, path)
	}
	a.opts[path] = opts
}

func (a *acl) reset() {
	a.order = nil
	a.opts = nil
}

func (a *acl) len() int {
	return len(a.order)
}

func (a *acl) entries() []PathEntry {
	out := make([]PathEntry, 0, len(a.order))
	for _, path := range a.order {
		out = append(out, PathEntry{Path: path, Options: a.opts[path]})
	}
	return out
}

// MarshalJSON renders {"paths":{<path>:<options>,...}} with paths in
// insertion order. Every options value serializes as a JSON object, {} when
// empty, so consumers can always dereference fields like "methods" without
// null checks. encoding/json sorts plain map keys, which is why this is a
// hand-rolled encoder over an ordered collection.
func (a acl) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"paths":{`)
	for i, path := range a.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		opts := a.opts[path]
		if opts == nil {
			opts = PathOptions{}
		}
		val, err := json.Marshal(opts)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}
