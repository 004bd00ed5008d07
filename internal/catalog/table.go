// internal/catalog/table.go
package catalog

// Entry is one name/code pair of a parameter table.
type Entry[K comparable] struct {
	Name string
	Code K
}

// Table is an immutable name <-> code mapping built from one canonical
// slice. Both views are derived once at construction.
type Table[K comparable] struct {
	entries []Entry[K]
	byName  map[string]K
	byCode  map[K]string
}

// NewTable builds a table. Duplicate names or codes keep the first entry.
func NewTable[K comparable](entries ...Entry[K]) *Table[K] {
	t := &Table[K]{
		entries: entries,
		byName:  make(map[string]K, len(entries)),
		byCode:  make(map[K]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := t.byName[e.Name]; !ok {
			t.byName[e.Name] = e.Code
		}
		if _, ok := t.byCode[e.Code]; !ok {
			t.byCode[e.Code] = e.Name
		}
	}
	return t
}

// Code looks up the code for a name.
func (t *Table[K]) Code(name string) (K, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Name looks up the name for a code.
func (t *Table[K]) Name(code K) (string, bool) {
	n, ok := t.byCode[code]
	return n, ok
}

// Entries returns a copy of the canonical slice in declaration order.
func (t *Table[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table[K]) Len() int { return len(t.entries) }
