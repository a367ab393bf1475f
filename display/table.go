package display

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Table is the store for display substitutions, shared between the
// installer and the host's rendering path. It maps a character to the
// string rendered in its place. Hosts with their own display machinery
// provide their own implementation, everyone else uses NewTable.
type Table interface {
	Put(code rune, repl string)
	Get(code rune) (string, bool)
	Clear(code rune)
}

// StandardTable is a Table over an ordered map, keyed by code point.
// It is not safe for concurrent use.
type StandardTable struct {
	entries *treemap.Map
}

var _ Table = &StandardTable{}

// NewTable creates an empty display table.
func NewTable() *StandardTable {
	return &StandardTable{
		entries: treemap.NewWith(func(a, b interface{}) int {
			ra, rb := a.(rune), b.(rune)
			switch {
			case ra < rb:
				return -1
			case ra > rb:
				return 1
			}
			return 0
		}),
	}
}

func (t *StandardTable) Put(code rune, repl string) {
	t.entries.Put(code, repl)
}

func (t *StandardTable) Get(code rune) (string, bool) {
	v, ok := t.entries.Get(code)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (t *StandardTable) Clear(code rune) {
	t.entries.Remove(code)
}

// Len returns the number of substitutions in the table.
func (t *StandardTable) Len() int {
	return t.entries.Size()
}

// Each walks the substitutions in ascending code point order.
func (t *StandardTable) Each(f func(code rune, repl string)) {
	it := t.entries.Iterator()
	for it.Next() {
		f(it.Key().(rune), it.Value().(string))
	}
}
