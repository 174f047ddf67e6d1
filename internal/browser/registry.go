package browser

import (
	"slices"

	"github.com/conorfennell/knolbrowser/internal/column"
	"golang.org/x/text/collate"
)

// Registry lists the columns available to each browser kind.
type Registry struct {
	loc Localizer
}

// NewRegistry returns a registry labelling columns with loc.
func NewRegistry(loc Localizer) *Registry {
	return &Registry{loc: loc}
}

// AllCardColumns describes every card column, ordered by label.
func (r *Registry) AllCardColumns() []Descriptor {
	return r.sorted(AvailableColumns(Cards))
}

// AllNoteColumns describes every note column, ordered by label.
func (r *Registry) AllNoteColumns() []Descriptor {
	return r.sorted(AvailableColumns(Notes))
}

// Columns dispatches to AllCardColumns or AllNoteColumns.
func (r *Registry) Columns(k Kind) []Descriptor {
	if k == Notes {
		return r.AllNoteColumns()
	}
	return r.AllCardColumns()
}

// Describe builds descriptors for cols, keeping their order.
func (r *Registry) Describe(cols []column.Column) []Descriptor {
	out := make([]Descriptor, len(cols))
	for i, c := range cols {
		out[i] = Describe(c, r.loc)
	}
	return out
}

func (r *Registry) sorted(cols []column.Column) []Descriptor {
	out := r.Describe(cols)
	// Collators keep internal buffers, so each call gets its own.
	coll := collate.New(r.loc.Language())
	slices.SortStableFunc(out, func(a, b Descriptor) int {
		return coll.CompareString(a.Label, b.Label)
	})
	return out
}
