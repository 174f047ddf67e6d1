// Package browser derives the display metadata of browser table columns and
// assembles the per-kind column registries.
package browser

import (
	"github.com/conorfennell/knolbrowser/internal/column"
	"github.com/conorfennell/knolbrowser/internal/i18n"
	"golang.org/x/text/language"
)

// Localizer supplies labels and the language they are collated in.
// Implementations must be safe for concurrent reads.
type Localizer interface {
	Translate(id i18n.MessageID) string
	Language() language.Tag
}

// Alignment is the horizontal placement of cell text.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
)

func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "start"
}

// Descriptor is the display metadata of one column. It is derived on
// demand and never stored.
type Descriptor struct {
	Column        column.Column
	Label         string
	Sortable      bool
	SortsReversed bool
	UsesCellFont  bool
	Alignment     Alignment
}

// Key returns the persistence key of the described column.
func (d Descriptor) Key() string {
	return d.Column.Key()
}

// Describe builds the descriptor for c.
func Describe(c column.Column, l Localizer) Descriptor {
	return Descriptor{
		Column:        c,
		Label:         l.Translate(LabelID(c)),
		Sortable:      Sortable(c),
		SortsReversed: c == column.NoteField,
		UsesCellFont:  UsesCellFont(c),
		Alignment:     AlignmentOf(c),
	}
}

// Sortable reports whether the column is backed by stored data. Question,
// answer and add-on columns are rendered on demand and cannot be ordered.
func Sortable(c column.Column) bool {
	switch c {
	case column.Question, column.Answer, column.Custom:
		return false
	}
	return true
}

// UsesCellFont reports whether the column renders in the note's editor font.
func UsesCellFont(c column.Column) bool {
	switch c {
	case column.Question, column.Answer, column.NoteField:
		return true
	}
	return false
}

// AlignmentOf puts free text and names at the start and everything else
// (numbers, dates, states) in the center.
func AlignmentOf(c column.Column) Alignment {
	switch c {
	case column.Question,
		column.Answer,
		column.CardTemplate,
		column.CardDeck,
		column.NoteField,
		column.Notetype,
		column.NoteTags:
		return AlignStart
	}
	return AlignCenter
}

// LabelID maps a column to the catalog entry of its header label.
func LabelID(c column.Column) i18n.MessageID {
	switch c {
	case column.Question:
		return i18n.BrowsingQuestion
	case column.Answer:
		return i18n.BrowsingAnswer
	case column.CardDeck:
		return i18n.DecksDeck
	case column.CardDue, column.NoteDue:
		return i18n.StatisticsDueDate
	case column.CardEase:
		return i18n.BrowsingEase
	case column.CardInterval:
		return i18n.BrowsingInterval
	case column.CardLapses, column.NoteLapses:
		return i18n.SchedulingLapses
	case column.CardMod:
		return i18n.SearchCardModified
	case column.CardReps, column.NoteReps:
		return i18n.SchedulingReviews
	case column.CardTemplate:
		return i18n.BrowsingCard
	case column.NoteCards:
		return i18n.EditingCards
	case column.NoteCreation:
		return i18n.BrowsingCreated
	case column.NoteEase:
		return i18n.BrowsingAverageEase
	case column.NoteField:
		return i18n.BrowsingSortField
	case column.NoteInterval:
		return i18n.BrowsingAverageInterval
	case column.NoteMod:
		return i18n.SearchNoteModified
	case column.NoteTags:
		return i18n.EditingTags
	case column.Notetype:
		return i18n.BrowsingNote
	}
	return i18n.BrowsingAddon
}
