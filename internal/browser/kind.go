package browser

import (
	"errors"
	"fmt"

	"github.com/conorfennell/knolbrowser/internal/column"
)

// ErrUnknownKind is returned by ParseKind for anything but "cards" or "notes".
var ErrUnknownKind = errors.New("unknown browser kind")

// Kind selects which table the browser shows.
type Kind int

const (
	Cards Kind = iota
	Notes
)

func (k Kind) String() string {
	if k == Notes {
		return "notes"
	}
	return "cards"
}

// ParseKind parses the text form of a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cards":
		return Cards, nil
	case "notes":
		return Notes, nil
	}
	return Cards, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

var (
	cardColumns = [...]column.Column{
		column.Question,
		column.Answer,
		column.CardDeck,
		column.CardDue,
		column.CardEase,
		column.CardLapses,
		column.CardInterval,
		column.CardMod,
		column.CardReps,
		column.CardTemplate,
		column.NoteCreation,
		column.NoteField,
		column.NoteMod,
		column.NoteTags,
		column.Notetype,
	}

	noteColumns = [...]column.Column{
		column.NoteCards,
		column.NoteCreation,
		column.NoteDue,
		column.NoteEase,
		column.NoteField,
		column.NoteInterval,
		column.NoteLapses,
		column.NoteMod,
		column.NoteReps,
		column.NoteTags,
		column.Notetype,
	}

	defaultCardColumns = [...]column.Column{
		column.NoteField,
		column.CardTemplate,
		column.CardDue,
		column.CardDeck,
	}

	defaultNoteColumns = [...]column.Column{
		column.NoteField,
		column.Notetype,
		column.NoteCards,
		column.NoteTags,
	}
)

// AvailableColumns returns the columns the kind can display, in declaration order.
func AvailableColumns(k Kind) []column.Column {
	if k == Notes {
		return append([]column.Column(nil), noteColumns[:]...)
	}
	return append([]column.Column(nil), cardColumns[:]...)
}

// DefaultColumns is the active selection used when the user never saved one.
func DefaultColumns(k Kind) []column.Column {
	var cols []column.Column
	if k == Notes {
		cols = defaultNoteColumns[:]
	} else {
		cols = defaultCardColumns[:]
	}
	return append([]column.Column(nil), cols...)
}
