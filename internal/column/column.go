// Package column defines the closed set of browser table columns and their
// stable persistence keys.
package column

import "fmt"

// Column identifies one displayable attribute of a card or note.
// New variants are appended; existing keys never change because saved
// column selections reference them.
type Column int

const (
	// Custom is the placeholder for add-on provided columns and for keys
	// this version does not know.
	Custom Column = iota
	Question
	Answer
	CardDeck
	CardDue
	CardEase
	CardLapses
	CardInterval
	CardMod
	CardReps
	CardTemplate
	NoteCards
	NoteCreation
	NoteDue
	NoteEase
	NoteField
	NoteInterval
	NoteLapses
	NoteMod
	NoteReps
	NoteTags
	Notetype

	numColumns
)

var keys = [numColumns]string{
	Custom:       "",
	Question:     "question",
	Answer:       "answer",
	CardDeck:     "deck",
	CardDue:      "cardDue",
	CardEase:     "cardEase",
	CardLapses:   "cardLapses",
	CardInterval: "cardIvl",
	CardMod:      "cardMod",
	CardReps:     "cardReps",
	CardTemplate: "template",
	NoteCards:    "noteCards",
	NoteCreation: "noteCrt",
	NoteDue:      "noteDue",
	NoteEase:     "noteEase",
	NoteField:    "noteFld",
	NoteInterval: "noteIvl",
	NoteLapses:   "noteLapses",
	NoteMod:      "noteMod",
	NoteReps:     "noteReps",
	NoteTags:     "noteTags",
	Notetype:     "note",
}

var byKey map[string]Column

func init() {
	byKey = make(map[string]Column, numColumns)
	for c := Custom; c < numColumns; c++ {
		k := keys[c]
		if c != Custom && k == "" {
			panic(fmt.Sprintf("column %d has no key", int(c)))
		}
		if prev, dup := byKey[k]; dup {
			panic(fmt.Sprintf("column key %q used by both %d and %d", k, int(prev), int(c)))
		}
		byKey[k] = c
	}
}

// All returns every defined column in declaration order.
func All() []Column {
	all := make([]Column, 0, numColumns)
	for c := Custom; c < numColumns; c++ {
		all = append(all, c)
	}
	return all
}

// Key returns the stable string key of c. Out-of-range values report the
// custom key.
func (c Column) Key() string {
	if c < 0 || c >= numColumns {
		return keys[Custom]
	}
	return keys[c]
}

// String implements fmt.Stringer.
func (c Column) String() string {
	return c.Key()
}

// Lookup resolves key to a column and reports whether key is known.
func Lookup(key string) (Column, bool) {
	c, ok := byKey[key]
	return c, ok
}

// Parse resolves key to a column, falling back to Custom for unknown keys
// so that selections saved by other versions keep loading.
func Parse(key string) Column {
	if c, ok := byKey[key]; ok {
		return c
	}
	return Custom
}

// MarshalText encodes the column as its key.
func (c Column) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

// UnmarshalText decodes a key. Unknown keys become Custom.
func (c *Column) UnmarshalText(text []byte) error {
	*c = Parse(string(text))
	return nil
}
