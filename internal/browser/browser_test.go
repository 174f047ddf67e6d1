package browser

import (
	"slices"
	"testing"

	"github.com/conorfennell/knolbrowser/internal/column"
	"github.com/conorfennell/knolbrowser/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// idLocalizer labels every column with its message id.
type idLocalizer struct{}

func (idLocalizer) Translate(id i18n.MessageID) string { return string(id) }
func (idLocalizer) Language() language.Tag { return language.English }

func catalogLocalizer(t *testing.T, locale string) Localizer {
	t.Helper()
	c, err := i18n.NewCatalog()
	require.NoError(t, err)
	return c.Localizer(locale)
}

func TestDescribeRules(t *testing.T) {
	for _, c := range column.All() {
		d := Describe(c, idLocalizer{})

		unsortable := c == column.Question || c == column.Answer || c == column.Custom
		assert.Equal(t, !unsortable, d.Sortable, "sortable %q", c)

		assert.Equal(t, c == column.NoteField, d.SortsReversed, "sortsReversed %q", c)

		cellFont := c == column.Question || c == column.Answer || c == column.NoteField
		assert.Equal(t, cellFont, d.UsesCellFont, "usesCellFont %q", c)

		assert.Equal(t, c.Key(), d.Key())
		assert.Equal(t, string(LabelID(c)), d.Label)
	}
}

func TestAlignment(t *testing.T) {
	testCases := []struct {
		column   column.Column
		expected Alignment
	}{
		{column.Question, AlignStart},
		{column.Answer, AlignStart},
		{column.CardTemplate, AlignStart},
		{column.CardDeck, AlignStart},
		{column.NoteField, AlignStart},
		{column.Notetype, AlignStart},
		{column.NoteTags, AlignStart},
		{column.CardDue, AlignCenter},
		{column.CardEase, AlignCenter},
		{column.NoteCreation, AlignCenter},
		{column.NoteCards, AlignCenter},
		{column.Custom, AlignCenter},
	}

	for _, tc := range testCases {
		t.Run(tc.column.Key(), func(t *testing.T) {
			assert.Equal(t, tc.expected, AlignmentOf(tc.column))
		})
	}
}

func TestEveryColumnHasEnglishLabel(t *testing.T) {
	loc := catalogLocalizer(t, "en")
	for _, c := range column.All() {
		d := Describe(c, loc)
		assert.NotEqual(t, string(LabelID(c)), d.Label, "column %q", c)
	}
	assert.Equal(t, "Add-on", Describe(column.Custom, loc).Label)
}

func TestRegistrySortedByLabel(t *testing.T) {
	for _, locale := range []string{"en", "de", "fr"} {
		t.Run(locale, func(t *testing.T) {
			loc := catalogLocalizer(t, locale)
			reg := NewRegistry(loc)
			coll := collate.New(loc.Language())

			for _, descs := range [][]Descriptor{reg.AllCardColumns(), reg.AllNoteColumns()} {
				assert.True(t, slices.IsSortedFunc(descs, func(a, b Descriptor) int {
					return coll.CompareString(a.Label, b.Label)
				}), "labels not sorted: %v", labels(descs))
			}
		})
	}
}

func TestRegistryUsesLocaleCollation(t *testing.T) {
	descs := NewRegistry(catalogLocalizer(t, "de")).AllCardColumns()
	got := labels(descs)

	// Byte order would put "Fehlschläge" before "Fällig".
	assert.Less(t, slices.Index(got, "Fällig"), slices.Index(got, "Fehlschläge"))
}

func TestRegistryEnglishOrder(t *testing.T) {
	reg := NewRegistry(catalogLocalizer(t, "en"))
	assert.Equal(t, []string{
		"Avg. Ease",
		"Avg. Interval",
		"Cards",
		"Created",
		"Due",
		"Lapses",
		"Note",
		"Note Modified",
		"Reviews",
		"Sort Field",
		"Tags",
	}, labels(reg.AllNoteColumns()))
}

func TestRegistryContents(t *testing.T) {
	reg := NewRegistry(idLocalizer{})

	testCases := []struct {
		name  string
		descs []Descriptor
		count int
	}{
		{name: "cards", descs: reg.AllCardColumns(), count: 15},
		{name: "notes", descs: reg.AllNoteColumns(), count: 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Len(t, tc.descs, tc.count)

			seen := make(map[string]bool)
			var tags *Descriptor
			for i, d := range tc.descs {
				assert.False(t, seen[d.Key()], "duplicate key %q", d.Key())
				seen[d.Key()] = true
				assert.NotEqual(t, column.Custom, d.Column)
				if d.Column == column.NoteTags {
					tags = &tc.descs[i]
				}
			}

			require.NotNil(t, tags)
			assert.True(t, tags.Sortable)
			assert.False(t, tags.UsesCellFont)
			assert.Equal(t, AlignStart, tags.Alignment)
		})
	}
}

func TestColumnsDispatch(t *testing.T) {
	reg := NewRegistry(idLocalizer{})
	assert.Equal(t, reg.AllCardColumns(), reg.Columns(Cards))
	assert.Equal(t, reg.AllNoteColumns(), reg.Columns(Notes))
}

func TestRegistryDescribeKeepsOrder(t *testing.T) {
	reg := NewRegistry(idLocalizer{})
	cols := column.ParseList([]string{"noteTags", "bogus", "question"})
	descs := reg.Describe(cols)
	require.Len(t, descs, 3)
	assert.Equal(t, column.NoteTags, descs[0].Column)
	assert.Equal(t, column.Custom, descs[1].Column)
	assert.Equal(t, column.Question, descs[2].Column)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("notes")
	require.NoError(t, err)
	assert.Equal(t, Notes, k)
	assert.Equal(t, "notes", k.String())

	k, err = ParseKind("cards")
	require.NoError(t, err)
	assert.Equal(t, Cards, k)

	_, err = ParseKind("decks")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDefaultColumnsAreAvailable(t *testing.T) {
	for _, k := range []Kind{Cards, Notes} {
		avail := AvailableColumns(k)
		defaults := DefaultColumns(k)
		assert.NotEmpty(t, defaults)
		for _, c := range defaults {
			assert.Contains(t, avail, c, "%s default %q", k, c)
		}

		// Callers get copies.
		defaults[0] = column.Custom
		assert.NotEqual(t, column.Custom, DefaultColumns(k)[0])
	}
}

func labels(descs []Descriptor) []string {
	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = d.Label
	}
	return out
}
