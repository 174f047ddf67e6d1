package domain

// Cell is one rendered value in a browser row.
type Cell struct {
	Text  string
	IsRTL bool // text should be laid out right-to-left
}

// Color is the highlight of a whole row. A row has exactly one color; the
// query layer decides precedence between marks, suspension and flags.
type Color int

const (
	ColorDefault Color = iota
	ColorMarked
	ColorSuspended
	ColorFlagRed
	ColorFlagOrange
	ColorFlagGreen
	ColorFlagBlue
)

// FontSpec is the font applied to the cell-font columns of a row.
type FontSpec struct {
	Name string
	Size uint32
}

// Row is the computed display data of one card or note. Cells follow the
// active column order.
type Row struct {
	Cells []Cell
	Color Color
	Font  FontSpec
}
