// Package wire holds the JSON shapes exchanged with the browser frontend.
package wire

import (
	"github.com/conorfennell/knolbrowser/internal/browser"
	"github.com/conorfennell/knolbrowser/internal/domain"
)

// Alignment codes.
const (
	AlignmentStart  int32 = 0
	AlignmentCenter int32 = 1
)

// Color codes.
const (
	ColorDefault    int32 = 0
	ColorMarked     int32 = 1
	ColorSuspended  int32 = 2
	ColorFlagRed    int32 = 3
	ColorFlagOrange int32 = 4
	ColorFlagGreen  int32 = 5
	ColorFlagBlue   int32 = 6
)

// Column describes one column header.
type Column struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	IsSortable    bool   `json:"isSortable"`
	SortsReversed bool   `json:"sortsReversed"`
	UsesCellFont  bool   `json:"usesCellFont"`
	Alignment     int32  `json:"alignment"`
}

// BrowserColumns is an ordered column list.
type BrowserColumns struct {
	Columns []Column `json:"columns"`
}

// Cell is one rendered value.
type Cell struct {
	Text  string `json:"text"`
	IsRTL bool   `json:"isRtl"`
}

// BrowserRow is one displayed card or note.
type BrowserRow struct {
	Cells    []Cell `json:"cells"`
	Color    int32  `json:"color"`
	FontName string `json:"fontName"`
	FontSize uint32 `json:"fontSize"`
}

// EncodeColumns converts descriptors, keeping their order.
func EncodeColumns(descs []browser.Descriptor) BrowserColumns {
	cols := make([]Column, len(descs))
	for i, d := range descs {
		cols[i] = Column{
			Key:           d.Key(),
			Label:         d.Label,
			IsSortable:    d.Sortable,
			SortsReversed: d.SortsReversed,
			UsesCellFont:  d.UsesCellFont,
			Alignment:     alignmentCode(d.Alignment),
		}
	}
	return BrowserColumns{Columns: cols}
}

func alignmentCode(a browser.Alignment) int32 {
	if a == browser.AlignCenter {
		return AlignmentCenter
	}
	return AlignmentStart
}

// EncodeRow reshapes a computed row. Cells are neither reordered nor checked
// against the active columns.
func EncodeRow(row domain.Row) BrowserRow {
	cells := make([]Cell, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = Cell{Text: c.Text, IsRTL: c.IsRTL}
	}
	return BrowserRow{
		Cells:    cells,
		Color:    ColorCode(row.Color),
		FontName: row.Font.Name,
		FontSize: row.Font.Size,
	}
}

// EncodeRows encodes each row in order.
func EncodeRows(rows []domain.Row) []BrowserRow {
	out := make([]BrowserRow, len(rows))
	for i, r := range rows {
		out[i] = EncodeRow(r)
	}
	return out
}

// ColorCode maps a row color to its wire code. Unknown colors encode as default.
func ColorCode(c domain.Color) int32 {
	switch c {
	case domain.ColorMarked:
		return ColorMarked
	case domain.ColorSuspended:
		return ColorSuspended
	case domain.ColorFlagRed:
		return ColorFlagRed
	case domain.ColorFlagOrange:
		return ColorFlagOrange
	case domain.ColorFlagGreen:
		return ColorFlagGreen
	case domain.ColorFlagBlue:
		return ColorFlagBlue
	}
	return ColorDefault
}

// DomainCells converts the wire cells back into domain cells.
func (r BrowserRow) DomainCells() []domain.Cell {
	cells := make([]domain.Cell, len(r.Cells))
	for i, c := range r.Cells {
		cells[i] = domain.Cell{Text: c.Text, IsRTL: c.IsRTL}
	}
	return cells
}
