// Package digest computes stable content hashes of column layouts.
package digest

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/conorfennell/knolbrowser/internal/wire"
)

// Normalize renders a column list as one line per column with every field in
// a fixed order, so equal layouts always produce equal text.
func Normalize(cols wire.BrowserColumns) string {
	lines := make([]string, len(cols.Columns))
	for i, c := range cols.Columns {
		lines[i] = strings.Join([]string{
			strconv.Quote(c.Key),
			strconv.Quote(c.Label),
			strconv.FormatBool(c.IsSortable),
			strconv.FormatBool(c.SortsReversed),
			strconv.FormatBool(c.UsesCellFont),
			strconv.Itoa(int(c.Alignment)),
		}, "\t")
	}
	// Quoted fields cannot contain a raw tab or newline.
	return strings.Join(lines, "\n")
}

// Hash returns the hex SHA-256 of the normalized column list.
func Hash(cols wire.BrowserColumns) string {
	sum := sha256.Sum256([]byte(Normalize(cols)))
	return fmt.Sprintf("%x", sum)
}

// ETag wraps Hash as a strong HTTP entity tag.
func ETag(cols wire.BrowserColumns) string {
	return `"` + Hash(cols) + `"`
}
