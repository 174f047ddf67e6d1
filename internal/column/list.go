package column

// ParseList converts a persisted, ordered list of keys into columns.
// Order and length are preserved; unknown keys become Custom.
func ParseList(keys []string) []Column {
	cols := make([]Column, len(keys))
	for i, k := range keys {
		cols[i] = Parse(k)
	}
	return cols
}
