package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	db := filepath.Join(t.TempDir(), "unused.db")

	testCases := []struct {
		name     string
		args     []string
		expected int
	}{
		{name: "print cards", args: []string{"--db", db, "--print", "cards"}, expected: 0},
		{name: "print notes in german", args: []string{"--db", db, "--locale", "de", "--print", "notes"}, expected: 0},
		{name: "unknown kind", args: []string{"--db", db, "--print", "decks"}, expected: 1},
		{name: "invalid config", args: []string{"--db", db, "--log-level", "loud", "--print", "cards"}, expected: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, run(tc.args))
		})
	}
}
