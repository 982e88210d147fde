package bincalc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinaryLines(t *testing.T) {
	t.Run("Skips lines that are not binary", func(t *testing.T) {
		got := ParseBinaryLines("abc\n101\n10\nxyz1")
		assert.Equal(t, []int64{5, 2}, got)
	})

	t.Run("Skips the maze header", func(t *testing.T) {
		got := ParseBinaryLines("3,4\r\n0000\r\n1111\r\n0000\r\n")
		assert.Equal(t, []int64{0, 15, 0}, got)
	})

	t.Run("Accepts a sign", func(t *testing.T) {
		assert.Equal(t, []int64{-3, 3}, ParseBinaryLines("-11\n+11"))
	})

	t.Run("Rejects values beyond 32 bits", func(t *testing.T) {
		tooWide := "1" + "00000000000000000000000000000000"
		assert.Empty(t, ParseBinaryLines(tooWide))
	})

	t.Run("Empty input yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseBinaryLines(""))
	})
}

func TestParseBinaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.in")
	require.NoError(t, os.WriteFile(path, []byte("2,2\n11\n01\n"), 0o600))

	got, err := ParseBinaryFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, got)

	_, err = ParseBinaryFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
