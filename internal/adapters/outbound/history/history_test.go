package history_test

import (
	"testing"
	"time"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/history"
	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	first := domain.RunEntry{
		Timestamp: time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC),
		Kind:      "structure",
		Target:    "ABC123-20240115",
		Passed:    true,
	}
	second := domain.RunEntry{
		Timestamp: time.Date(2025, 2, 14, 11, 0, 0, 0, time.UTC),
		Kind:      "report",
		Target:    "REPORTS/final.pdf",
		Passed:    false,
		Issues:    3,
	}

	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, second))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestLoad_NoHistoryIsEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
