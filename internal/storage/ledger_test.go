package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_RecordAndHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ledger, err := OpenLedger(path)
	require.NoError(t, err)
	defer ledger.Close()

	ctx := context.Background()
	require.NoError(t, ledger.Record(ctx, Entry{
		Number: 1, Year: 2026, Month: 3, Filename: "Invoice_2026_03_#1.pdf",
	}))
	require.NoError(t, ledger.Record(ctx, Entry{
		Number: 2, Year: 2026, Month: 4, Filename: "Invoice_2026_04_#2.pdf",
	}))

	entries, err := ledger.History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Number)
	assert.Equal(t, 2026, entries[0].Year)
	assert.Equal(t, 3, entries[0].Month)
	assert.Equal(t, "Invoice_2026_03_#1.pdf", entries[0].Filename)
	assert.Equal(t, 2, entries[1].Number)
}

func TestLedger_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	ctx := context.Background()

	ledger, err := OpenLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Record(ctx, Entry{
		Number: 1, Year: 2026, Month: 3, Filename: "Invoice_2026_03_#1.pdf",
	}))
	require.NoError(t, ledger.Close())

	// Migrations must be a no-op the second time around.
	ledger, err = OpenLedger(path)
	require.NoError(t, err)
	defer ledger.Close()

	entries, err := ledger.History(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOpenLedger_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.db")
	ledger, err := OpenLedger(path)
	require.NoError(t, err)
	require.NoError(t, ledger.Close())
	assert.FileExists(t, path)
}
