package csvwriter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigo/cve2csv/internal/cve"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)

	defer func() {
		_ = f.Close()
	}()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestWrite_RoundTripsAwkwardFields(t *testing.T) {
	records := cve.Records{
		{ID: "CVE-2021-44228", Description: `Remote code execution, aka "Log4Shell"`},
		{ID: "CVE-2021-45046", Description: "Denial of service\nin some configurations"},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, records))

	rows := readRows(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, Header, rows[0])
	for i, record := range records {
		assert.Equal(t, []string{record.ID, record.Description}, rows[i+1])
	}
}

func TestWrite_EmptyRecordsWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, cve.Records{}))

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o600))

	require.NoError(t, Write(path, cve.Records{{ID: "CVE-2024-0001", Description: "fresh"}}))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"CVE-2024-0001", "fresh"}, rows[1])
}

func TestWrite_OutputIsWorldReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, cve.Records{{ID: "CVE-2024-0001", Description: "x"}}))

	info, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWrite_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := Write(path, cve.Records{{ID: "CVE-2024-0001", Description: "x"}})
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}
