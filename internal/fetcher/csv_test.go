package fetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "leads.csv",
		"name,phone,address,rating,reviews_count,unrelated\n"+
			"Royal Events,099950 62979,\"MG Road, Kochi\",4.6,120,ignored\n"+
			"Dream Decorators,,,,,\n")

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Royal Events", records[0].Name)
	assert.Equal(t, "099950 62979", records[0].Phone)
	assert.Equal(t, "MG Road, Kochi", records[0].Address)
	assert.Equal(t, "4.6", records[0].Rating)
	assert.Equal(t, "120", records[0].ReviewsCount)
	assert.Equal(t, "Dream Decorators", records[1].Name)
	assert.Empty(t, records[1].Phone)
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadCSVs_StampsSourceFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "batch_a.csv", "name,phone\nRoyal Events,9995062979\n")
	b := writeFile(t, dir, "batch_b.csv", "name,phone\nShamy Caterers,\n")

	records, err := ReadCSVs([]string{a, b})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "batch_a.csv", records[0].SourceFile)
	assert.Equal(t, "batch_b.csv", records[1].SourceFile)
	assert.Equal(t, "Shamy Caterers", records[1].Name)
}
