package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoader_JSON(t *testing.T) {
	path := writeDataset(t, "stores.json", `[
		{"id": "a", "name": "국밥집", "category": "한식"},
		{"name": "이름뿐인 집"}
	]`)

	records, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "국밥집", records[0].Name)
	assert.NotEmpty(t, records[0].SearchText)
	assert.Equal(t, "store-2", records[1].ID)
}

func TestLoader_JSONNotArray(t *testing.T) {
	path := writeDataset(t, "stores.json", `{"items": []}`)

	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestLoader_JSONNonObjectRows(t *testing.T) {
	path := writeDataset(t, "stores.json", `[{"name": "정상"}, "문자열", 42]`)

	records, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "정상", records[0].Name)
	assert.Equal(t, "store-2", records[1].ID)
	assert.Equal(t, "store-3", records[2].ID)
}

func TestLoader_CSV(t *testing.T) {
	csv := strings.Join([]string{
		"공개표시명,지역_시도,지역_시군구,주요리_대표",
		"국수나무,서울특별시,마포구,잔치국수/비빔국수",
		"밀밭칼국수,경기도,수원시,칼국수",
	}, "\n")
	path := writeDataset(t, "stores.csv", csv)

	records, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "국수나무", records[0].Name)
	assert.Equal(t, "마포구", records[0].Region.Sigungu)
	assert.Equal(t, []string{"잔치국수", "비빔국수"}, records[0].SignatureMenus)
	assert.Equal(t, "store-2", records[1].ID)
}

func TestLoader_CSVWithBOM(t *testing.T) {
	csv := "\ufeffname,category\n보리밥집,한식\n"
	path := writeDataset(t, "stores.csv", csv)

	records, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "보리밥집", records[0].Name)
	assert.Equal(t, "한식", records[0].Category)
}

func TestLoader_CSVShortRow(t *testing.T) {
	csv := "name,category,address\n반쪽자리집,한식\n"
	path := writeDataset(t, "stores.csv", csv)

	records, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "반쪽자리집", records[0].Name)
	assert.Empty(t, records[0].Address)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.json")).Load()
	assert.Error(t, err)
}
