package input

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCSVReaderBasic(t *testing.T) {
	path := writeTemp(t, "targets.csv", []byte("id,target_name\n1,histamine receptor (h3)\n2,BRAF V600E\n"))

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "target_name"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "histamine receptor (h3)"}, table.Rows[0])
	assert.Equal(t, []string{"2", "BRAF V600E"}, table.Rows[1])
}

func TestCSVReaderDelimiterSniffing(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"semicolon", "id;target_name\n1;dopamine d2 receptor\n"},
		{"tab", "id\ttarget_name\n1\tdopamine d2 receptor\n"},
		{"pipe", "id|target_name\n1|dopamine d2 receptor\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "targets.txt", []byte(tt.data))

			var r CSVReader
			table, err := r.Read(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"id", "target_name"}, table.Columns)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, []string{"1", "dopamine d2 receptor"}, table.Rows[0])
		})
	}
}

func TestCSVReaderForcedDelimiter(t *testing.T) {
	// The header contains more commas than semicolons; forcing wins.
	path := writeTemp(t, "targets.csv", []byte("id;a,b,c\n1;x,y,z\n"))

	r := CSVReader{Delimiter: ';'}
	table, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "a,b,c"}, table.Columns)
}

func TestCSVReaderQuotedFields(t *testing.T) {
	path := writeTemp(t, "targets.csv",
		[]byte("id,target_name\n1,\"receptor, type 2\"\n2,\"say \"\"hi\"\"\"\n"))

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "receptor, type 2", table.Rows[0][1])
	assert.Equal(t, `say "hi"`, table.Rows[1][1])
}

func TestCSVReaderGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("target_name\nampa receptor\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"target_name"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "ampa receptor", table.Rows[0][0])
}

func TestCSVReaderBOM(t *testing.T) {
	path := writeTemp(t, "targets.csv", append([]byte{0xef, 0xbb, 0xbf}, []byte("target_name\nbraf\n")...))

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"target_name"}, table.Columns)
}

func TestCSVReaderCP1251Fallback(t *testing.T) {
	// 0xf0 0xe5 ... is "рецептор" in cp1251 and invalid UTF-8.
	cp1251 := []byte{0xf0, 0xe5, 0xf6, 0xe5, 0xef, 0xf2, 0xee, 0xf0}
	data := append([]byte("target_name\n"), cp1251...)
	data = append(data, '\n')
	path := writeTemp(t, "targets.csv", data)

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "рецептор", table.Rows[0][0])
}

func TestCSVReaderCRLF(t *testing.T) {
	path := writeTemp(t, "targets.csv", []byte("id,target_name\r\n1,braf\r\n"))

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "target_name"}, table.Columns)
	assert.Equal(t, []string{"1", "braf"}, table.Rows[0])
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ';', SniffDelimiter("id;target_name;source"))
	assert.Equal(t, '\t', SniffDelimiter("id\ttarget_name"))
	assert.Equal(t, ',', SniffDelimiter("id,target_name"))
	assert.Equal(t, ',', SniffDelimiter("single_column"))
}

func TestTableColumn(t *testing.T) {
	table := &Table{Columns: []string{"id", "target_name"}}

	idx, err := table.Column("target_name")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = table.Column("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id, target_name")
}

func TestCSVReaderEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", nil)

	var r CSVReader
	table, err := r.Read(path)
	require.NoError(t, err)
	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestCSVReaderUnsupportedEncoding(t *testing.T) {
	path := writeTemp(t, "targets.csv", []byte("a\n"))

	r := CSVReader{Encoding: "ebcdic"}
	_, err := r.Read(path)
	require.Error(t, err)
}
