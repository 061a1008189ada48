package demoserver

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func rawRows(t *testing.T, rows ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = json.RawMessage(r)
	}
	return out
}

func TestWriteCSV_KeepsFirstRowOrder(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, rawRows(t,
		`{"title":"A","price":"¥1.00","link":"https://a"}`,
		`{"link":"https://b","title":"B"}`,
	))
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, utf8BOM), "missing BOM")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, utf8BOM), "\n"), "\n")
	assert.Equal(t, []string{
		"title,price,link",
		"A,¥1.00,https://a",
		"B,,https://b",
	}, lines)
}

func TestWriteCSV_QuotesAndScalars(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, rawRows(t,
		`{"name":"a, b","quote":"say \"hi\"","n":3.5,"ok":true,"none":null,"tags":["x","y"]}`,
	))
	require.NoError(t, err)

	out := strings.TrimPrefix(buf.String(), utf8BOM)
	assert.Contains(t, out, `"a, b","say ""hi""",3.5,true,,"[""x"",""y""]"`)
}

func TestWriteXLSX_SameColumnsAsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, rawRows(t,
		`{"name":"a, b","n":3.5,"ok":true,"none":null}`,
	))
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsxSheet}, f.GetSheetList())
	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"name", "n", "ok", "none"}, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 3)
	assert.Equal(t, []string{"a, b", "3.5", "true"}, rows[1][:3])
	for _, cell := range rows[1][3:] {
		assert.Empty(t, cell)
	}
}

func TestWriteCSV_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteCSV(&buf, nil), ErrNoRows)
	assert.ErrorIs(t, WriteXLSX(&buf, nil), ErrNoRows)
	assert.Error(t, WriteCSV(&buf, rawRows(t, `["not","an","object"]`)))
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, defaultCSVFilename, attachmentName("  ", defaultCSVFilename))
	assert.Equal(t, defaultXLSXFilename, attachmentName("", defaultXLSXFilename))
	assert.Equal(t, "results.csv", attachmentName("results.csv", defaultCSVFilename))
	assert.Equal(t, "_etc_passwd_x_.csv", attachmentName(`/etc/passwd"x".csv`, defaultCSVFilename))
}
