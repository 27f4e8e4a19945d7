package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCSV(t *testing.T) {
	doc := "empid,devloginname,appname\n1,john,app1\n2,jane,\n2.5,mike,app3\n"

	tbl, err := ReadCSV(strings.NewReader(doc))
	assert.NoError(t, err)
	assert.Equal(t, []string{"empid", "devloginname", "appname"}, tbl.Columns())
	assert.Equal(t, 3, tbl.NumRows())

	v, _ := tbl.Cell(0, "empid")
	assert.Equal(t, KindInt, v.Kind())
	assert.Equal(t, int64(1), v.AsInt())

	// Empty cell is null.
	v, _ = tbl.Cell(1, "appname")
	assert.True(t, v.IsNull())

	// Float-looking cell stays a float.
	v, _ = tbl.Cell(2, "empid")
	assert.Equal(t, KindFloat, v.Kind())

	v, _ = tbl.Cell(0, "devloginname")
	assert.Equal(t, KindString, v.Kind())
}

func TestReadCSV_NoHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tbl := MustNew([]string{"id", "uatloginname"})
	assert.NoError(t, tbl.AppendRow(Int(5), Str("tom")))
	assert.NoError(t, tbl.AppendRow(Null(), Str("lisa")))

	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, tbl))

	back, err := ReadCSV(&buf)
	assert.NoError(t, err)
	assert.Equal(t, tbl.Columns(), back.Columns())
	assert.Equal(t, 2, back.NumRows())

	v, _ := back.Cell(1, "id")
	assert.True(t, v.IsNull())
}
