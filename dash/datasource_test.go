package dash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	charts "github.com/midbel/tabchart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sample = "\ufeffcity,population\nparis,\"2,102,650\"\nlyon\nmarseille,873076,extra\n"

func TestLocalData(t *testing.T) {
	tab, err := LocalData{Content: sample}.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "population"}, tab.Columns())
	assert.Equal(t, 3, tab.RowCount())
	assert.Equal(t, []string{"lyon"}, tab.Row(1))
	assert.Equal(t, []string{"marseille", "873076", "extra"}, tab.Row(2))

	cell, ok := tab.Cell(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2102650.0, charts.ParseNumber(cell))
}

func TestLocalDataEmpty(t *testing.T) {
	_, err := LocalData{}.Load(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)

	tab, err := LocalData{Content: "a,b\n"}.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, tab.RowCount())
}

func TestLocalFile(t *testing.T) {
	file := writeFile(t, "data.csv", "x;y\na;1\nb;2\n")

	tab, err := LocalFile{Path: file, Comma: ';'}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tab.Columns())
	assert.Equal(t, 2, tab.RowCount())

	_, err = LocalFile{Path: filepath.Join(t.TempDir(), "missing.csv")}.Load(context.Background())
	assert.Error(t, err)
}

func TestHttpFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Accept") != "text/csv" {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	src := HttpFile{
		Url:      srv.URL + "/cities.csv",
		Username: "admin",
		Password: "secret",
		Headers:  http.Header{"Accept": []string{"text/csv"}},
		Client:   srv.Client(),
	}
	tab, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, tab.RowCount())

	src.Password = "wrong"
	_, err = src.Load(context.Background())
	assert.Error(t, err)
}

func TestHttpFileCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sample))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := HttpFile{Url: srv.URL}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func createWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	f.SetCellValue(sheet, "A1", "fruit")
	f.SetCellValue(sheet, "B1", "count")
	f.SetCellValue(sheet, "A2", "apple")
	f.SetCellValue(sheet, "B2", 4)
	f.SetCellValue(sheet, "A3", "pear")
	f.SetCellValue(sheet, "B3", 2.5)

	_, err := f.NewSheet("other")
	require.NoError(t, err)
	f.SetCellValue("other", "A1", "name")

	file := filepath.Join(t.TempDir(), "fruits.xlsx")
	require.NoError(t, f.SaveAs(file))
	return file
}

func TestExcelFile(t *testing.T) {
	file := createWorkbook(t)

	tab, err := ExcelFile{Path: file}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fruit", "count"}, tab.Columns())
	assert.Equal(t, [][]string{{"apple", "4"}, {"pear", "2.5"}}, tab.Rows())

	tab, err = ExcelFile{Path: file, Sheet: "other"}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, tab.Columns())
	assert.Zero(t, tab.RowCount())

	_, err = ExcelFile{Path: file, Sheet: "missing"}.Load(context.Background())
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	tests := []struct {
		Location string
		Want     DataSource
	}{
		{Location: "data.csv", Want: LocalFile{Path: "data.csv"}},
		{Location: "dir/book.XLSX", Want: ExcelFile{Path: "dir/book.XLSX", Sheet: "s"}},
		{Location: "file:///tmp/data.csv", Want: LocalFile{Path: "/tmp/data.csv"}},
		{Location: "https://example.com/data.csv", Want: HttpFile{Url: "https://example.com/data.csv"}},
	}
	for _, tt := range tests {
		src, err := Open(tt.Location, "s")
		require.NoError(t, err, tt.Location)
		assert.Equal(t, tt.Want, src, tt.Location)
	}
	_, err := Open("ftp://example.com/data.csv", "")
	assert.ErrorIs(t, err, ErrScheme)
}

func TestSelectColumn(t *testing.T) {
	tab := charts.NewTable([]string{"Month", " Sales "}, nil)

	tests := []struct {
		Input string
		Want  int
	}{
		{Input: "0", Want: 0},
		{Input: " 1", Want: 1},
		{Input: "month", Want: 0},
		{Input: "SALES", Want: 1},
	}
	for _, tt := range tests {
		got, err := SelectColumn(tab, tt.Input)
		require.NoError(t, err, tt.Input)
		assert.Equal(t, tt.Want, got, tt.Input)
	}
	for _, str := range []string{"2", "-1", "profit"} {
		_, err := SelectColumn(tab, str)
		assert.ErrorIs(t, err, ErrIndex, str)
	}
}
