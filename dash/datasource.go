package dash

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	charts "github.com/midbel/tabchart"
	"github.com/xuri/excelize/v2"
)

type DataSource interface {
	Load(context.Context) (*charts.Table, error)
}

// Open selects the source able to read location. Locations with an http or
// https scheme are fetched, xlsx workbooks are read with their first sheet
// unless one is given and everything else is read as a CSV file.
func Open(location, sheet string) (DataSource, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		return HttpFile{Url: location}, nil
	case "", "file":
	default:
		return nil, fmt.Errorf("%s: %w", u.Scheme, ErrScheme)
	}
	file := u.Path
	if u.Scheme == "" {
		file = location
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ExcelFile{Path: file, Sheet: sheet}, nil
	default:
		return LocalFile{Path: file}, nil
	}
}

type LocalData struct {
	Content string
}

func (d LocalData) Load(_ context.Context) (*charts.Table, error) {
	return readTable(strings.NewReader(d.Content), 0)
}

type LocalFile struct {
	Path  string
	Comma rune
}

func (f LocalFile) Load(_ context.Context) (*charts.Table, error) {
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	tab, err := readTable(r, f.Comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return tab, nil
}

type HttpFile struct {
	Url string

	Method   string
	Body     string
	Username string
	Password string
	Headers  http.Header
	Client   *http.Client
}

func (f HttpFile) Load(ctx context.Context) (*charts.Table, error) {
	r, err := f.readFrom(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	tab, err := readTable(r, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Url, err)
	}
	return tab, nil
}

func (f HttpFile) readFrom(ctx context.Context) (io.ReadCloser, error) {
	method := f.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if f.Body != "" {
		body = strings.NewReader(f.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, f.Url, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range f.Headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if f.Username != "" {
		req.SetBasicAuth(f.Username, f.Password)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("%s: request does not end with success result code (%s)", f.Url, res.Status)
	}
	return res.Body, nil
}

type ExcelFile struct {
	Path  string
	Sheet string
}

func (f ExcelFile) Load(_ context.Context) (*charts.Table, error) {
	wb, err := excelize.OpenFile(f.Path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet := f.Sheet
	if sheet == "" {
		list := wb.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("%s: %w", f.Path, ErrEmpty)
		}
		sheet = list[0]
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", f.Path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s[%s]: %w", f.Path, sheet, ErrEmpty)
	}
	return charts.NewTable(rows[0], rows[1:]), nil
}

// readTable reads a CSV document whose first record is the header. Records
// may have any number of fields.
func readTable(r io.Reader, comma rune) (*charts.Table, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.LazyQuotes = true
	if comma != 0 {
		rs.Comma = comma
	}
	header, err := rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	var rows [][]string
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return charts.NewTable(header, rows), nil
}
