package shopping

import (
	"database/sql"
	"fmt"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zorros"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultTable is the SQLite table sessions are read from
const DefaultTable = "shopping"

/*
Source is a tabular source of session records with named columns
*/
type Source interface {
	// Frame reads the whole source into a string typed frame
	Frame() (dataframe.DataFrame, error)
}

/*
Input is a readable resource, iokit.File is the one for local files
*/
type Input interface {
	Open() (io.ReadCloser, error)
}

/*
Open selects source by the file extension:
.db, .sqlite and .sqlite3 files are SQLite databases, .xz files are compressed CSV,
anything else is plain CSV
*/
func Open(path string, table string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SQLite(path, table)
	case ".xz":
		return CSV(iokit.File(path), true)
	default:
		return CSV(iokit.File(path), false)
	}
}

// tokens are kept exactly as written, the loader converts them
func frameOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	}
}

type csvSource struct {
	input      Input
	compressed bool
}

/*
CSV is a comma separated source with header row, optionally xz compressed
*/
func CSV(input Input, compressed bool) Source {
	return csvSource{input, compressed}
}

func (s csvSource) Frame() (df dataframe.DataFrame, err error) {
	rd, err := s.input.Open()
	if err != nil {
		return df, zorros.Trace(err)
	}
	defer rd.Close()
	var r io.Reader = rd
	if s.compressed {
		if r, err = xz.NewReader(rd); err != nil {
			return df, zorros.Wrapf(err, "failed to open xz stream: %v", err.Error())
		}
	}
	return dataframe.ReadCSV(r, frameOptions()...), nil
}

type sqliteSource struct {
	path, table string
}

/*
SQLite reads all rows of the table, column names are the header
*/
func SQLite(path, table string) Source {
	if table == "" {
		table = DefaultTable
	}
	return sqliteSource{path, table}
}

func (s sqliteSource) Frame() (df dataframe.DataFrame, err error) {
	db, err := sql.Open("sqlite3", "file:"+s.path+"?mode=ro")
	if err != nil {
		return df, zorros.Trace(err)
	}
	defer db.Close()
	rows, err := db.Query("SELECT * FROM " + quote(s.table))
	if err != nil {
		return df, zorros.Wrapf(err, "failed to query table %v: %v", s.table, err.Error())
	}
	defer rows.Close()
	header, err := rows.Columns()
	if err != nil {
		return df, zorros.Trace(err)
	}
	records := [][]string{header}
	cells := make([]interface{}, len(header))
	ptrs := make([]interface{}, len(header))
	for i := range cells {
		ptrs[i] = &cells[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return df, zorros.Trace(err)
		}
		rec := make([]string, len(header))
		for i, c := range cells {
			rec[i] = token(c)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return df, zorros.Trace(err)
	}
	return dataframe.LoadRecords(records, frameOptions()...), nil
}

// token formats SQLite value the way it is written in CSV
func token(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(x)
	}
}

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
