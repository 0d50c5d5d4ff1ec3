package barcode

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Columns is the column order of the sorted output.
var Columns = []string{"bci", "sequence", "uid", "well", "stype"}

var requiredColumns = []string{"well", "bci"}

// Record is one barcode row.
type Record struct {
	BCI      int
	Sequence string
	UID      string
	Well     string
	SType    string
}

// ReadRecords parses a barcode CSV with a header row.
// Every row needs well and bci; sequence, uid and stype are kept when present.
// An empty file or a bare header gives no records.
func ReadRecords(r io.Reader) ([]Record, error) {
	var reader = csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var index = make(map[string]int)
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	var field = func(row []string, name string) string {
		if i, ok := index[name]; ok {
			return row[i]
		}
		return ""
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		for _, name := range requiredColumns {
			if _, ok := index[name]; !ok {
				return nil, fmt.Errorf("line %d: missing field %q", line, name)
			}
		}
		bci, err := strconv.Atoi(strings.TrimSpace(field(row, "bci")))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad bci %q: %w", line, field(row, "bci"), err)
		}
		records = append(records, Record{
			BCI:      bci,
			Sequence: field(row, "sequence"),
			UID:      field(row, "uid"),
			Well:     field(row, "well"),
			SType:    field(row, "stype"),
		})
	}
	return records, nil
}

// Normalize rewrites every well label with NormalizeWell.
func Normalize(records []Record) {
	for i := range records {
		records[i].Well = NormalizeWell(records[i].Well)
	}
}

// Sort orders records by well, then numerically by bci. Ties keep input order.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Well != records[j].Well {
			return records[i].Well < records[j].Well
		}
		return records[i].BCI < records[j].BCI
	})
}

// Renumber sets bci to the 1-based row position.
func Renumber(records []Record) {
	for i := range records {
		records[i].BCI = i + 1
	}
}

// WriteRecords writes the header and records in Columns order.
func WriteRecords(w io.Writer, records []Record, crlf bool) error {
	var writer = csv.NewWriter(w)
	writer.UseCRLF = crlf
	if err := writer.Write(Columns); err != nil {
		return err
	}
	for _, record := range records {
		err := writer.Write([]string{
			strconv.Itoa(record.BCI),
			record.Sequence,
			record.UID,
			record.Well,
			record.SType,
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
