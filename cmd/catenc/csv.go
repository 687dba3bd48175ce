package main

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"

	"github.com/arloliu/catenc/column"
	"github.com/arloliu/catenc/pipeline"
)

const csvChunkSize = 4096

// openCSV opens path for reading; "-" reads stdin.
func openCSV(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path) //nolint:gosec // path is a user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}

// readHeader reads the header row of r. The returned reader replays every consumed
// byte before the rest of r, so the header can be parsed again downstream.
func readHeader(r io.Reader) ([]string, io.Reader, error) {
	var consumed bytes.Buffer
	header, err := stdcsv.NewReader(io.TeeReader(r, &consumed)).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("csv input has no header row")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	return header, io.MultiReader(&consumed, r), nil
}

// newCSVReader returns a reader typing the bound source columns as declared. Every
// other column is read as a string.
func newCSVReader(r io.Reader, bindings []column.Binding) (*csv.Reader, error) {
	types := make(map[string]arrow.DataType, len(bindings))
	for _, b := range bindings {
		dt, err := pipeline.ArrowType(b.Type)
		if err != nil {
			return nil, err
		}
		types[b.SourceName()] = dt
	}

	header, replay, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		dt, ok := types[name]
		if !ok {
			dt = arrow.BinaryTypes.String
		}
		fields[i] = arrow.Field{Name: name, Type: dt, Nullable: true}
	}

	return csv.NewReader(replay, arrow.NewSchema(fields, nil),
		csv.WithHeader(true),
		csv.WithChunk(csvChunkSize),
	), nil
}

// readTable reads every record of the CSV input into a table. Input without data
// rows gives an empty table.
func readTable(r io.Reader, bindings []column.Binding) (arrow.Table, error) {
	reader, err := newCSVReader(r, bindings)
	if err != nil {
		return nil, err
	}
	defer reader.Release()

	var recs []arrow.Record
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()

	for reader.Next() {
		rec := reader.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return array.NewTableFromRecords(reader.Schema(), recs), nil
}
