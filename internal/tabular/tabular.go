// Package tabular exports the flat table view of a corpus as Arrow records
// and Parquet files.
package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/compress"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"

	latincorpus "github.com/jamesainslie/go-latincorpus"
)

const ParquetExt = ".parquet"

// Column names.
const (
	ColText   = "text"
	ColAuthor = "author"
	ColPeriod = "period"
	ColSource = "source"
	ColFile   = "file"
	ColConllu = "conllu"
)

// Schema is one row per deduplicated sentence; conllu holds the serialized
// original sentence.
var Schema = arrow.NewSchema([]arrow.Field{
	{Name: ColText, Type: arrow.BinaryTypes.String},
	{Name: ColAuthor, Type: arrow.BinaryTypes.String},
	{Name: ColPeriod, Type: arrow.BinaryTypes.String},
	{Name: ColSource, Type: arrow.BinaryTypes.String},
	{Name: ColFile, Type: arrow.BinaryTypes.String},
	{Name: ColConllu, Type: arrow.BinaryTypes.String},
}, nil)

// NewRecord builds an Arrow record of records. The caller releases it.
func NewRecord(mem memory.Allocator, records []latincorpus.Record) arrow.Record {
	b := array.NewRecordBuilder(mem, Schema)
	defer b.Release()

	cols := make([]*array.StringBuilder, len(Schema.Fields()))
	for i := range cols {
		cols[i] = b.Field(i).(*array.StringBuilder)
		cols[i].Reserve(len(records))
	}

	for _, r := range records {
		cols[0].Append(r.Text)
		cols[1].Append(r.Author)
		cols[2].Append(string(r.Period))
		cols[3].Append(r.Source.String())
		cols[4].Append(r.File)
		if r.Sentence != nil {
			cols[5].Append(r.Sentence.Serialize())
		} else {
			cols[5].AppendNull()
		}
	}

	return b.NewRecord()
}

// WriteParquet writes records to w as a single row group.
// The parquet writer closes w if it is an io.Closer.
func WriteParquet(w io.Writer, records []latincorpus.Record) error {
	mem := memory.NewGoAllocator()
	rec := NewRecord(mem, records)
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	fw, err := pqarrow.NewFileWriter(Schema, w, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("creating parquet writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("writing parquet record: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return nil
}

// WriteParquetFile writes records to a new Parquet file at path.
func WriteParquetFile(path string, records []latincorpus.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := WriteParquet(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
