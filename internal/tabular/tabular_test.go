package tabular

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	latincorpus "github.com/jamesainslie/go-latincorpus"
	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/conllu"
)

func testRecords() []latincorpus.Record {
	return []latincorpus.Record{
		{
			Text:   "Gallia est omnis divisa in partes tres.",
			Author: "Caesar",
			Period: attribution.Classical,
			Source: attribution.Perseus,
			File:   "data/Perseus/la_perseus-ud-test.conllu",
			Sentence: &conllu.Sentence{
				Metadata: []conllu.Metadata{{Key: "text", Value: "Gallia est omnis divisa in partes tres.", HasValue: true}},
			},
		},
		{
			Text:   "Utrum Deus sit.",
			Author: "Aquinas",
			Period: attribution.Medieval,
			Source: attribution.ITTB,
			File:   "data/ITTB/la_ittb-ud-test.conllu",
		},
	}
}

func TestNewRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	rec := NewRecord(mem, testRecords())
	defer rec.Release()

	require.EqualValues(t, 2, rec.NumRows())
	require.EqualValues(t, 6, rec.NumCols())

	authors := rec.Column(1).(*array.String)
	assert.Equal(t, "Caesar", authors.Value(0))
	assert.Equal(t, "Aquinas", authors.Value(1))

	sources := rec.Column(3).(*array.String)
	assert.Equal(t, "Perseus", sources.Value(0))

	raw := rec.Column(5).(*array.String)
	assert.Equal(t, "# text = Gallia est omnis divisa in partes tres.\n\n", raw.Value(0))
	assert.True(t, raw.IsNull(1))
}

func TestWriteParquet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteParquet(&buf, testRecords()))

	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(buf.Bytes()),
		parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	require.NoError(t, err)
	defer tbl.Release()

	assert.EqualValues(t, 2, tbl.NumRows())
	assert.Equal(t, ColPeriod, tbl.Schema().Field(2).Name)
}

func TestWriteParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus"+ParquetExt)
	require.NoError(t, WriteParquetFile(path, testRecords()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
