package pairs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecExamples = []Example{
	{TextA: "Gallia est omnis divisa in partes tres.", TextB: "Quarum unam incolunt Belgae.", Label: 1.0},
	{TextA: "Arma virumque cano <Troiae>", TextB: "Nel mezzo del cammin & co.", Label: 0.0},
	{TextA: "Utrum Deus sit.", TextB: "Videtur quod non.", Label: 0.8},
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONL(&buf, codecExamples))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `{"texts":["Gallia est omnis divisa in partes tres.","Quarum unam incolunt Belgae."],"label":1}`, lines[0])
	assert.Contains(t, lines[1], "<Troiae>")
	assert.Contains(t, lines[2], `"label":0.8`)
}

func TestDelimitedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, codecExamples))

	got, err := ReadDelimited(&buf)
	require.NoError(t, err)
	assert.Equal(t, codecExamples, got)
}

func TestReadDelimited_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDelimited(&buf, codecExamples[:1]))

	data := buf.Bytes()
	_, err := ReadDelimited(bytes.NewReader(data[:len(data)-4]))
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestWrite_Format(t *testing.T) {
	var jsonl, delim bytes.Buffer
	require.NoError(t, Write(&jsonl, FormatJSONL, codecExamples))
	require.NoError(t, Write(&delim, FormatDelimited, codecExamples))
	assert.NotEqual(t, jsonl.Bytes(), delim.Bytes())

	err := Write(&bytes.Buffer{}, Format("csv"), codecExamples)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
