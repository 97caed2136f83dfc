package split

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	latincorpus "github.com/jamesainslie/go-latincorpus"
	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/conllu"
)

func record(text, author string, period attribution.Period) latincorpus.Record {
	return latincorpus.Record{
		Text:   text,
		Author: author,
		Period: period,
		Sentence: &conllu.Sentence{
			Metadata: []conllu.Metadata{{Key: "text", Value: text, HasValue: true}},
			Tokens:   []conllu.Token{{ID: "1", Form: text, Lemma: "_", UPOS: "X", XPOS: "_", Feats: "_", Head: "0", Deprel: "root", Deps: "_", Misc: "_"}},
		},
	}
}

func records(classical, medieval int) []latincorpus.Record {
	var out []latincorpus.Record
	for i := range classical {
		out = append(out, record(fmt.Sprintf("classical-%d", i), "Cicero", attribution.Classical))
	}
	for i := range medieval {
		out = append(out, record(fmt.Sprintf("medieval-%d", i), "Aquinas", attribution.Medieval))
	}
	return out
}

func seeded(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

func texts(rs []latincorpus.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text
	}
	return out
}

func TestSplit_DisjointUnion(t *testing.T) {
	input := records(70, 30)

	p, err := Split(input, seeded(1), WithOutput(nil))
	require.NoError(t, err)

	seen := make(map[string]string)
	for _, n := range p.Named() {
		for _, text := range texts(n.Records) {
			prev, dup := seen[text]
			require.False(t, dup, "%q in both %s and %s", text, prev, n.Name)
			seen[text] = n.Name
		}
	}
	assert.Len(t, seen, len(input))
	for _, text := range texts(input) {
		assert.Contains(t, seen, text)
	}
}

func TestSplit_SizesAndStrata(t *testing.T) {
	p, err := Split(records(70, 30), seeded(2), WithOutput(nil))
	require.NoError(t, err)

	assert.Len(t, p.Train, 67)
	assert.Len(t, p.Test, 16)
	assert.Len(t, p.Dev, 17)

	train := PeriodCounts(p.Train)
	assert.Equal(t, 47, train.Count(attribution.Classical))
	assert.Equal(t, 20, train.Count(attribution.Medieval))

	held := PeriodCounts(append(append([]latincorpus.Record(nil), p.Test...), p.Dev...))
	assert.Equal(t, 23, held.Count(attribution.Classical))
	assert.Equal(t, 10, held.Count(attribution.Medieval))
}

func TestSplit_Reproducible(t *testing.T) {
	input := records(20, 20)

	a, err := Split(input, seeded(5), WithOutput(nil))
	require.NoError(t, err)
	b, err := Split(input, seeded(5), WithOutput(nil))
	require.NoError(t, err)

	assert.Equal(t, texts(a.Train), texts(b.Train))
	assert.Equal(t, texts(a.Dev), texts(b.Dev))
}

func TestSplit_DoesNotReorderInput(t *testing.T) {
	input := records(10, 10)
	before := texts(input)

	_, err := Split(input, seeded(3), WithOutput(nil))
	require.NoError(t, err)
	assert.Equal(t, before, texts(input))
}

func TestSplit_Empty(t *testing.T) {
	p, err := Split(nil, WithOutput(nil))
	require.NoError(t, err)
	assert.Empty(t, p.Train)
	assert.Empty(t, p.Test)
	assert.Empty(t, p.Dev)
}

func TestSplit_InvalidFraction(t *testing.T) {
	for _, f := range []float64{0, 1, -0.2, 1.5} {
		_, err := Split(records(3, 3), WithTestSize(f), WithOutput(nil))
		assert.ErrorIs(t, err, ErrInvalidFraction, "test size %v", f)

		_, err = Split(records(3, 3), WithDevFraction(f), WithOutput(nil))
		assert.ErrorIs(t, err, ErrInvalidFraction, "dev fraction %v", f)
	}
}

func TestAllocate(t *testing.T) {
	recs := records(5, 2)
	groups := map[attribution.Period][]latincorpus.Record{
		attribution.Classical: recs[:5],
		attribution.Medieval:  recs[5:],
	}
	order := []attribution.Period{attribution.Classical, attribution.Medieval}

	alloc := allocate(order, groups, 7, 3)
	assert.Equal(t, 3, alloc[attribution.Classical]+alloc[attribution.Medieval])
	assert.Equal(t, 2, alloc[attribution.Classical])
	assert.Equal(t, 1, alloc[attribution.Medieval])
}

func TestWrite(t *testing.T) {
	p, err := Split(records(30, 12), seeded(4), WithOutput(nil))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "combined_data")
	m, err := Write(dir, p)
	require.NoError(t, err)

	_, err = uuid.Parse(m.RunID)
	require.NoError(t, err)

	for _, n := range p.Named() {
		got, err := conllu.ParseFile(filepath.Join(dir, n.Name+".conllu"))
		require.NoError(t, err)
		require.Len(t, got, len(n.Records))
		for i, s := range got {
			text, ok := s.Text()
			require.True(t, ok)
			assert.Equal(t, n.Records[i].Text, text, "%s sentence %d", n.Name, i)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	require.NoError(t, err)
	var decoded Manifest
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, m.RunID, decoded.RunID)
	require.Len(t, decoded.Partitions, 3)
	assert.Equal(t, "train", decoded.Partitions[0].Name)
	assert.Equal(t, len(p.Train), decoded.Partitions[0].Sentences)
	total := 0
	for _, ps := range decoded.Partitions {
		for _, c := range ps.Periods {
			total += c
		}
	}
	assert.Equal(t, 42, total)
}

func TestWrite_Failure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := Write(blocker, &Partitions{})
	assert.Error(t, err)
}
