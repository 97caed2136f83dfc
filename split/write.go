package split

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	latincorpus "github.com/jamesainslie/go-latincorpus"
	"github.com/jamesainslie/go-latincorpus/conllu"
)

// ManifestName is the file Write records the run in.
const ManifestName = "manifest.yaml"

// Manifest describes one written split.
type Manifest struct {
	RunID      string             `yaml:"run_id"`
	CreatedAt  time.Time          `yaml:"created_at"`
	Partitions []PartitionSummary `yaml:"partitions"`
}

// PartitionSummary is the manifest entry of one partition.
type PartitionSummary struct {
	Name      string         `yaml:"name"`
	File      string         `yaml:"file"`
	Sentences int            `yaml:"sentences"`
	Periods   map[string]int `yaml:"periods"`
}

// Write writes each partition to dir as <name>.conllu, sentences in
// partition order, followed by a manifest. dir is created if missing.
func Write(dir string, p *Partitions) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	m := &Manifest{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}

	for _, n := range p.Named() {
		file := n.Name + ".conllu"
		if err := writeConllu(filepath.Join(dir, file), n.Records); err != nil {
			return nil, err
		}

		periods := make(map[string]int)
		counts := PeriodCounts(n.Records)
		for _, k := range counts.Keys() {
			periods[string(k)] = counts.Count(k)
		}
		m.Partitions = append(m.Partitions, PartitionSummary{
			Name:      n.Name,
			File:      file,
			Sentences: len(n.Records),
			Periods:   periods,
		})
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return m, nil
}

func writeConllu(path string, records []latincorpus.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if err := conllu.Write(f, latincorpus.Sentences(records)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
