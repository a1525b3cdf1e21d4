package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/plotlab/internal/experiment"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the record written for every finished run.
type RunMetadata struct {
	ID        string            `json:"id"`
	Demo      string            `json:"demo"`
	Driver    string            `json:"driver"`
	Timestamp time.Time         `json:"timestamp"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Levels    int               `json:"levels"`
	Mag       int               `json:"mag"`
	Inverse   bool              `json:"inverse"`
	Params    map[string]string `json:"params,omitempty"`
	ElapsedMS float64           `json:"elapsed_ms"`
	Output    string            `json:"output,omitempty"`
}

// Save records a run under <base>/<demo>_<unix seconds>. Runs finishing in
// the same second get a numeric suffix.
func (s *Store) Save(result *experiment.Result, output string) (string, error) {
	now := time.Now()
	base := fmt.Sprintf("%s_%d", result.Demo, now.Unix())

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	runID := base
	for i := 2; ; i++ {
		err := os.Mkdir(filepath.Join(s.baseDir, runID), 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		runID = fmt.Sprintf("%s-%d", base, i)
	}

	meta := RunMetadata{
		ID:        runID,
		Demo:      result.Demo,
		Driver:    result.Driver,
		Timestamp: now,
		Width:     result.Width,
		Height:    result.Height,
		Levels:    result.Levels,
		Mag:       result.Mag,
		Inverse:   result.Inverse,
		Params:    result.Params,
		ElapsedMS: float64(result.Elapsed.Microseconds()) / 1000,
		Output:    output,
	}

	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return runID, metaFile.Close()
}

// List returns every readable run record, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// WriteJSON encodes run records as an indented JSON array.
func WriteJSON(w io.Writer, runs []RunMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runs)
}
