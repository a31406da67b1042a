package capture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"coursecatalog-backend/lib/scrapers/registrar"
)

const indexFilename = "index.json"

// Index is the persisted record of which terms have been captured by any
// prior run.
type Index struct {
	Terms []string `json:"terms"`
}

// TermDataset is the on-disk shape of one term's capture, written to
// <term>.json.
type TermDataset struct {
	Courses     []registrar.Course `json:"courses"`
	LastUpdated int64              `json:"lastUpdated"`
}

// Store reads and writes the capture artifacts in a single directory.
type Store struct {
	dir string
}

func NewStore(dir string) (Store, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return Store{}, fmt.Errorf("create output directory: %w", err)
	}
	return Store{dir: dir}, nil
}

// ReadIndex returns nil without an error when no index has been written
// yet, which callers treat as a first run.
func (s Store) ReadIndex() (*Index, error) {
	contents, err := os.ReadFile(filepath.Join(s.dir, indexFilename))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var index Index
	err = json.Unmarshal(contents, &index)
	if err != nil {
		return nil, err
	}
	return &index, nil
}

func (s Store) WriteIndex(index Index) error {
	contents, err := json.Marshal(index)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, indexFilename), contents, 0644)
}

func (s Store) WriteTerm(name string, courses []registrar.Course) error {
	if courses == nil {
		courses = []registrar.Course{}
	}
	contents, err := json.Marshal(TermDataset{
		Courses:     courses,
		LastUpdated: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name+".json"), contents, 0644)
}

func (s Store) ReadTerm(name string) (TermDataset, error) {
	var dataset TermDataset
	contents, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return dataset, err
	}
	err = json.Unmarshal(contents, &dataset)
	return dataset, err
}
