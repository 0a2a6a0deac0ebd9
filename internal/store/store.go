// Package store persists named collections as one JSON array file each.
//
// Every operation re-reads the whole collection file, mutates in memory and
// rewrites the whole file. There is no file locking: two concurrent writers
// to the same collection race and the last write wins. With one operator and
// a handful of records per collection this is a documented limitation, not
// something this package tries to arbitrate.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned by Update when no record carries the given id.
var ErrNotFound = errors.New("record not found")

// Record is one document in a collection. The "id" field is a string
// assigned by the store on insert; everything else is caller data.
type Record map[string]any

// ID returns the record id, or "" when the field is missing or not a string.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Store reads and writes collections under a single data directory.
// Construct one with New and hand it to whoever needs persistence; there is
// no package-level instance.
type Store struct {
	dir string
	log *log.Logger
	now func() time.Time
}

func New(dir string, logger *log.Logger) *Store {
	return &Store{dir: dir, log: logger, now: time.Now}
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// ReadAll returns every record in insertion order. A collection that has
// never been written is created empty on the spot; read or parse failures
// are logged and reported as an empty collection rather than propagated.
func (s *Store) ReadAll(collection string) []Record {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			if werr := s.write(collection, []Record{}); werr != nil {
				s.log.Error("create collection", "collection", collection, "err", werr)
			}
			return []Record{}
		}
		s.log.Error("read collection", "collection", collection, "err", err)
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Error("parse collection", "collection", collection, "err", err)
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

// Insert assigns a fresh id, appends the record and rewrites the collection.
// The id is the insert time in Unix milliseconds; a client-supplied id is
// always overridden. Same-millisecond inserts can collide, which the single
// operator workload accepts.
func (s *Store) Insert(collection string, fields Record) (Record, error) {
	records := s.ReadAll(collection)

	rec := make(Record, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec["id"] = strconv.FormatInt(s.now().UnixMilli(), 10)

	records = append(records, rec)
	if err := s.write(collection, records); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update shallow-merges partial onto the record with the given id: named
// fields are overwritten, explicit nulls included, unnamed fields survive.
// Returns ErrNotFound, leaving the file untouched, when the id is unknown.
func (s *Store) Update(collection, id string, partial Record) (Record, error) {
	records := s.ReadAll(collection)

	idx := -1
	for i := range records {
		if records[i].ID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	for k, v := range partial {
		records[idx][k] = v
	}
	if err := s.write(collection, records); err != nil {
		return nil, err
	}
	return records[idx], nil
}

// Delete removes any record with the given id and rewrites the collection.
// Deleting an unknown id is a successful no-op.
func (s *Store) Delete(collection, id string) error {
	records := s.ReadAll(collection)

	kept := records[:0]
	for _, rec := range records {
		if rec.ID() != id {
			kept = append(kept, rec)
		}
	}
	return s.write(collection, kept)
}

func (s *Store) write(collection string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if err := os.WriteFile(s.path(collection), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}
