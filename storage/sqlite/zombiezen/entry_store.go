package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	sent "github.com/revelaction/zenkou/sentence"
	"github.com/revelaction/zenkou/storage"
)

// Run is the metadata of one exported batch run.
type Run struct {
	Id         string
	CreatedAt  time.Time
	NumEntries int
}

// EntryStore writes each batch run as a new set of flat rows.
type EntryStore struct {
	pool *sqlitex.Pool
}

var _ storage.EntryRepository = (*EntryStore)(nil)

func NewEntryStore(pool *sqlitex.Pool) *EntryStore {
	return &EntryStore{pool: pool}
}

const insertEntry = `INSERT INTO entries (
	run_id, position, sentence, predicate_surface, predicate, transitivity, category,
	class_code, class_high, class_mid, class_term, unused, findings, judgment, translation, error
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const selectEntries = `SELECT sentence, predicate_surface, predicate, transitivity, category,
	class_code, class_high, class_mid, class_term, unused, findings, judgment, translation, error
FROM entries WHERE run_id = ? ORDER BY position`

// Write stores entries under a new run.
func (s *EntryStore) Write(entries []sent.Entry) error {
	_, err := s.WriteRun(entries)
	return err
}

// WriteRun stores entries under a new run and returns its id.
func (s *EntryStore) WriteRun(entries []sent.Entry) (id string, err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return "", err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	id = uuid.NewString()
	err = sqlitex.Execute(conn, "INSERT INTO runs (id, created_at, num_entries) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{id, time.Now().UTC().Format(time.RFC3339Nano), len(entries)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, e := range entries {
		a := e.Analysis

		findings, err := json.Marshal(a.Findings)
		if err != nil {
			return "", err
		}

		var judgment interface{}
		if e.Judgment != nil {
			data, err := json.Marshal(e.Judgment)
			if err != nil {
				return "", err
			}
			judgment = string(data)
		}

		err = sqlitex.Execute(conn, insertEntry, &sqlitex.ExecOptions{
			Args: []interface{}{
				id, i, a.Sentence, a.PredicateSurface, a.PredicateBase, a.Transitivity, a.Category,
				a.ClassCode, a.Gloss.High, a.Gloss.Mid, a.Gloss.Term, strings.Join(a.Unused, ","),
				string(findings), judgment, e.Translation, e.Err,
			},
		})
		if err != nil {
			return "", fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}

	return id, nil
}

// Runs returns the stored runs, newest first.
func (s *EntryStore) Runs() ([]Run, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var runs []Run
	err = sqlitex.Execute(conn, "SELECT id, created_at, num_entries FROM runs ORDER BY rowid DESC", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			created, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(1))
			if err != nil {
				return fmt.Errorf("run %s: %w", stmt.ColumnText(0), err)
			}
			runs = append(runs, Run{Id: stmt.ColumnText(0), CreatedAt: created, NumEntries: stmt.ColumnInt(2)})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// ReadAll returns the entries of the newest run.
func (s *EntryStore) ReadAll() ([]sent.Entry, error) {
	runs, err := s.Runs()
	if err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs stored")
	}

	return s.Read(runs[0].Id)
}

// Read returns the entries of a run in input order.
func (s *EntryStore) Read(runId string) ([]sent.Entry, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var entries []sent.Entry
	err = sqlitex.Execute(conn, selectEntries, &sqlitex.ExecOptions{
		Args: []interface{}{runId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			a := sent.Analysis{
				Sentence:         stmt.ColumnText(0),
				PredicateSurface: stmt.ColumnText(1),
				PredicateBase:    stmt.ColumnText(2),
				Transitivity:     stmt.ColumnText(3),
				Category:         stmt.ColumnText(4),
				ClassCode:        stmt.ColumnText(5),
				Gloss: sent.Gloss{
					High: stmt.ColumnText(6),
					Mid:  stmt.ColumnText(7),
					Term: stmt.ColumnText(8),
				},
				Unused: []string{},
			}

			if unused := stmt.ColumnText(9); unused != "" {
				a.Unused = strings.Split(unused, ",")
			}

			if err := json.Unmarshal([]byte(stmt.ColumnText(10)), &a.Findings); err != nil {
				return fmt.Errorf("findings of %q: %w", a.Sentence, err)
			}

			e := sent.Entry{Analysis: a, Translation: stmt.ColumnText(12), Err: stmt.ColumnText(13)}

			if stmt.ColumnType(11) != sqlite.TypeNull {
				var j sent.Judgment
				if err := json.Unmarshal([]byte(stmt.ColumnText(11)), &j); err != nil {
					return fmt.Errorf("judgment of %q: %w", a.Sentence, err)
				}
				e.Judgment = &j
			}

			entries = append(entries, e)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if entries == nil {
		return nil, fmt.Errorf("run not found: %s", runId)
	}

	return entries, nil
}
