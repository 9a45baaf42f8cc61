package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store provides access to catalog data. All mutating operations (toggle,
// attach, upsert) run inside a transaction behind a single writer mutex so a
// device-channel toggle and a request-channel insert can never interleave.
// Reads are snapshot-based and take no lock.
type Store struct {
	db *sql.DB

	// mu serializes mutations; sqlite alone would serialize statements but
	// not the read-modify-write sequences inside each operation.
	mu sync.Mutex
}

// NewStore creates a new catalog store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// mapSQLiteError converts SQLite errors to catalog error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check the message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

const mediaColumns = "id, type, title, year, tmdb_id, tvdb_id, season_count, has_physical, barcode, source, genres, added_at, updated_at"

func scanItem(row interface{ Scan(...any) error }) (*MediaItem, error) {
	m := &MediaItem{}
	var genres string
	if err := row.Scan(&m.ID, &m.Type, &m.Title, &m.Year, &m.TMDBID, &m.TVDBID,
		&m.SeasonCount, &m.HasPhysical, &m.Barcode, &m.Source, &genres,
		&m.AddedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if genres != "" {
		if err := json.Unmarshal([]byte(genres), &m.Genres); err != nil {
			return nil, fmt.Errorf("decode genres for item %d: %w", m.ID, err)
		}
	}
	return m, nil
}

func encodeGenres(genres []string) (string, error) {
	if len(genres) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(genres)
	if err != nil {
		return "", fmt.Errorf("encode genres: %w", err)
	}
	return string(data), nil
}

// All returns a snapshot of the catalog in insertion order.
func (s *Store) All() ([]*MediaItem, error) {
	rows, err := s.db.Query("SELECT " + mediaColumns + " FROM media ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []*MediaItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media: %w", err)
	}
	return items, nil
}

func findByBarcode(q querier, barcode string) (*MediaItem, error) {
	m, err := scanItem(q.QueryRow(
		"SELECT "+mediaColumns+" FROM media WHERE barcode = ?", barcode))
	if err != nil {
		return nil, fmt.Errorf("find by barcode %s: %w", barcode, mapSQLiteError(err))
	}
	return m, nil
}

// FindByBarcode returns the item the barcode is attached to.
// Returns ErrNotFound if no item carries the barcode.
func (s *Store) FindByBarcode(barcode string) (*MediaItem, error) {
	return findByBarcode(s.db, barcode)
}

func findByIdentity(q querier, t MediaType, externalID int64) (*MediaItem, error) {
	col := "tmdb_id"
	if t == TypeSeries {
		col = "tvdb_id"
	}
	m, err := scanItem(q.QueryRow(
		"SELECT "+mediaColumns+" FROM media WHERE type = ? AND "+col+" = ?", t, externalID))
	if err != nil {
		return nil, fmt.Errorf("find %s %d: %w", t, externalID, mapSQLiteError(err))
	}
	return m, nil
}

// FindByIdentity returns the item with the given identity key.
// Returns ErrNotFound if no such item exists.
func (s *Store) FindByIdentity(t MediaType, externalID int64) (*MediaItem, error) {
	return findByIdentity(s.db, t, externalID)
}

// TogglePhysical flips the has_physical flag of the item the barcode is
// attached to. Re-scanning a known disc is a deliberate on/off switch, not an
// error. Returns the item in its new state.
func (s *Store) TogglePhysical(barcode string) (*MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin toggle: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	m, err := findByBarcode(tx, barcode)
	if err != nil {
		return nil, err
	}

	m.HasPhysical = !m.HasPhysical
	m.UpdatedAt = time.Now()
	if _, err := tx.Exec(
		"UPDATE media SET has_physical = ?, updated_at = ? WHERE id = ?",
		m.HasPhysical, m.UpdatedAt, m.ID,
	); err != nil {
		return nil, fmt.Errorf("toggle %s: %w", barcode, mapSQLiteError(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit toggle: %w", err)
	}
	return m, nil
}

// AttachPhysical marks an existing item as physically held and records the
// scanned barcode. The row is located by identity key, falling back to an
// exact title match when the item carries no external id.
func (s *Store) AttachPhysical(item *MediaItem, barcode string) (*MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin attach: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var m *MediaItem
	if id, ok := item.ExternalID(); ok {
		m, err = findByIdentity(tx, item.Type, id)
	} else {
		m, err = scanItem(tx.QueryRow(
			"SELECT "+mediaColumns+" FROM media WHERE type = ? AND title = ?",
			item.Type, item.Title))
		if err != nil {
			err = fmt.Errorf("find %s %q: %w", item.Type, item.Title, mapSQLiteError(err))
		}
	}
	if err != nil {
		return nil, err
	}

	m.HasPhysical = true
	m.Barcode = &barcode
	m.UpdatedAt = time.Now()
	if _, err := tx.Exec(
		"UPDATE media SET has_physical = 1, barcode = ?, updated_at = ? WHERE id = ?",
		barcode, m.UpdatedAt, m.ID,
	); err != nil {
		return nil, fmt.Errorf("attach barcode %s: %w", barcode, mapSQLiteError(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attach: %w", err)
	}
	return m, nil
}

// Upsert inserts the item, or updates the existing row with the same identity
// key. Genres already recorded are never overwritten with an empty value.
// Sets ID, AddedAt, and UpdatedAt on the struct.
func (s *Store) Upsert(item *MediaItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing *MediaItem
	if id, ok := item.ExternalID(); ok {
		existing, err = findByIdentity(tx, item.Type, id)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	now := time.Now()
	if existing == nil {
		genres, err := encodeGenres(item.Genres)
		if err != nil {
			return err
		}
		result, err := tx.Exec(`
			INSERT INTO media (type, title, year, tmdb_id, tvdb_id, season_count, has_physical, barcode, source, genres, added_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.Type, item.Title, item.Year, item.TMDBID, item.TVDBID,
			item.SeasonCount, item.HasPhysical, item.Barcode, item.Source, genres, now, now,
		)
		if err != nil {
			return fmt.Errorf("insert media: %w", mapSQLiteError(err))
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("get last insert id: %w", err)
		}
		item.ID = id
		item.AddedAt = now
	} else {
		if len(item.Genres) == 0 {
			item.Genres = existing.Genres
		}
		genres, err := encodeGenres(item.Genres)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			UPDATE media SET title = ?, year = ?, season_count = ?, has_physical = ?, barcode = ?, genres = ?, updated_at = ?
			WHERE id = ?`,
			item.Title, item.Year, item.SeasonCount, item.HasPhysical,
			item.Barcode, genres, now, existing.ID,
		); err != nil {
			return fmt.Errorf("update media %d: %w", existing.ID, mapSQLiteError(err))
		}
		item.ID = existing.ID
		item.AddedAt = existing.AddedAt
	}
	item.UpdatedAt = now

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

// Stats returns catalog counts for display.
func (s *Store) Stats() (*Stats, error) {
	st := &Stats{}
	err := s.db.QueryRow(`
		SELECT
			COUNT(CASE WHEN type = 'movie' THEN 1 END),
			COUNT(CASE WHEN type = 'series' THEN 1 END),
			COUNT(CASE WHEN has_physical = 1 THEN 1 END)
		FROM media`,
	).Scan(&st.Movies, &st.Series, &st.Discs)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	return st, nil
}
