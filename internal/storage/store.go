package storage

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SavedListing is a generated listing persisted for later review.
type SavedListing struct {
	ID          int64
	Title       string
	SKU         string
	Description string
	Brand       string
	Tier        string
	PriceMin    float64
	PriceMax    float64
	CreatedAt   time.Time
}

// Store defines the persistence used by the pipeline: an analysis result
// cache and a log of generated listings.
type Store interface {
	// Analysis cache methods. GetAnalysisCache returns nil with no error
	// on a cache miss.
	GetAnalysisCache(imageHash string) ([]byte, error)
	SetAnalysisCache(imageHash string, record []byte) error

	// Listings log methods
	SaveListing(l *SavedListing) error
	GetListings(limit int) ([]SavedListing, error)

	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore creates a new SQLite-based store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Configure SQLite with WAL mode and busy timeout for better concurrency
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set file permissions (only works on creation)
	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		// Ignore error if file doesn't exist yet
	}

	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	cacheQuery := `
	CREATE TABLE IF NOT EXISTS analysis_cache (
		image_hash TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(cacheQuery); err != nil {
		return fmt.Errorf("failed to create analysis_cache table: %w", err)
	}

	listingsQuery := `
	CREATE TABLE IF NOT EXISTS listings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		sku TEXT NOT NULL,
		description TEXT NOT NULL,
		brand TEXT,
		tier TEXT,
		price_min REAL,
		price_max REAL,
		created_at DATETIME NOT NULL
	);
	`
	if _, err := s.db.Exec(listingsQuery); err != nil {
		return fmt.Errorf("failed to create listings table: %w", err)
	}

	return nil
}

// GetAnalysisCache retrieves a cached analysis record by image hash.
// Returns nil if not found.
func (s *SQLiteStore) GetAnalysisCache(imageHash string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var record string
	err := s.db.QueryRow(
		"SELECT record FROM analysis_cache WHERE image_hash = ?", imageHash,
	).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis cache: %w", err)
	}
	return []byte(record), nil
}

// SetAnalysisCache stores an analysis record in the cache.
func (s *SQLiteStore) SetAnalysisCache(imageHash string, record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO analysis_cache (image_hash, record) VALUES (?, ?)",
		imageHash, string(record),
	)
	if err != nil {
		return fmt.Errorf("failed to store analysis cache: %w", err)
	}
	return nil
}

// SaveListing appends a generated listing to the log. The listing's ID and
// CreatedAt are filled in.
func (s *SQLiteStore) SaveListing(l *SavedListing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO listings (title, sku, description, brand, tier, price_min, price_max, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Title, l.SKU, l.Description, l.Brand, l.Tier, l.PriceMin, l.PriceMax, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		l.ID = id
	}
	return nil
}

// GetListings returns the most recently generated listings, newest first.
func (s *SQLiteStore) GetListings(limit int) ([]SavedListing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, title, sku, description, brand, tier, price_min, price_max, created_at
		 FROM listings ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []SavedListing
	for rows.Next() {
		var l SavedListing
		if err := rows.Scan(&l.ID, &l.Title, &l.SKU, &l.Description, &l.Brand, &l.Tier, &l.PriceMin, &l.PriceMax, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
