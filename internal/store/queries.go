package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/basketlift/internal/basket"
)

// Dataset operations

// ReplaceCollection replaces the stored dataset with coll in a single
// transaction. source records where the data came from (typically the
// CSV path) for later display.
func (s *Store) ReplaceCollection(coll basket.Collection, source string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM basket_items"); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO basket_items (basket_id, item) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for basketID, items := range coll {
		for item := range items {
			if _, err := stmt.Exec(basketID, item); err != nil {
				return fmt.Errorf("failed to insert basket item %s/%s: %w", basketID, item, err)
			}
		}
	}

	query := `
		INSERT OR REPLACE INTO dataset_info (id, source, imported_at)
		VALUES (1, ?, ?)
	`
	if _, err := tx.Exec(query, source, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to record dataset info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// LoadCollection reads the stored dataset back into a Collection.
func (s *Store) LoadCollection() (basket.Collection, error) {
	rows, err := s.db.Query("SELECT basket_id, item FROM basket_items")
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	defer rows.Close()

	coll := make(basket.Collection)
	for rows.Next() {
		var basketID, item string
		if err := rows.Scan(&basketID, &item); err != nil {
			return nil, fmt.Errorf("failed to scan basket item: %w", err)
		}
		coll.Add(basketID, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dataset: %w", err)
	}

	return coll, nil
}

// GetDatasetInfo returns the import metadata for the current dataset,
// or nil if nothing has been imported yet.
func (s *Store) GetDatasetInfo() (*DatasetInfo, error) {
	var info DatasetInfo
	var importedAt string

	query := "SELECT source, imported_at FROM dataset_info WHERE id = 1"
	err := s.db.QueryRow(query).Scan(&info.Source, &importedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset info: %w", err)
	}

	info.ImportedAt, err = time.Parse(time.RFC3339, importedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse imported_at: %w", err)
	}
	return &info, nil
}

// Statistics

// CountBaskets returns the number of distinct baskets in the dataset.
func (s *Store) CountBaskets() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(DISTINCT basket_id) FROM basket_items").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count baskets: %w", err)
	}
	return count, nil
}

// CountItems returns the number of distinct items in the dataset.
func (s *Store) CountItems() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(DISTINCT item) FROM basket_items").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// TopItems returns the n items present in the most baskets, with their
// single-item support. Ties are broken by item name for stable output.
func (s *Store) TopItems(n int) ([]ItemStat, error) {
	total, err := s.CountBaskets()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	query := `
		SELECT item, COUNT(DISTINCT basket_id) AS baskets
		FROM basket_items
		GROUP BY item
		ORDER BY baskets DESC, item ASC
		LIMIT ?
	`
	rows, err := s.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top items: %w", err)
	}
	defer rows.Close()

	var stats []ItemStat
	for rows.Next() {
		var st ItemStat
		if err := rows.Scan(&st.Item, &st.Baskets); err != nil {
			return nil, fmt.Errorf("failed to scan item stat: %w", err)
		}
		st.Support = float64(st.Baskets) / float64(total)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top items: %w", err)
	}

	return stats, nil
}
