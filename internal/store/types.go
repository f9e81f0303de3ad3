package store

import "time"

// DatasetInfo records where and when the current dataset was imported.
type DatasetInfo struct {
	Source     string
	ImportedAt time.Time
}

// ItemStat summarizes one item's presence across the dataset.
type ItemStat struct {
	Item    string
	Baskets int     // number of baskets containing the item
	Support float64 // Baskets divided by the total basket count
}
