package store

import "time"

// AggregateRecord is one row of the national job-postings index file
type AggregateRecord struct {
	Date    time.Time
	Country string
	Index   float64
}

// SectorRecord is one row of the per-sector job-postings index file
type SectorRecord struct {
	Date    time.Time
	Country string
	Sector  string
	Index   float64
}

// Dataset holds both downloaded files of one source
type Dataset struct {
	Source    string
	Aggregate []AggregateRecord
	Sectors   []SectorRecord
}
