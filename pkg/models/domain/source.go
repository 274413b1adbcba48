package domain

import "fmt"

// Source is one configured pair of job-postings datasets
type Source struct {
	Name         string
	Country      string
	AggregateURL string
	SectorURL    string
}

func (s Source) String() string {
	return fmt.Sprintf("%s:%s", s.Name, s.Country)
}
