package services

import (
	"fmt"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// CorrelationMapper resolves a normalized mood to its static correlation set.
type CorrelationMapper struct {
	version TableVersion
	table   map[entities.Mood]entities.CorrelationSet
}

// NewCorrelationMapper loads the named table and checks it covers every mood.
func NewCorrelationMapper(version TableVersion) (*CorrelationMapper, error) {
	table, ok := tableFor(version)
	if !ok {
		return nil, fmt.Errorf("unknown correlation table version %q", version)
	}
	if err := validateTable(table); err != nil {
		return nil, fmt.Errorf("correlation table %q: %w", version, err)
	}
	if version == "" {
		version = TableCurated
	}
	return &CorrelationMapper{version: version, table: table}, nil
}

func validateTable(table map[entities.Mood]entities.CorrelationSet) error {
	for _, mood := range entities.AllMoods() {
		cs, ok := table[mood]
		if !ok {
			return fmt.Errorf("missing entry for mood %q", mood)
		}
		if len(cs.SearchKeywords) == 0 {
			return fmt.Errorf("mood %q has no search keywords", mood)
		}
		if len(cs.Ambiance) == 0 {
			return fmt.Errorf("mood %q has no ambiance tags", mood)
		}
	}
	return nil
}

// Correlate returns a copy of the set for mood.
// mood must already be normalized; the table covers every taxonomy entry.
func (m *CorrelationMapper) Correlate(mood entities.Mood) entities.CorrelationSet {
	return m.table[mood].Clone()
}

// Version reports which table the mapper serves.
func (m *CorrelationMapper) Version() TableVersion {
	return m.version
}
