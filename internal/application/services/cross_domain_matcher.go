package services

import (
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// CrossDomainMatcher pairs a place with music and activities based on its category.
type CrossDomainMatcher struct {
	catalog *Catalog
	rules   []crossDomainRule
}

// NewCrossDomainMatcher creates a matcher over the curated category rules.
func NewCrossDomainMatcher(catalog *Catalog) *CrossDomainMatcher {
	return &CrossDomainMatcher{catalog: catalog, rules: crossDomainRules}
}

// Match fills only the requested domains. A type matching no rule yields empty lists.
func (m *CrossDomainMatcher) Match(place entities.Place, domains ...entities.Domain) entities.CrossDomainBundle {
	bundle := entities.CrossDomainBundle{}
	rule, ok := m.classify(place.Type)

	for _, d := range domains {
		switch d {
		case entities.DomainMusic:
			bundle.Music = []entities.MusicTrack{}
			if ok {
				bundle.Music = m.catalog.Tracks(rule.music)
			}
		case entities.DomainActivities:
			bundle.Activities = []entities.Activity{}
			if ok {
				bundle.Activities = m.catalog.Activities(rule.activities)
			}
		}
	}
	return bundle
}

// Category returns the rule keyword selected for placeType, or "".
func (m *CrossDomainMatcher) Category(placeType string) string {
	rule, ok := m.classify(placeType)
	if !ok {
		return ""
	}
	return rule.keyword
}

func (m *CrossDomainMatcher) classify(placeType string) (crossDomainRule, bool) {
	lowered := strings.ToLower(placeType)
	for _, rule := range m.rules {
		if strings.Contains(lowered, rule.keyword) {
			return rule, true
		}
	}
	return crossDomainRule{}, false
}
