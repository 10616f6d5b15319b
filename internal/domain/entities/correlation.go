package entities

// CorrelationSet is the static mapping of a mood to search and catalog hints.
type CorrelationSet struct {
	SearchKeywords []string `json:"search_keywords"`
	Ambiance       []string `json:"ambiance"`
	MusicGenres    []string `json:"music_genres"`
	Activities     []string `json:"activities"`
}

// Clone returns a deep copy so table entries cannot be mutated through it.
func (c CorrelationSet) Clone() CorrelationSet {
	return CorrelationSet{
		SearchKeywords: cloneStrings(c.SearchKeywords),
		Ambiance:       cloneStrings(c.Ambiance),
		MusicGenres:    cloneStrings(c.MusicGenres),
		Activities:     cloneStrings(c.Activities),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
