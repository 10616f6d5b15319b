package services

import "github.com/zatekoja/vibecheck/backend/internal/domain/entities"

// TableVersion names a static correlation table.
type TableVersion string

const (
	TableCurated TableVersion = "curated"
	TableLegacy  TableVersion = "legacy"
)

func correlation(keywords, ambiance, music, activities []string) entities.CorrelationSet {
	return entities.CorrelationSet{
		SearchKeywords: keywords,
		Ambiance:       ambiance,
		MusicGenres:    music,
		Activities:     activities,
	}
}

func list(items ...string) []string { return items }

var curatedTable = map[entities.Mood]entities.CorrelationSet{
	entities.MoodAnxious: correlation(
		list("tea house", "quiet cafe", "bookstore cafe", "bakery"),
		list("calm", "soft_lighting", "low_noise", "spacious"),
		list("ambient", "lo-fi", "classical"),
		list("journaling", "walking", "yoga"),
	),
	entities.MoodLonely: correlation(
		list("communal table restaurant", "coffee shop", "friendly bar", "diner"),
		list("warm_lighting", "background_chatter", "welcoming_staff", "social"),
		list("indie folk", "soul", "acoustic"),
		list("board games", "volunteering", "live music"),
	),
	entities.MoodCelebratory: correlation(
		list("rooftop bar", "cocktail lounge", "fine dining", "lively restaurant"),
		list("energetic", "city views", "live music", "upscale"),
		list("pop", "house", "funk"),
		list("dancing", "live music", "cooking class"),
	),
	entities.MoodNostalgic: correlation(
		list("old-fashioned diner", "classic bakery", "retro bar", "traditional cuisine"),
		list("vintage_decor", "classic_music", "familiar", "warm"),
		list("oldies", "soul", "jazz"),
		list("record shopping", "film screening", "museum visit"),
	),
	entities.MoodStressed: correlation(
		list("quiet tea house", "soup restaurant", "calm park cafe", "bookstore cafe"),
		list("peaceful", "natural light", "minimalist", "soothing"),
		list("ambient", "classical", "lo-fi"),
		list("yoga", "walking", "reading"),
	),
	entities.MoodContemplative: correlation(
		list("art gallery cafe", "library cafe", "scenic view restaurant", "wine bar"),
		list("inspiring", "quiet", "elegant", "sophisticated"),
		list("jazz", "classical", "indie folk"),
		list("museum visit", "reading", "journaling"),
	),
	entities.MoodEnergetic: correlation(
		list("food hall", "tapas bar", "brewery", "busy bistro"),
		list("vibrant", "lively", "social", "bustling"),
		list("house", "funk", "rock"),
		list("dancing", "hiking", "live music"),
	),
	entities.MoodMelancholic: correlation(
		list("dimly lit bar", "quiet noodle shop", "rainy day cafe", "jazz club"),
		list("introspective", "dim_lighting", "soulful_music", "cozy"),
		list("blues", "jazz", "soul"),
		list("journaling", "film screening", "walking"),
	),
	entities.MoodSatisfaction: correlation(
		list("wine bar", "bistro", "dessert cafe", "gastropub"),
		list("relaxed", "warm", "refined", "unhurried"),
		list("bossa nova", "jazz", "soul"),
		list("picnic", "walking", "cooking class"),
	),
	entities.MoodDisappointment: correlation(
		list("comfort food diner", "ramen shop", "cozy cafe", "neighborhood pub"),
		list("cozy", "forgiving", "low_key", "warm_lighting"),
		list("indie folk", "blues", "acoustic"),
		list("walking", "film screening", "journaling"),
	),
	entities.MoodLethargy: correlation(
		list("coffee shop", "brunch spot", "juice bar", "bakery"),
		list("bright", "gentle", "sunny", "unhurried"),
		list("lo-fi", "bossa nova", "acoustic"),
		list("walking", "yoga", "reading"),
	),
	entities.MoodRelaxed: correlation(
		list("garden cafe", "tea house", "beach bar", "park cafe"),
		list("open_air", "natural light", "calm", "breezy"),
		list("bossa nova", "acoustic", "ambient"),
		list("picnic", "reading", "walking"),
	),
	entities.MoodRomantic: correlation(
		list("candlelit restaurant", "wine bar", "rooftop lounge", "dessert cafe"),
		list("intimate", "dim_lighting", "elegant", "soft_music"),
		list("jazz", "soul", "bossa nova"),
		list("stargazing", "cooking class", "walking"),
	),
	entities.MoodInspired: correlation(
		list("art gallery cafe", "design studio cafe", "bookstore cafe", "fusion restaurant"),
		list("creative", "eclectic", "bright", "inspiring"),
		list("indie folk", "classical", "jazz"),
		list("museum visit", "pottery", "journaling"),
	),
	entities.MoodCurious: correlation(
		list("food hall", "ethnic restaurant", "night market", "tasting room"),
		list("eclectic", "discovery", "bustling", "global"),
		list("world", "funk", "indie folk"),
		list("cooking class", "museum visit", "record shopping"),
	),
	entities.MoodAwkward: correlation(
		list("counter service cafe", "quiet bookstore cafe", "food truck", "casual diner"),
		list("low_pressure", "casual", "anonymous", "quiet"),
		list("lo-fi", "indie folk", "ambient"),
		list("reading", "board games", "walking"),
	),
	entities.MoodSurprised: correlation(
		list("speakeasy", "pop-up restaurant", "hidden bar", "themed cafe"),
		list("unexpected", "playful", "quirky", "lively"),
		list("funk", "pop", "world"),
		list("film screening", "dancing", "record shopping"),
	),
	entities.MoodGrateful: correlation(
		list("family restaurant", "farm to table restaurant", "neighborhood bakery", "community cafe"),
		list("warm", "welcoming", "homey", "sunny"),
		list("soul", "acoustic", "indie folk"),
		list("volunteering", "picnic", "cooking class"),
	),
	entities.MoodAdventurous: correlation(
		list("night market", "street food", "hidden bar", "fusion restaurant"),
		list("bold", "bustling", "eclectic", "outdoor"),
		list("world", "rock", "house"),
		list("hiking", "cooking class", "dancing"),
	),
	entities.MoodBored: correlation(
		list("arcade bar", "board game cafe", "food hall", "karaoke bar"),
		list("playful", "lively", "interactive", "social"),
		list("pop", "rock", "funk"),
		list("board games", "dancing", "pottery"),
	),
	entities.MoodOverwhelmed: correlation(
		list("quiet tea house", "library cafe", "garden cafe", "bakery"),
		list("quiet", "spacious", "minimal_crowds", "calm"),
		list("ambient", "classical", "lo-fi"),
		list("yoga", "walking", "stargazing"),
	),
	entities.MoodComforted: correlation(
		list("cozy cafe", "comfort food diner", "bakery", "soup restaurant"),
		list("cozy", "warm", "familiar", "soft_lighting"),
		list("acoustic", "soul", "oldies"),
		list("reading", "cooking class", "film screening"),
	),
	entities.MoodExhilarated: correlation(
		list("rooftop bar", "night club", "live music bar", "brewery"),
		list("electric", "loud", "crowded", "vibrant"),
		list("house", "rock", "pop"),
		list("dancing", "live music", "hiking"),
	),
	entities.MoodDisgusted: correlation(
		list("clean eating cafe", "salad bar", "juice bar", "minimalist bistro"),
		list("clean", "fresh", "minimalist", "bright"),
		list("ambient", "acoustic", "classical"),
		list("walking", "yoga", "hiking"),
	),
}

// legacyOverlay holds the keyword and ambiance lists of the earlier mock-only table.
// It disagrees with the curated table for anxious and lonely.
var legacyOverlay = map[entities.Mood]entities.CorrelationSet{
	entities.MoodAnxious: {
		SearchKeywords: list("quiet cafe", "cozy bakery", "comfort food", "ramen"),
		Ambiance:       list("soft_lighting", "minimal_crowds", "gentle_music", "calm"),
	},
	entities.MoodLonely: {
		SearchKeywords: list("communal table restaurant", "friendly bar", "diner", "coffee shop"),
		Ambiance:       list("warm_lighting", "background_chatter", "welcoming_staff", "social"),
	},
	entities.MoodCelebratory: {
		SearchKeywords: list("rooftop bar", "cocktail lounge", "fine dining", "lively restaurant"),
		Ambiance:       list("energetic", "city views", "live music", "upscale"),
	},
	entities.MoodNostalgic: {
		SearchKeywords: list("old-fashioned diner", "classic bakery", "retro bar", "traditional cuisine"),
		Ambiance:       list("vintage_decor", "classic_music", "familiar", "warm"),
	},
	entities.MoodStressed: {
		SearchKeywords: list("quiet tea house", "soup restaurant", "calm park cafe", "bookstore cafe"),
		Ambiance:       list("peaceful", "natural light", "minimalist", "soothing"),
	},
	entities.MoodContemplative: {
		SearchKeywords: list("art gallery cafe", "library cafe", "scenic view restaurant", "wine bar"),
		Ambiance:       list("inspiring", "quiet", "elegant", "sophisticated"),
	},
	entities.MoodEnergetic: {
		SearchKeywords: list("food hall", "tapas bar", "brewery", "busy bistro"),
		Ambiance:       list("vibrant", "lively", "social", "bustling"),
	},
	entities.MoodMelancholic: {
		SearchKeywords: list("dimly lit bar", "quiet noodle shop", "rainy day cafe", "jazz club"),
		Ambiance:       list("introspective", "dim_lighting", "soulful_music", "cozy"),
	},
}

// tableFor builds the named table. Legacy keeps curated music and activities.
func tableFor(version TableVersion) (map[entities.Mood]entities.CorrelationSet, bool) {
	switch version {
	case TableCurated, "":
		return curatedTable, true
	case TableLegacy:
		out := make(map[entities.Mood]entities.CorrelationSet, len(curatedTable))
		for mood, cs := range curatedTable {
			if overlay, ok := legacyOverlay[mood]; ok {
				cs.SearchKeywords = overlay.SearchKeywords
				cs.Ambiance = overlay.Ambiance
			}
			out[mood] = cs
		}
		return out, true
	}
	return nil, false
}
