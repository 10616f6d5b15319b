package services

import "github.com/zatekoja/vibecheck/backend/internal/domain/entities"

var musicCatalog = map[string][]entities.MusicTrack{
	"ambient": {
		{Title: "Weightless", Artist: "Marconi Union", Genre: "ambient", Mood: "calm"},
		{Title: "An Ending (Ascent)", Artist: "Brian Eno", Genre: "ambient", Mood: "reflective"},
	},
	"lo-fi": {
		{Title: "Snowman", Artist: "WYS", Genre: "lo-fi", Mood: "mellow"},
		{Title: "Affection", Artist: "Jinsang", Genre: "lo-fi", Mood: "gentle"},
	},
	"jazz": {
		{Title: "Blue in Green", Artist: "Miles Davis", Genre: "jazz", Mood: "introspective"},
		{Title: "My Favorite Things", Artist: "John Coltrane", Genre: "jazz", Mood: "curious"},
	},
	"indie folk": {
		{Title: "Holocene", Artist: "Bon Iver", Genre: "indie folk", Mood: "wistful"},
		{Title: "Mykonos", Artist: "Fleet Foxes", Genre: "indie folk", Mood: "warm"},
	},
	"soul": {
		{Title: "A Change Is Gonna Come", Artist: "Sam Cooke", Genre: "soul", Mood: "hopeful"},
		{Title: "Ain't No Sunshine", Artist: "Bill Withers", Genre: "soul", Mood: "longing"},
	},
	"pop": {
		{Title: "Dancing Queen", Artist: "ABBA", Genre: "pop", Mood: "joyful"},
		{Title: "Levitating", Artist: "Dua Lipa", Genre: "pop", Mood: "upbeat"},
	},
	"house": {
		{Title: "Finally", Artist: "Kings of Tomorrow", Genre: "house", Mood: "euphoric"},
		{Title: "Music Sounds Better with You", Artist: "Stardust", Genre: "house", Mood: "energetic"},
	},
	"classical": {
		{Title: "Clair de Lune", Artist: "Claude Debussy", Genre: "classical", Mood: "serene"},
		{Title: "Gymnopédie No. 1", Artist: "Erik Satie", Genre: "classical", Mood: "contemplative"},
	},
	"acoustic": {
		{Title: "Banana Pancakes", Artist: "Jack Johnson", Genre: "acoustic", Mood: "lazy"},
		{Title: "Riptide", Artist: "Vance Joy", Genre: "acoustic", Mood: "light"},
	},
	"oldies": {
		{Title: "Stand By Me", Artist: "Ben E. King", Genre: "oldies", Mood: "comforting"},
		{Title: "Be My Baby", Artist: "The Ronettes", Genre: "oldies", Mood: "sweet"},
	},
	"blues": {
		{Title: "The Thrill Is Gone", Artist: "B.B. King", Genre: "blues", Mood: "melancholy"},
		{Title: "Born Under a Bad Sign", Artist: "Albert King", Genre: "blues", Mood: "gritty"},
	},
	"funk": {
		{Title: "September", Artist: "Earth, Wind & Fire", Genre: "funk", Mood: "celebratory"},
		{Title: "Superstition", Artist: "Stevie Wonder", Genre: "funk", Mood: "groovy"},
	},
	"bossa nova": {
		{Title: "The Girl from Ipanema", Artist: "Stan Getz & João Gilberto", Genre: "bossa nova", Mood: "breezy"},
		{Title: "Águas de Março", Artist: "Elis Regina & Tom Jobim", Genre: "bossa nova", Mood: "tender"},
	},
	"world": {
		{Title: "Pata Pata", Artist: "Miriam Makeba", Genre: "world", Mood: "playful"},
		{Title: "Chan Chan", Artist: "Buena Vista Social Club", Genre: "world", Mood: "nostalgic"},
	},
	"rock": {
		{Title: "Mr. Brightside", Artist: "The Killers", Genre: "rock", Mood: "restless"},
		{Title: "Don't Stop Me Now", Artist: "Queen", Genre: "rock", Mood: "exhilarated"},
	},
}

var activityCatalog = map[string]entities.Activity{
	"journaling":      {Name: "Journaling", Description: "Write down what's on your mind with a warm drink nearby", Duration: "30 minutes", Category: "reflective"},
	"walking":         {Name: "Neighborhood walk", Description: "An unhurried loop through nearby streets with no destination", Duration: "45 minutes", Category: "outdoor"},
	"yoga":            {Name: "Gentle yoga", Description: "A slow-flow class focused on breathing and stretching", Duration: "1 hour", Category: "wellness"},
	"reading":         {Name: "Reading session", Description: "Settle in with a book you've been meaning to start", Duration: "1 hour", Category: "reflective"},
	"live music":      {Name: "Live music night", Description: "Catch a local act at a small venue", Duration: "2 hours", Category: "social"},
	"museum visit":    {Name: "Museum visit", Description: "Wander a gallery wing you haven't explored yet", Duration: "2 hours", Category: "cultural"},
	"board games":     {Name: "Board game meetup", Description: "Join a drop-in table at a game cafe", Duration: "2 hours", Category: "social"},
	"dancing":         {Name: "Dancing", Description: "Find a dance floor and let the music lead", Duration: "2 hours", Category: "social"},
	"cooking class":   {Name: "Cooking class", Description: "Learn a new dish alongside other beginners", Duration: "2 hours", Category: "creative"},
	"stargazing":      {Name: "Stargazing", Description: "Head somewhere dark and look up", Duration: "1 hour", Category: "outdoor"},
	"hiking":          {Name: "Short hike", Description: "A trail with a view at the end of it", Duration: "3 hours", Category: "outdoor"},
	"volunteering":    {Name: "Volunteering", Description: "Spend an afternoon helping at a community project", Duration: "3 hours", Category: "social"},
	"pottery":         {Name: "Pottery workshop", Description: "Get your hands dirty at a wheel-throwing session", Duration: "2 hours", Category: "creative"},
	"record shopping": {Name: "Record shopping", Description: "Dig through crates at an independent record store", Duration: "1 hour", Category: "cultural"},
	"film screening":  {Name: "Film screening", Description: "See an independent or classic film at a small cinema", Duration: "2 hours", Category: "cultural"},
	"picnic":          {Name: "Picnic", Description: "Pack something simple and find a patch of grass", Duration: "1.5 hours", Category: "outdoor"},
}

// crossDomainRule is one curated row of the place-category table.
type crossDomainRule struct {
	keyword    string
	music      []string
	activities []string
}

// crossDomainRules is matched in order; the first keyword contained in the place type wins.
var crossDomainRules = []crossDomainRule{
	{keyword: "cafe", music: list("lo-fi", "acoustic"), activities: list("reading", "journaling")},
	{keyword: "coffee", music: list("lo-fi", "jazz"), activities: list("reading", "journaling")},
	{keyword: "bakery", music: list("acoustic", "bossa nova"), activities: list("picnic", "walking")},
	{keyword: "tea house", music: list("ambient", "classical"), activities: list("yoga", "journaling")},
	{keyword: "bar", music: list("funk", "rock"), activities: list("live music", "dancing")},
	{keyword: "pub", music: list("rock", "indie folk"), activities: list("board games", "live music")},
	{keyword: "night_club", music: list("house", "pop"), activities: list("dancing")},
	{keyword: "lounge", music: list("jazz", "soul"), activities: list("live music")},
	{keyword: "restaurant", music: list("jazz", "bossa nova"), activities: list("cooking class", "walking")},
	{keyword: "diner", music: list("oldies", "soul"), activities: list("record shopping", "film screening")},
	{keyword: "park", music: list("acoustic", "indie folk"), activities: list("picnic", "walking", "stargazing")},
	{keyword: "museum", music: list("classical", "ambient"), activities: list("museum visit", "journaling")},
	{keyword: "gallery", music: list("classical", "jazz"), activities: list("museum visit", "pottery")},
	{keyword: "bookstore", music: list("classical", "lo-fi"), activities: list("reading", "journaling")},
	{keyword: "library", music: list("classical", "ambient"), activities: list("reading", "journaling")},
}
