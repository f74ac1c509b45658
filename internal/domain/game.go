package domain

// Game represents one catalog entry.
type Game struct {
	ID            int64
	Title         string
	Genre         string
	Platform      string
	ReleaseDate   string
	Developer     string
	Publisher     string
	Rating        string
	Description   string
	CoverImageURL string
}
