package tmdb

// movieListResponse is the envelope for popular/search/discover results
type movieListResponse struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []movieDTO `json:"results"`
}

// movieDTO is a single listing entry
type movieDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	Popularity  float64 `json:"popularity,omitempty"`
	GenreIDs    []int64 `json:"genre_ids,omitempty"`
}

// movieDetailDTO is the full movie record with appended credits/videos
type movieDetailDTO struct {
	movieDTO

	Tagline             string         `json:"tagline,omitempty"`
	Runtime             int            `json:"runtime,omitempty"`
	Budget              int64          `json:"budget,omitempty"`
	Revenue             int64          `json:"revenue,omitempty"`
	IMDbID              string         `json:"imdb_id,omitempty"`
	Genres              []genreDTO     `json:"genres,omitempty"`
	BelongsToCollection *collectionDTO `json:"belongs_to_collection,omitempty"`
	Credits             *creditsDTO    `json:"credits,omitempty"`
	Videos              *videosDTO     `json:"videos,omitempty"`
}

type genreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []genreDTO `json:"genres"`
}

type collectionDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PosterPath string `json:"poster_path,omitempty"`
}

type creditsDTO struct {
	Cast []castDTO `json:"cast,omitempty"`
}

type castDTO struct {
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order,omitempty"`
}

type videosDTO struct {
	Results []videoDTO `json:"results,omitempty"`
}

type videoDTO struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// statusResponse carries TMDB error payloads (e.g. invalid key)
type statusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
