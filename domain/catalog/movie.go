package catalog

// Movie is a catalogue entry. The review layer reads these for context
// only; catalogue mutation lives behind its own endpoints.
type Movie struct {
	ID               int     `json:"id" dynamodbav:"id" validate:"required"`
	Title            string  `json:"title" dynamodbav:"title" validate:"required"`
	OriginalTitle    string  `json:"originalTitle,omitempty" dynamodbav:"original_title"`
	OriginalLanguage string  `json:"originalLanguage,omitempty" dynamodbav:"original_language"`
	Adult            bool    `json:"adult" dynamodbav:"adult"`
	Overview         string  `json:"overview,omitempty" dynamodbav:"overview"`
	ReleaseDate      string  `json:"releaseDate,omitempty" dynamodbav:"release_date"`
	Popularity       float64 `json:"popularity,omitempty" dynamodbav:"popularity"`
	VoteAverage      float64 `json:"voteAverage,omitempty" dynamodbav:"vote_average"`
	VoteCount        int     `json:"voteCount,omitempty" dynamodbav:"vote_count"`
	GenreIDs         []int   `json:"genreIds,omitempty" dynamodbav:"genre_ids"`
	BackdropPath     string  `json:"backdropPath,omitempty" dynamodbav:"backdrop_path"`
	PosterPath       string  `json:"posterPath,omitempty" dynamodbav:"poster_path"`
	Video            bool    `json:"video" dynamodbav:"video"`
}

// CastMember is one actor's role in a movie, keyed by movieId + actorName
type CastMember struct {
	MovieID         int    `json:"movieId" dynamodbav:"movieId" validate:"required"`
	ActorName       string `json:"actorName" dynamodbav:"actorName" validate:"required"`
	RoleName        string `json:"roleName" dynamodbav:"roleName" validate:"required"`
	RoleDescription string `json:"roleDescription,omitempty" dynamodbav:"roleDescription"`
}

// CastQuery narrows a cast lookup. MovieID is mandatory; ActorName and
// RoleName are optional prefix filters (RoleName routes through the role
// index).
type CastQuery struct {
	MovieID   int
	ActorName string
	RoleName  string
}
