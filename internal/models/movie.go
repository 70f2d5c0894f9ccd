package models

// Movie is a persisted catalog entry. GenreID and DirectorID are nullable
// many-to-one references.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *int    `json:"genre_id"`
	DirectorID  *int    `json:"director_id"`
}

// Input returns the writable fields of the movie, used as the base for
// partial updates.
func (m Movie) Input() MovieInput {
	return MovieInput{
		Title:       m.Title,
		Description: m.Description,
		Trailer:     m.Trailer,
		Year:        m.Year,
		Rating:      m.Rating,
		GenreID:     m.GenreID,
		DirectorID:  m.DirectorID,
	}
}

// MovieInput carries the writable movie fields for create and replace.
// It has no ID field: clients cannot choose or overwrite primary keys.
type MovieInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	GenreID     *int    `json:"genre_id"`
	DirectorID  *int    `json:"director_id"`
}

// MoviePatch is a partial update. Fields absent from the request body stay
// nil and are not applied.
type MoviePatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Trailer     *string  `json:"trailer"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	GenreID     *int     `json:"genre_id"`
	DirectorID  *int     `json:"director_id"`
}

// Apply overlays the non-nil patch fields onto in.
func (p MoviePatch) Apply(in *MovieInput) {
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.Trailer != nil {
		in.Trailer = *p.Trailer
	}
	if p.Year != nil {
		in.Year = *p.Year
	}
	if p.Rating != nil {
		in.Rating = *p.Rating
	}
	if p.GenreID != nil {
		in.GenreID = p.GenreID
	}
	if p.DirectorID != nil {
		in.DirectorID = p.DirectorID
	}
}
