package models

// Movie описывает фильм из статического каталога.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Director    string  `json:"director"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
	Poster      string  `json:"poster"`
	Description string  `json:"description"`
}
