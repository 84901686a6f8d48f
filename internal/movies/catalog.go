// Package movies содержит статический каталог фильмов, раздаваемый сервисом.
// Каталог неизменяемый, комментарии и лайки к фильмам живут в хранилище.
package movies

import "github.com/magabrotheeeer/portfolio-backend/internal/models"

var catalog = []models.Movie{
	{
		ID:          1,
		Title:       "The Shawshank Redemption",
		Year:        1994,
		Director:    "Frank Darabont",
		Genre:       "Drama",
		Rating:      9.3,
		Poster:      "https://m.media-amazon.com/images/M/MV5BNDE3ODcxYzMtY2YzZC00NmNlLWJiNDMtZDViZWM2MzIxZDYwXkEyXkFqcGdeQXVyNjAwNDUxODI@._V1_SX300.jpg",
		Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
	},
	{
		ID:          2,
		Title:       "The Godfather",
		Year:        1972,
		Director:    "Francis Ford Coppola",
		Genre:       "Crime, Drama",
		Rating:      9.2,
		Poster:      "https://m.media-amazon.com/images/M/MV5BM2MyNjYxNmUtYTAwNi00MTYxLWJmNWYtYzZlODY3ZTk3OTFlXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
		Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
	},
	{
		ID:          3,
		Title:       "The Dark Knight",
		Year:        2008,
		Director:    "Christopher Nolan",
		Genre:       "Action, Crime, Drama",
		Rating:      9.0,
		Poster:      "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_SX300.jpg",
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests.",
	},
	{
		ID:          4,
		Title:       "Pulp Fiction",
		Year:        1994,
		Director:    "Quentin Tarantino",
		Genre:       "Crime, Drama",
		Rating:      8.9,
		Poster:      "https://m.media-amazon.com/images/M/MV5BNGNhMDIzZTUtNTBlZi00MTRlLWFjM2ItYzViMjE3YzI5MjljXkEyXkFqcGdeQXVyNzkwMjQ5NzM@._V1_SX300.jpg",
		Description: "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
	},
	{
		ID:          5,
		Title:       "Forrest Gump",
		Year:        1994,
		Director:    "Robert Zemeckis",
		Genre:       "Drama, Romance",
		Rating:      8.8,
		Poster:      "https://m.media-amazon.com/images/M/MV5BNWIwODRlZTUtY2U3ZS00Yzg1LWJhNzYtMmZiYmEyNmU1NjMzXkEyXkFqcGdeQXVyMTQxNzMzNDI@._V1_SX300.jpg",
		Description: "The presidencies of Kennedy and Johnson, the Vietnam War, and other historical events unfold from the perspective of an Alabama man.",
	},
	{
		ID:          6,
		Title:       "Inception",
		Year:        2010,
		Director:    "Christopher Nolan",
		Genre:       "Action, Sci-Fi, Thriller",
		Rating:      8.8,
		Poster:      "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_SX300.jpg",
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea.",
	},
}

// All возвращает копию списка всех фильмов каталога.
func All() []models.Movie {
	result := make([]models.Movie, len(catalog))
	copy(result, catalog)
	return result
}

// Find возвращает фильм по ID и признак его наличия в каталоге.
func Find(id int) (models.Movie, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}

// Exists сообщает, есть ли фильм с данным ID в каталоге.
func Exists(id int) bool {
	_, ok := Find(id)
	return ok
}

// Catalog оборачивает статический каталог значением, которое можно передать
// сервисам через интерфейс.
type Catalog struct{}

// Default возвращает каталог по умолчанию.
func Default() Catalog { return Catalog{} }

// All возвращает копию списка всех фильмов каталога.
func (Catalog) All() []models.Movie { return All() }

// Find возвращает фильм по ID и признак его наличия в каталоге.
func (Catalog) Find(id int) (models.Movie, bool) { return Find(id) }

// Exists сообщает, есть ли фильм с данным ID в каталоге.
func (Catalog) Exists(id int) bool { return Exists(id) }
