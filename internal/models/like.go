package models

// LikeCounter хранит счетчики лайков и дизлайков для одного фильма.
// Запись уникальна по MovieID, счетчики только возрастают.
type LikeCounter struct {
	MovieID  int `json:"movie_id"`
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}
