package models

import "time"

// Comment представляет комментарий пользователя к фильму.
//
// AuthorName — снимок имени автора на момент создания записи,
// последующие изменения профиля на него не влияют.
type Comment struct {
	ID         string    `json:"id"`
	MovieID    int       `json:"movie_id"`
	Text       string    `json:"text"`
	AuthorUID  string    `json:"author_uid"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// DummyComment используется для приёма данных из JSON-запроса на создание комментария.
type DummyComment struct {
	MovieID int    `json:"movie_id" validate:"required,gt=0"`
	Text    string `json:"text" validate:"required,max=2000"`
}
