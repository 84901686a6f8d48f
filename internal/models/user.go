// Package models содержит доменные структуры портфолио-сервисов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// Локальные пользователи имеют PasswordHash, пользователи, пришедшие через
// OAuth, — GoogleID. Secret — произвольный текст, опубликованный пользователем
// в сервисе секретов.
type User struct {
	UID          string    `json:"uid"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"` // admin или user
	GoogleID     string    `json:"-"`
	Secret       string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// OAuthProfile описывает профиль пользователя, полученный от внешнего провайдера.
type OAuthProfile struct {
	ProviderID string `json:"id"`    // Идентификатор субъекта у провайдера
	Name       string `json:"name"`  // Отображаемое имя
	Email      string `json:"email"` // Электронная почта
}
