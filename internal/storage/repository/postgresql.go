// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, комментариев, счетчиков лайков и реестра Формулы-1.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"
)

// Ошибки уровня хранилища, по которым вызывающий код принимает решения через errors.Is.
var (
	// ErrNotFound запись с данным идентификатором отсутствует
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists нарушено ограничение уникальности
	ErrAlreadyExists = errors.New("already exists")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с доменными записями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает соединение с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// isUniqueViolation сообщает, вызвана ли ошибка нарушением ограничения уникальности.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
