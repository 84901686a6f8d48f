package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSavedSession сохраненной сессии нет.
var ErrNoSavedSession = errors.New("no saved session")

// SessionFile хранит сессию пользователя между запусками клиента.
type SessionFile struct {
	path string
}

// NewSessionFile создает хранилище по указанному пути.
// Пустой путь означает файл в каталоге конфигурации пользователя.
func NewSessionFile(path string) (*SessionFile, error) {
	const op = "client.NewSessionFile"

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		path = filepath.Join(dir, "movies-cli", "session.json")
	}
	return &SessionFile{path: path}, nil
}

// Load читает сохраненную сессию.
// Возвращает ErrNoSavedSession, если файла нет.
func (f *SessionFile) Load() (Session, error) {
	const op = "client.SessionFile.Load"

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSavedSession
		}
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if session.Token == "" {
		return Session{}, ErrNoSavedSession
	}
	return session, nil
}

// Save записывает сессию на диск. Файл доступен только владельцу.
func (f *SessionFile) Save(session Session) error {
	const op = "client.SessionFile.Save"

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	raw, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Clear удаляет сохраненную сессию. Отсутствие файла не ошибка.
func (f *SessionFile) Clear() error {
	const op = "client.SessionFile.Clear"

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
