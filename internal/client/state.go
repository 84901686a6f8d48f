// Package client содержит клиентскую часть сервиса фильмов: машину состояний
// аутентификации, долговременное хранение токена и HTTP-клиент API.
package client

import (
	"errors"
	"fmt"
)

// State состояние аутентификации клиента.
type State string

// Состояния машины аутентификации.
const (
	// StateAnonymous пользователь не вошел, токена нет
	StateAnonymous State = "anonymous"
	// StatePending учетные данные отправлены, ответа еще нет
	StatePending State = "pending"
	// StateAuthenticated токен получен и сохранен
	StateAuthenticated State = "authenticated"
	// StateError вход не удался, хранится причина
	StateError State = "error"
)

// Event событие, переводящее машину из одного состояния в другое.
type Event string

// События машины аутентификации.
const (
	// EventSubmit пользователь отправил учетные данные
	EventSubmit Event = "submit"
	// EventSuccess сервер вернул токен
	EventSuccess Event = "success"
	// EventFailure сервер отверг учетные данные или недоступен
	EventFailure Event = "failure"
	// EventLogout пользователь вышел
	EventLogout Event = "logout"
	// EventRetry пользователь начал новую попытку после ошибки
	EventRetry Event = "retry"
)

// ErrInvalidTransition событие не допускается в текущем состоянии.
var ErrInvalidTransition = errors.New("invalid state transition")

// Session данные вошедшего пользователя, хранимые машиной.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Machine машина состояний аутентификации.
//
// Машина детерминированная: для каждого состояния допустимо строгое
// подмножество событий, остальные возвращают ErrInvalidTransition
// и состояние не меняется.
type Machine struct {
	state   State
	session Session
	lastErr string
}

// NewMachine создает машину в анонимном состоянии.
func NewMachine() *Machine {
	return &Machine{state: StateAnonymous}
}

// Restore создает машину сразу в состоянии authenticated
// из ранее сохраненной сессии.
func Restore(session Session) *Machine {
	return &Machine{state: StateAuthenticated, session: session}
}

// State возвращает текущее состояние.
func (m *Machine) State() State {
	return m.state
}

// Session возвращает данные пользователя. Заполнены только в состоянии
// authenticated.
func (m *Machine) Session() Session {
	return m.session
}

// LastError возвращает текст последней ошибки входа. Заполнен только
// в состоянии error.
func (m *Machine) LastError() string {
	return m.lastErr
}

// Submit переводит машину в pending. Допустим из anonymous и error.
func (m *Machine) Submit() error {
	if m.state != StateAnonymous && m.state != StateError {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, EventSubmit, m.state)
	}
	m.state = StatePending
	m.lastErr = ""
	return nil
}

// Success переводит машину из pending в authenticated, запоминая сессию.
func (m *Machine) Success(session Session) error {
	if m.state != StatePending {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, EventSuccess, m.state)
	}
	m.state = StateAuthenticated
	m.session = session
	return nil
}

// Failure переводит машину из pending в error, запоминая причину.
func (m *Machine) Failure(reason string) error {
	if m.state != StatePending {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, EventFailure, m.state)
	}
	m.state = StateError
	m.session = Session{}
	m.lastErr = reason
	return nil
}

// Logout переводит машину из authenticated в anonymous и забывает сессию.
func (m *Machine) Logout() error {
	if m.state != StateAuthenticated {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, EventLogout, m.state)
	}
	m.state = StateAnonymous
	m.session = Session{}
	return nil
}

// Retry переводит машину из error в anonymous для новой попытки.
func (m *Machine) Retry() error {
	if m.state != StateError {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, EventRetry, m.state)
	}
	m.state = StateAnonymous
	m.lastErr = ""
	return nil
}
