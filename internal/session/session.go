// Package session хранит токен сессии оператора с явным жизненным циклом:
// токен устанавливается при входе, читается при каждом вызове удалённого API
// и очищается при выходе. Никакого неявного глобального состояния — хранилище
// передаётся клиенту API как явный коллаборатор.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession возвращается, когда токен не установлен.
	ErrNoSession = errors.New("no active session")
	// ErrExpired возвращается, когда у токена истёк срок действия.
	ErrExpired = errors.New("session token expired")
)

// Store потокобезопасное хранилище токена одной операторской сессии.
type Store struct {
	mu    sync.RWMutex
	token string
}

// NewStore создаёт пустое хранилище сессии.
func NewStore() *Store {
	return &Store{}
}

// Set сохраняет токен, полученный при входе.
func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear сбрасывает токен при выходе.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Token возвращает действующий токен либо ошибку, если сессии нет
// или срок действия токена истёк.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	if expired(s.token) {
		return "", ErrExpired
	}
	return s.token, nil
}

// Active сообщает, есть ли живая сессия.
func (s *Store) Active() bool {
	_, err := s.Token()
	return err == nil
}

// expired читает claim exp без проверки подписи: секрет хранится на сервере,
// здесь нужен только срок действия. Токен без exp или с нечитаемыми claims
// считается живым — решение о его валидности принимает сервер.
func expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
