// Package credentials persists login, password, bearer token and basic
// profile fields across process restarts as a plain key/value document.
// No field validation happens here; that is the caller's job.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const (
	keyLogin      = "login"
	keyPassword   = "password"
	keyToken      = "token"
	keyUserID     = "userId"
	keyUserName   = "userName"
	keyDepartment = "department"
)

// Store is a file-backed credential store. Every save is written through to
// disk before returning. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewStore opens the store at path, loading any previously persisted fields.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("credentials: path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create credentials directory: %w", err)
	}

	s := &Store{
		path:   path,
		values: map[string]string{},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	return s, nil
}

func (s *Store) SaveLogin(login string) error {
	return s.save(map[string]string{keyLogin: login})
}

func (s *Store) SavePassword(password string) error {
	return s.save(map[string]string{keyPassword: password})
}

// SaveCredentials persists login and password in one write.
func (s *Store) SaveCredentials(login, password string) error {
	return s.save(map[string]string{
		keyLogin:    login,
		keyPassword: password,
	})
}

func (s *Store) Login() string {
	return s.get(keyLogin)
}

func (s *Store) Password() string {
	return s.get(keyPassword)
}

func (s *Store) SaveToken(token string) error {
	return s.save(map[string]string{keyToken: token})
}

func (s *Store) Token() string {
	return s.get(keyToken)
}

func (s *Store) SaveUserID(id int64) error {
	return s.save(map[string]string{keyUserID: strconv.FormatInt(id, 10)})
}

// UserID returns the stored user id, or 0 when absent or unparsable.
func (s *Store) UserID() int64 {
	id, err := strconv.ParseInt(s.get(keyUserID), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (s *Store) SaveUserName(name string) error {
	return s.save(map[string]string{keyUserName: name})
}

func (s *Store) UserName() string {
	return s.get(keyUserName)
}

// SaveUserInfo persists id, name and department in one write.
func (s *Store) SaveUserInfo(id int64, name, department string) error {
	return s.save(map[string]string{
		keyUserID:     strconv.FormatInt(id, 10),
		keyUserName:   name,
		keyDepartment: department,
	})
}

func (s *Store) UserDepartment() string {
	return s.get(keyDepartment)
}

// Clear erases all persisted fields.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = map[string]string{}
	return s.flush()
}

// IsAuthenticated reports whether both login and password are stored. Token
// presence does not count: a token without saved credentials is not a session.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[keyLogin] != "" && s.values[keyPassword] != ""
}

func (s *Store) get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[key]
}

func (s *Store) save(fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range fields {
		s.values[key] = value
	}
	return s.flush()
}

// flush writes the document to a temp file and renames it into place, so a
// crash mid-write never leaves a truncated file. Caller must hold mu.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) // Cleanup on error
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}

	return nil
}
