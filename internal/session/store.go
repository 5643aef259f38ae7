// Package session stores the known carrier accounts and their tokens in a
// versioned JSON file under the state directory. The active account is
// materialized as an explicit Session value that flows and the API client
// receive as a parameter; nothing in the program reads ambient account
// state.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// storeVersion is the accounts.json schema version.
const storeVersion = "1.0"

const storeFileName = "accounts.json"

// Tokens carries the upstream auth material for one account.
type Tokens struct {
	IDToken      string `json:"id_token"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Account is one stored carrier account.
type Account struct {
	Number           string `json:"number"`
	SubscriberID     string `json:"subscriber_id"`
	SubscriptionType string `json:"subscription_type"`
	Name             string `json:"name,omitempty"`
	Tokens           Tokens `json:"tokens"`
}

// Session is the active account handed into every flow and API call.
type Session struct {
	Account
}

type storeFile struct {
	Version  string    `json:"version"`
	Active   string    `json:"active_number,omitempty"`
	Accounts []Account `json:"accounts"`
}

// Store is the mutex-guarded on-disk account store.
type Store struct {
	mu   sync.Mutex
	path string
	data storeFile
}

// Open loads (or initializes) the account store in dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	s := &Store{
		path: filepath.Join(dir, storeFileName),
		data: storeFile{Version: storeVersion},
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse accounts: %w", err)
	}
	if s.data.Version == "" {
		s.data.Version = storeVersion
	}
	return s, nil
}

// Active returns the session for the active account, or false when no
// account is selected.
func (s *Store) Active() (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.data.Accounts {
		if acc.Number == s.data.Active {
			return &Session{Account: acc}, true
		}
	}
	return nil, false
}

// SetActive marks the account with the given number as active.
func (s *Store) SetActive(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.data.Accounts {
		if acc.Number == number {
			s.data.Active = number
			return s.save()
		}
	}
	return fmt.Errorf("unknown account %s", number)
}

// Add inserts or updates an account, keyed by number. The first account
// added becomes active.
func (s *Store) Add(acc Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data.Accounts {
		if existing.Number == acc.Number {
			s.data.Accounts[i] = acc
			return s.save()
		}
	}
	s.data.Accounts = append(s.data.Accounts, acc)
	if s.data.Active == "" {
		s.data.Active = acc.Number
	}
	return s.save()
}

// Remove deletes an account; the active selection is cleared if it pointed
// at the removed number.
func (s *Store) Remove(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.data.Accounts[:0]
	for _, acc := range s.data.Accounts {
		if acc.Number != number {
			kept = append(kept, acc)
		}
	}
	s.data.Accounts = kept
	if s.data.Active == number {
		s.data.Active = ""
	}
	return s.save()
}

// List returns the stored accounts in insertion order.
func (s *Store) List() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Account, len(s.data.Accounts))
	copy(out, s.data.Accounts)
	return out
}

// save writes through a temp file and renames so a crash never leaves a
// half-written accounts file.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write accounts: %w", err)
	}
	return os.Rename(tmp, s.path)
}
