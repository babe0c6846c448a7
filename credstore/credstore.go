// Package credstore persists the session's credentials under the user's
// config directory: the bearer token in one file and the selected tenant id
// in another. The two entries are independent so the tenant selection can be
// cleared without touching the token.
//
// A store constructed with an empty directory is a no-op: reads return
// nothing and writes go nowhere. This covers processes with no usable home
// directory, which then simply hold their session in memory only.
package credstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

const (
	credsFileName  = "credentials.json"
	tenantFileName = "tenant.json"
)

// TokenStore persists the bearer credential. The token string is stored
// verbatim; no shape validation happens here.
type TokenStore struct {
	dir string
}

func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{dir: dir}
}

// Set persists tok. Tokens with an empty access token are ignored.
func (s *TokenStore) Set(tok *oauth2.Token) error {
	if s.dir == "" || tok == nil || tok.AccessToken == "" {
		return nil
	}
	return writeJSONFile(filepath.Join(s.dir, credsFileName), tok)
}

// Get returns the persisted token, or nil when none is stored or the store
// is unavailable.
func (s *TokenStore) Get() *oauth2.Token {
	if s.dir == "" {
		return nil
	}
	var tok oauth2.Token
	if err := readJSONFile(filepath.Join(s.dir, credsFileName), &tok); err != nil {
		return nil
	}
	if tok.AccessToken == "" {
		return nil
	}
	return &tok
}

func (s *TokenStore) Clear() error {
	if s.dir == "" {
		return nil
	}
	return removeIfPresent(filepath.Join(s.dir, credsFileName))
}

// TenantStore persists the last-selected numeric tenant id.
type TenantStore struct {
	dir string
}

func NewTenantStore(dir string) *TenantStore {
	return &TenantStore{dir: dir}
}

type tenantRecord struct {
	TenantID int64 `json:"tenant_id"`
}

func (s *TenantStore) Set(id int64) error {
	if s.dir == "" {
		return nil
	}
	return writeJSONFile(filepath.Join(s.dir, tenantFileName), tenantRecord{TenantID: id})
}

func (s *TenantStore) Get() *int64 {
	if s.dir == "" {
		return nil
	}
	var rec tenantRecord
	if err := readJSONFile(filepath.Join(s.dir, tenantFileName), &rec); err != nil {
		return nil
	}
	return &rec.TenantID
}

func (s *TenantStore) Clear() error {
	if s.dir == "" {
		return nil
	}
	return removeIfPresent(filepath.Join(s.dir, tenantFileName))
}

// writeJSONFile writes the JSON encoding of v to filename atomically,
// creating the parent directory on first use. Credentials are only ever
// readable by the owning user.
func writeJSONFile(filename string, v any) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return err
	}
	tmppath := filename + ".tmp"
	f, err := os.OpenFile(tmppath, os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		os.Remove(tmppath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmppath)
		return err
	}
	return os.Rename(tmppath, filename)
}

func readJSONFile(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func removeIfPresent(filename string) error {
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
