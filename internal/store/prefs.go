// Package store holds the client's local state: a sqlite-backed key/value
// preferences store and the in-memory project cache shared across views.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// Preference keys. Either token key satisfies authentication; absence of
// both means not logged in.
const (
	KeyAccessToken = "access_token"
	KeyAuthToken   = "auth_token"
	KeyDarkMode    = "dark_mode"
	KeyFavorites   = "favorite_projects"
)

// Prefs is a small persistent key/value store for UI preferences and auth
// tokens. All reads tolerate absence and return zero-value defaults; all
// writes are fire-and-forget strings.
type Prefs struct {
	db *sql.DB
}

// NewPrefs creates a Prefs over an opened database.
func NewPrefs(db *sql.DB) *Prefs {
	return &Prefs{db: db}
}

// Get returns the stored value for key, or "" when absent.
func (p *Prefs) Get(key string) string {
	var value string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

// Set stores a value for key, replacing any previous value.
func (p *Prefs) Set(key, value string) error {
	_, err := p.db.Exec(`INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("storing pref %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Removing an absent key is not an error.
func (p *Prefs) Delete(key string) error {
	_, err := p.db.Exec(`DELETE FROM prefs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting pref %s: %w", key, err)
	}
	return nil
}

// Token returns the bearer token, preferring access_token over auth_token.
// An empty result means not authenticated. Satisfies api.TokenSource.
func (p *Prefs) Token() string {
	if t := p.Get(KeyAccessToken); t != "" {
		return t
	}
	return p.Get(KeyAuthToken)
}

// ClearTokens removes both token keys (logout).
func (p *Prefs) ClearTokens() error {
	if err := p.Delete(KeyAccessToken); err != nil {
		return err
	}
	return p.Delete(KeyAuthToken)
}

// DarkMode returns the stored dark-mode flag. Absent or unreadable values
// default to true, matching the default palette.
func (p *Prefs) DarkMode() bool {
	v, err := strconv.ParseBool(p.Get(KeyDarkMode))
	if err != nil {
		return true
	}
	return v
}

// SetDarkMode stores the dark-mode flag.
func (p *Prefs) SetDarkMode(on bool) error {
	return p.Set(KeyDarkMode, strconv.FormatBool(on))
}

// Favorites returns the favorited project ids, defaulting to empty.
func (p *Prefs) Favorites() []string {
	raw := p.Get(KeyFavorites)
	if raw == "" {
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}
	}
	return ids
}

// IsFavorite reports whether a project id is favorited.
func (p *Prefs) IsFavorite(id string) bool {
	for _, fav := range p.Favorites() {
		if fav == id {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes a project id from the favorites list and
// reports the new state.
func (p *Prefs) ToggleFavorite(id string) (favorited bool, err error) {
	ids := p.Favorites()
	kept := ids[:0:0]
	for _, fav := range ids {
		if fav == id {
			favorited = false
			continue
		}
		kept = append(kept, fav)
	}
	if len(kept) == len(ids) {
		kept = append(kept, id)
		favorited = true
	}

	data, err := json.Marshal(kept)
	if err != nil {
		return false, fmt.Errorf("encoding favorites: %w", err)
	}
	return favorited, p.Set(KeyFavorites, string(data))
}
