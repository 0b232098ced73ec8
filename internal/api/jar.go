// ABOUTME: Cookie jar with optional on-disk persistence for the API client
// ABOUTME: Keeps session and refresh cookies across CLI invocations

package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Jar is a minimal http.CookieJar for a single-backend client.
// Cookies are keyed by name; when a path is given they are mirrored to a
// JSON file so a later process reuses the same session.
type Jar struct {
	mu      sync.Mutex
	path    string // empty means memory-only
	cookies map[string]*storedCookie
}

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// NewJar creates a memory-only cookie jar
func NewJar() *Jar {
	return &Jar{cookies: make(map[string]*storedCookie)}
}

// NewPersistentJar creates a jar backed by cookies.json in configDir.
// An empty configDir falls back to memory-only behavior.
func NewPersistentJar(configDir string) *Jar {
	j := NewJar()
	if configDir == "" {
		return j
	}
	j.path = filepath.Join(configDir, "cookies.json")
	j.load()
	return j
}

// SetCookies implements http.CookieJar
func (j *Jar) SetCookies(_ *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		// MaxAge<0 or a past Expires is a deletion
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(j.cookies, c.Name)
			continue
		}
		sc := &storedCookie{Name: c.Name, Value: c.Value, Expires: c.Expires}
		if c.MaxAge > 0 {
			sc.Expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}
		j.cookies[c.Name] = sc
	}

	j.save()
}

// Cookies implements http.CookieJar
func (j *Jar) Cookies(_ *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	out := make([]*http.Cookie, 0, len(j.cookies))
	for _, sc := range j.cookies {
		if !sc.Expires.IsZero() && sc.Expires.Before(now) {
			continue
		}
		out = append(out, &http.Cookie{Name: sc.Name, Value: sc.Value})
	}
	return out
}

// Clear drops all cookies and removes the backing file
func (j *Jar) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.cookies = make(map[string]*storedCookie)
	if j.path != "" {
		os.Remove(j.path)
	}
}

// load reads cookies from disk, ignoring a missing or corrupt file
func (j *Jar) load() {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return
	}
	var stored []*storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return
	}
	for _, sc := range stored {
		if sc.Name != "" {
			j.cookies[sc.Name] = sc
		}
	}
}

// save writes cookies to disk best-effort; callers hold the lock
func (j *Jar) save() {
	if j.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0700); err != nil {
		return
	}
	stored := make([]*storedCookie, 0, len(j.cookies))
	for _, sc := range j.cookies {
		stored = append(stored, sc)
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	os.WriteFile(j.path, data, 0600)
}
