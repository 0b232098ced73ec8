// ABOUTME: Best-effort storage for saved login credentials
// ABOUTME: Prefills the login form; never authoritative for session state

package credentials

// Saved is a locally stored login credential used to prefill the login form
type Saved struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Manager persists and retrieves saved credentials. Every operation is
// best-effort: failures are swallowed and never reach the caller.
type Manager interface {
	// TryRetrieve returns the saved credential, if any. It must not prompt
	// or block; an unavailable facility simply yields nothing.
	TryRetrieve() (Saved, bool)
	// TryStore saves a credential after a successful login. Failures are
	// silently ignored.
	TryStore(id, secret string)
}

// NewManager returns a file-backed manager when a config directory is
// available, and a no-op manager otherwise. Callers never branch on
// availability themselves.
func NewManager(configDir string) Manager {
	if configDir == "" {
		return Noop{}
	}
	return &FileVault{dir: configDir}
}

// Noop is the manager for environments without a credential facility
type Noop struct{}

func (Noop) TryRetrieve() (Saved, bool) { return Saved{}, false }
func (Noop) TryStore(string, string)    {}
