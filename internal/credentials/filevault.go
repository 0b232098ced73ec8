// ABOUTME: File-backed credential store in the user's config directory
// ABOUTME: The terminal analog of the browser's credential facility

package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/liubkkkko/taskManager/internal/debuglog"
)

// FileVault stores a single credential as JSON with 0600 permissions.
// Like the platform facility it mirrors, it is purely a convenience:
// any failure is logged at debug level and otherwise invisible.
type FileVault struct {
	dir string
}

// NewFileVault creates a vault rooted at dir
func NewFileVault(dir string) *FileVault {
	return &FileVault{dir: dir}
}

func (v *FileVault) file() string {
	return filepath.Join(v.dir, "credentials.json")
}

// TryRetrieve implements Manager
func (v *FileVault) TryRetrieve() (Saved, bool) {
	data, err := os.ReadFile(v.file())
	if err != nil {
		if !os.IsNotExist(err) {
			debuglog.Debugf("credential read failed: %v", err)
		}
		return Saved{}, false
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		debuglog.Debugf("credential decode failed: %v", err)
		return Saved{}, false
	}
	if saved.ID == "" && saved.Password == "" {
		return Saved{}, false
	}
	return saved, true
}

// TryStore implements Manager
func (v *FileVault) TryStore(id, secret string) {
	if err := os.MkdirAll(v.dir, 0700); err != nil {
		debuglog.Debugf("credential store failed: %v", err)
		return
	}

	data, err := json.Marshal(Saved{ID: id, Password: secret})
	if err != nil {
		debuglog.Debugf("credential encode failed: %v", err)
		return
	}

	if err := os.WriteFile(v.file(), data, 0600); err != nil {
		debuglog.Debugf("credential write failed: %v", err)
	}
}
