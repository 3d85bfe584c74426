// Package storage persists the console's small key-value state (the
// credential, the serialized identity, UI preferences) across restarts.
package storage

// Store is a string key-value store. SetMany applies all pairs or none,
// which is what lets the session layer persist its record atomically.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	SetMany(pairs map[string]string) error
	Delete(keys ...string) error
	Clear() error
}

// Well-known keys. Theme and sidebar state belong to the presentation
// layer but share the same store.
const (
	KeyToken            = "token"
	KeyUser             = "user"
	KeyTheme            = "theme"
	KeySidebarCollapsed = "sidebarCollapsed"
)
