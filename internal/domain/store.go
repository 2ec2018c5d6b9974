package domain

// Storage is a key-value byte-string store. Get reports found=false for a
// key that was never written. Set replaces the whole value.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// DefaultKey is the fixed key the task sequence lives under.
const DefaultKey = "tasks"
