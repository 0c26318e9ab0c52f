package types

// EnsureResult reports what EnsureDir found
type EnsureResult int

const (
	// EnsureFailed means the directory could not be created
	EnsureFailed EnsureResult = iota
	// EnsureCreated means the directory did not exist and was created
	EnsureCreated
	// EnsureExisted means the directory was already present
	EnsureExisted
)

// String returns the string representation of the result
func (r EnsureResult) String() string {
	switch r {
	case EnsureCreated:
		return "created"
	case EnsureExisted:
		return "existed"
	default:
		return "failed"
	}
}

// DirEnsurer idempotently makes sure a directory exists. Only hard
// failures are returned as errors; an existing directory is success.
type DirEnsurer interface {
	EnsureDir(path string) (EnsureResult, error)
}
