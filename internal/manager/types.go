package manager

// State represents the lifecycle state of the model handle.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateError         State = "error"
)

// Snapshot is a read-only projection of the manager state.
type Snapshot struct {
	State     State
	ModelPath string
	Loaded    bool
	Err       string
	Attempts  int
}
