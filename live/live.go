package live

import "context"

// Live defines the capability every platform adapter must expose.
//
// Implementations must be safe for concurrent use by multiple goroutines
// and must have no observable side effect other than network I/O.
type Live interface {
	// Get fetches the current state of room rid.
	//
	// headers, when non-nil, add to or override the request headers the adapter
	// sends upstream. A nil map means the adapter uses its own defaults.
	// Failures are reported as *Error values and are never wrapped by the caller chain.
	Get(ctx context.Context, rid string, headers map[string]string) (*Node, error)
}

// Func adapts an ordinary function to the Live interface.
type Func func(ctx context.Context, rid string, headers map[string]string) (*Node, error)

// Get calls f.
func (f Func) Get(ctx context.Context, rid string, headers map[string]string) (*Node, error) {
	return f(ctx, rid, headers)
}
