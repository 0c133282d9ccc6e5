package msvc

import "context"

// mockRunner implements Runner for unit testing.
type mockRunner struct {
	runFunc func(ctx context.Context, path string, args ...string) (Result, error)
	calls   int
}

func (m *mockRunner) Run(ctx context.Context, path string, args ...string) (Result, error) {
	m.calls++
	if m.runFunc != nil {
		return m.runFunc(ctx, path, args...)
	}
	return Result{}, nil
}

func stdoutRunner(out string) *mockRunner {
	return &mockRunner{runFunc: func(ctx context.Context, path string, args ...string) (Result, error) {
		return Result{Stdout: []byte(out)}, nil
	}}
}
