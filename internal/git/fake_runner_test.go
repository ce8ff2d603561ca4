package git_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gitdeck.dev/gitdeck/internal/git"
)

// fakeRunner answers commands from a script keyed by the joined argv.
type fakeRunner struct {
	mu        sync.Mutex
	responses map[string][]string
	fallback  string
	errs      map[string]error
	streams   map[string][]git.Chunk
	calls     []string
	dirs      []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		responses: map[string][]string{},
		errs:      map[string]error{},
		streams:   map[string][]git.Chunk{},
	}
}

// on queues outputs for a command; the last one repeats.
func (f *fakeRunner) on(cmd string, outputs ...string) *fakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmd] = append(f.responses[cmd], outputs...)
	return f
}

// set replaces whatever is queued for a command.
func (f *fakeRunner) set(cmd string, outputs ...string) *fakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmd] = outputs
	return f
}

func (f *fakeRunner) fail(cmd string, err error) *fakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[cmd] = err
	return f
}

func (f *fakeRunner) stream(cmd string, chunks ...git.Chunk) *fakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streams[cmd] = chunks
	return f
}

func (f *fakeRunner) record(dir string, args []string) string {
	key := strings.Join(args, " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	f.dirs = append(f.dirs, dir)
	return key
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	key := f.record(dir, args)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	queued, ok := f.responses[key]
	if !ok {
		return f.fallback, nil
	}
	out := queued[0]
	if len(queued) > 1 {
		f.responses[key] = queued[1:]
	}
	return out, nil
}

func (f *fakeRunner) RunIncremental(ctx context.Context, dir string, args ...string) <-chan git.Chunk {
	key := f.record(dir, args)

	f.mu.Lock()
	chunks := f.streams[key]
	f.mu.Unlock()

	out := make(chan git.Chunk)
	go func() {
		defer close(out)
		for _, c := range chunks {
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (f *fakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.dirs = nil
}

// recordingLogger keeps every message for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}
