// Package launcher hands mailto: and tel: URIs to the desktop's default
// handler.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Opener opens a URI with whatever application the system associates with
// its scheme.
type Opener interface {
	Open(uri string) error
}

// runFunc starts a command without waiting for it to exit.
type runFunc func(name string, args ...string) error

func startCommand(name string, args ...string) error {
	return startDetached(exec.Command(name, args...), nil)
}

// startDetached starts c and waits for it in the background so the child is
// reaped. done, when non-nil, receives the exit result.
func startDetached(c *exec.Cmd, done chan<- error) error {
	if err := c.Start(); err != nil {
		return err
	}
	go func() {
		err := c.Wait()
		if done != nil {
			done <- err
		}
	}()
	return nil
}

// System opens URIs with the platform's launcher command.
type System struct {
	goos   string
	run    runFunc
	logger *zap.Logger
}

// NewSystem returns an Opener for the running OS.
func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{goos: runtime.GOOS, run: startCommand, logger: logger}
}

// Open starts the handler for uri. It returns once the handler process has
// started; the handler's own exit status is not observed.
func (s *System) Open(uri string) error {
	if !supported(uri) {
		return fmt.Errorf("unsupported uri %q", uri)
	}

	name, args := Command(s.goos, uri)
	s.logger.Debug("launching handler", zap.String("uri", uri), zap.String("command", name))
	if err := s.run(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}
	return nil
}

// Command returns the launcher invocation for goos.
func Command(goos, uri string) (string, []string) {
	switch goos {
	case "windows":
		// "start" treats its first quoted argument as a window title.
		return "cmd", []string{"/c", "start", "", uri}
	case "darwin":
		return "open", []string{uri}
	default:
		return "xdg-open", []string{uri}
	}
}

func supported(uri string) bool {
	scheme, rest, ok := strings.Cut(uri, ":")
	if !ok || rest == "" {
		return false
	}
	switch strings.ToLower(scheme) {
	case "mailto", "tel":
		return true
	}
	return false
}
