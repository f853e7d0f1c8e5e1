//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, oto) write
// directly to file descriptor 2, so it ends up in the log file instead of
// corrupting the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into logger at warn level.
// Must be called before the audio device is initialized. On error the
// program can continue without capture.
func Start(logger *log.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if done != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr = orig
	pipeRead = r
	pipeWrite = w
	done = make(chan struct{})

	go forward(r, logger, done)
	return nil
}

func forward(r *os.File, logger *log.Logger, done chan struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("stderr", "line", line)
		}
	}
}

// Stop restores the original stderr and waits for pending lines.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if done == nil {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = -1

	pipeWrite.Close()
	<-done
	pipeRead.Close()
	done = nil
}
