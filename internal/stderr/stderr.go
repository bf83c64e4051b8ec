//go:build unix

// Package stderr keeps the C audio libraries from scribbling over the TUI.
// While capturing, file descriptor 2 is a pipe and every non-blank line
// written to it is offered on Messages, to be shown as a toast.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// capture is the live redirection.
type capture struct {
	saved int
	r, w  *os.File
}

var (
	mu       sync.Mutex
	active   *capture
	messages = make(chan string, 100)
)

func Messages() <-chan string { return messages }

// Start points fd 2 at a pipe. It must run before the audio device opens,
// since the libraries resolve stderr once. Failure leaves stderr untouched.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return nil
	}
	c, err := redirect(int(os.Stderr.Fd()))
	if err != nil {
		return err
	}
	active = c
	go c.pump(messages)
	return nil
}

func redirect(fd int) (*capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	saved, err := unix.Dup(fd)
	if err == nil {
		if err = unix.Dup2(int(w.Fd()), fd); err != nil {
			unix.Close(saved)
		}
	}
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	return &capture{saved: saved, r: r, w: w}, nil
}

// pump drops lines while the channel is full; the UI only shows the latest.
func (c *capture) pump(out chan<- string) {
	sc := bufio.NewScanner(c.r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			select {
			case out <- line:
			default:
			}
		}
	}
}

// Stop puts the terminal's stderr back.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if active == nil {
		return
	}
	_ = unix.Dup2(active.saved, int(os.Stderr.Fd()))
	_ = unix.Close(active.saved)
	active.w.Close()
	active.r.Close()
	active = nil
}
