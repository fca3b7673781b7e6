//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20        // 1 MiB of scrollback
var binPath = "selectauto_e2e" // set by TestMain

// Key constants for better readability
const (
	KeyEnter     = "\r"
	KeyTab       = "\t"
	KeyEsc       = "\x1b"
	KeyCtrlA     = "\x01"
	KeyCtrlC     = "\x03"
	KeyCtrlX     = "\x18"
	KeyDownArrow = "\x1b[B"
	KeyQuit      = "q"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the selectauto binary through a PTY
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
	cond *sync.Cond
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	tf := &TUITestFramework{
		t:   t,
		buf: make([]byte, ringSize),
	}
	tf.cond = sync.NewCond(&tf.mu)
	return tf
}

// CreateTestWorkspace creates an isolated directory used as $HOME and working directory
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "selectauto-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// WriteFile writes a file relative to the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, contents string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// StartApp launches selectauto with given arguments in a PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = tf.workspace

	// Set per-process environment variables
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace, // isolate $HOME
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	// Set terminal size
	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.startReader()
	return nil
}

// startReader starts the continuous reader goroutine
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.cond.Broadcast()
				tf.mu.Unlock()
			}
			if err != nil {
				tf.mu.Lock()
				tf.cond.Broadcast()
				tf.mu.Unlock()
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time so each keystroke is a separate message
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil
}

// Enter sends enter key
func (tf *TUITestFramework) Enter() error {
	tf.t.Helper()
	return tf.SendKeys(KeyEnter)
}

// Quit sends q, which finishes when the dropdown is closed
func (tf *TUITestFramework) Quit() error {
	tf.t.Helper()
	return tf.SendKeys(KeyQuit)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain checks if the normalized output contains specific text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to exit. It reports false on timeout.
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (bool, error) {
	tf.t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	select {
	case err := <-done:
		tf.cmd = nil
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (tf *TUITestFramework) Snapshot() string {
	tf.t.Helper()
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the current contents of the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	tf.t.Helper()
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail logs the last n bytes of normalized output
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, n int) {
	tf.t.Helper()
	if !t.Failed() {
		return
	}
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	t.Logf("--- tail ---\n%s", s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
