package ui

import (
	"bufio"
	"io"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// lineMsg is one line of merged subprocess output.
type lineMsg string

// doneMsg signals subprocess completion.
type doneMsg struct{ err error }

// runner owns the single subprocess the panel allows at a time.
type runner struct {
	cmd   *exec.Cmd
	lines chan string
	done  chan error
}

// start launches the binary with args, merging stdout and stderr into
// the line channel.
func start(bin string, args []string) (*runner, error) {
	cmd := exec.Command(bin, args...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return nil, err
	}

	r := &runner{
		cmd:   cmd,
		lines: make(chan string, 64),
		done:  make(chan error, 1),
	}

	go func() {
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			r.lines <- scanner.Text()
		}
		close(r.lines)
	}()

	go func() {
		err := cmd.Wait()
		pw.Close()
		r.done <- err
	}()

	return r, nil
}

// kill terminates the child process. Safe to call when nothing runs.
func (r *runner) kill() {
	if r != nil && r.cmd != nil && r.cmd.Process != nil {
		_ = r.cmd.Process.Kill()
	}
}

// next waits for the next line or completion.
func (r *runner) next() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-r.lines
		if ok {
			return lineMsg(line)
		}
		return doneMsg{err: <-r.done}
	}
}
