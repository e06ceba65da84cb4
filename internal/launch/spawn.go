package launch

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

const defaultStoppingTimeout = 15 * time.Second

// stoppingMarker is the console line the reference server/client prints
// while shutting down cleanly; seeing it starts the grace-period timer
// before the child is force-killed.
var stoppingMarker = []byte("Stopping!")

// Result reports how a launched child process finished.
type Result struct {
	Plan     *Plan
	ExitCode int
}

// Run builds the launch plan and spawns the JVM, forwarding stdio and
// blocking until the child exits (or is killed after a graceless
// "Stopping!" shutdown). It forwards SIGINT/SIGTERM to the child so
// Ctrl-C at the launcher stops Minecraft rather than orphaning it.
func Run(ctx context.Context, opts Options) (*Result, error) {
	plan, err := BuildPlan(ctx, opts)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(plan.Argv[0], plan.Argv[1:]...)
	cmd.Dir = plan.Dir
	cmd.Env = plan.Env

	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	} else {
		cmd.Stdin = os.Stdin
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	timeout := opts.StoppingTimeout
	if timeout <= 0 {
		timeout = defaultStoppingTimeout
	}

	stopping := make(chan struct{}, 1)
	cmd.Stdout = &markerWriter{w: stdout, marker: stoppingMarker, onMatch: stopping}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, &LaunchSpawnError{Cause: err}
	}

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigC)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var killTimer <-chan time.Time
	for {
		select {
		case <-sigC:
			cmd.Process.Signal(syscall.SIGTERM)
		case <-stopping:
			killTimer = time.After(timeout)
		case <-killTimer:
			killChild(cmd)
		case err := <-done:
			code := cmd.ProcessState.ExitCode()
			if err != nil && code < 0 {
				return nil, &LaunchSpawnError{Cause: err}
			}
			if code != 0 && code != 130 {
				return &Result{Plan: plan, ExitCode: code}, &ChildExitError{Code: code}
			}
			return &Result{Plan: plan, ExitCode: code}, nil
		}
	}
}

// killChild force-terminates the child via gopsutil, falling back to a
// direct SIGKILL if the process handle lookup fails.
func killChild(cmd *exec.Cmd) {
	p, err := process.NewProcess(int32(cmd.Process.Pid))
	if err != nil {
		cmd.Process.Kill()
		return
	}
	p.Kill()
}

// markerWriter forwards every byte written to w, and signals onMatch
// the first time marker appears in the stream.
type markerWriter struct {
	w       io.Writer
	marker  []byte
	onMatch chan struct{}
	matched bool
	buf     bytes.Buffer
}

func (m *markerWriter) Write(p []byte) (int, error) {
	if !m.matched {
		m.buf.Write(p)
		if bytes.Contains(m.buf.Bytes(), m.marker) {
			m.matched = true
			select {
			case m.onMatch <- struct{}{}:
			default:
			}
		}
		// Bound the buffer so a marker split across writes is still
		// detected without retaining the whole stream.
		if m.buf.Len() > 4096 {
			trimmed := m.buf.Bytes()[m.buf.Len()-len(m.marker):]
			m.buf.Reset()
			m.buf.Write(trimmed)
		}
	}
	return m.w.Write(p)
}
