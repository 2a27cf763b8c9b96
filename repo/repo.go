// Package repo makes source trees available on local disk.
//
// A tree is either an existing checkout, used in place, or a git remote
// cloned into a private temporary directory with the git command-line
// client. Private SSH remotes are reached with an explicit key passed to
// ssh through GIT_SSH_COMMAND, so no ssh-agent is required.
package repo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Spec locates one tree.
type Spec struct {
	// Name labels the tree in logs and names its clone directory.
	Name string
	// Path is an existing local checkout. It wins over URL.
	Path string
	// URL is a git remote.
	URL string
	// Ref is checked out after cloning when set.
	Ref string
}

// Manager owns the temporary directory that clones are placed in.
type Manager struct {
	dir    string
	git    string
	sshKey string
}

// NewManager prepares a manager. sshKey may be empty; when set it must
// exist.
func NewManager(sshKey string) (*Manager, error) {
	if sshKey != "" {
		info, err := os.Stat(sshKey)
		if err != nil {
			return nil, fmt.Errorf("SSH key: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("SSH key %s is a directory", sshKey)
		}
	}
	return &Manager{sshKey: sshKey}, nil
}

// Dir returns the temporary directory, or "" before the first clone.
func (m *Manager) Dir() string {
	return m.dir
}

// Resolve returns a local directory holding the tree described by s,
// cloning it first when s has no local path.
func (m *Manager) Resolve(ctx context.Context, s Spec) (string, error) {
	if s.Path != "" {
		abs, err := filepath.Abs(s.Path)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.Name, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("%s: %s is not a directory", s.Name, abs)
		}
		return abs, nil
	}
	if s.URL == "" {
		return "", fmt.Errorf("%s: no path or url", s.Name)
	}
	return m.Clone(ctx, s)
}

// Clone clones s.URL into the manager's directory and checks out s.Ref.
func (m *Manager) Clone(ctx context.Context, s Spec) (string, error) {
	if err := m.init(); err != nil {
		return "", err
	}

	dest := filepath.Join(m.dir, cloneDirName(s))
	if err := m.run(ctx, "", "clone", "--quiet", s.URL, dest); err != nil {
		return "", fmt.Errorf("cloning %s: %w", s.URL, err)
	}
	if s.Ref != "" {
		if err := m.run(ctx, dest, "checkout", "--quiet", s.Ref); err != nil {
			return "", fmt.Errorf("checking out %s in %s: %w", s.Ref, s.URL, err)
		}
	}
	return dest, nil
}

// Close removes every clone.
func (m *Manager) Close() error {
	if m.dir == "" {
		return nil
	}
	err := os.RemoveAll(m.dir)
	m.dir = ""
	return err
}

func (m *Manager) init() error {
	if m.git == "" {
		git, err := exec.LookPath("git")
		if err != nil {
			return fmt.Errorf("git not found; install git to clone remote sources")
		}
		m.git = git
	}
	if m.dir == "" {
		dir, err := os.MkdirTemp("", "keyaudit-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		m.dir = dir
	}
	return nil
}

// run executes git with args. Output is discarded on success; stderr is
// included in the error on failure.
func (m *Manager) run(ctx context.Context, dir string, args ...string) error {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.CommandContext(ctx, m.git, args...)
	cmd.Env = m.env()

	var stderrBuf strings.Builder
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderrBuf.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func (m *Manager) env() []string {
	env := append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	if m.sshKey != "" {
		env = append(env, "GIT_SSH_COMMAND="+sshCommand(m.sshKey))
	}
	return env
}

// sshCommand builds the ssh invocation that uses only key.
func sshCommand(key string) string {
	return fmt.Sprintf("ssh -i %s -o IdentitiesOnly=yes", shellQuote(key))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// cloneDirName picks the clone directory: s.Name, or the last
// path element of the URL without ".git".
func cloneDirName(s Spec) string {
	if s.Name != "" {
		return s.Name
	}
	u := strings.TrimSuffix(strings.TrimRight(s.URL, "/"), ".git")
	if i := strings.LastIndexAny(u, "/:"); i >= 0 {
		u = u[i+1:]
	}
	if u == "" {
		return "repo"
	}
	return u
}
