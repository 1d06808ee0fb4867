package integration

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"

	"github.com/kodexeditor/kodex/internal/errs"
)

// GitStatus is the single-char porcelain status code for one path, per
// spec §6 (`{M, A, D, R, ??, None}`).
type GitStatus string

const (
	StatusModified  GitStatus = "M"
	StatusAdded     GitStatus = "A"
	StatusDeleted   GitStatus = "D"
	StatusRenamed   GitStatus = "R"
	StatusUntracked GitStatus = "??"
	StatusNone      GitStatus = ""
)

// GitInfo is the branch/user/commit summary spec §6's `info()` returns.
type GitInfo struct {
	BranchMarker string // trailing "*" iff there are uncommitted changes
	User         string
	Commits      int
}

// GitAdapter is the interface EditorCore consumes; ShellGit is the one
// concrete, `git`-binary-backed implementation.
type GitAdapter interface {
	Info() (GitInfo, error)
	UpdateInfo()
	Results() <-chan GitInfo
	FileStatus(path string) (GitStatus, error)
	DiffColor(path string) (string, error)
}

// ShellGit shells out to the `git` binary in dir, caching file statuses
// from one `git status --porcelain` scan per UpdateInfo call.
type ShellGit struct {
	dir string
	out chan GitInfo

	mu    sync.RWMutex
	cache map[string]GitStatus
}

// NewShellGit builds a ShellGit rooted at dir (a path inside the working
// tree).
func NewShellGit(dir string) *ShellGit {
	return &ShellGit{dir: dir, out: make(chan GitInfo, 4), cache: make(map[string]GitStatus)}
}

// Results is the queue UpdateInfo posts to, per spec §6.
func (g *ShellGit) Results() <-chan GitInfo { return g.out }

// Info runs synchronously (used for the initial status-bar population);
// UpdateInfo is the asynchronous refresh path the main loop schedules.
func (g *ShellGit) Info() (GitInfo, error) {
	branch, err := g.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return GitInfo{}, errs.Wrap(errs.External, "git not available", err)
	}
	branch = strings.TrimSpace(branch)

	dirty, _ := g.run("status", "--porcelain")
	marker := branch
	if strings.TrimSpace(dirty) != "" {
		marker += "*"
	}

	userOut, _ := g.run("config", "user.name")
	user := strings.TrimSpace(userOut)

	commitsOut, _ := g.run("rev-list", "--count", "HEAD")
	commits := 0
	fmt.Sscanf(strings.TrimSpace(commitsOut), "%d", &commits)

	g.refreshCache()
	return GitInfo{BranchMarker: marker, User: user, Commits: commits}, nil
}

// UpdateInfo schedules a background refresh and posts the result to
// Results(), per spec §6; it never blocks the caller.
func (g *ShellGit) UpdateInfo() {
	go func() {
		info, err := g.Info()
		if err != nil {
			return
		}
		g.out <- info
	}()
}

// FileStatus reports path's cached porcelain status, accepting both
// absolute and repo-relative paths.
func (g *ShellGit) FileStatus(path string) (GitStatus, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if s, ok := g.cache[path]; ok {
		return s, nil
	}
	if s, ok := g.cache[strings.TrimPrefix(path, g.dir+"/")]; ok {
		return s, nil
	}
	return StatusNone, nil
}

// DiffColor runs `git diff --color=always` through a pty so git emits
// ANSI color codes even though its stdout isn't a real terminal,
// preserving the colored-diff rendering the Git panel displays.
func (g *ShellGit) DiffColor(path string) (string, error) {
	args := []string{"diff", "--color=always"}
	if path != "" {
		args = append(args, "--", path)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return "", errs.Wrap(errs.External, "git diff failed to start", err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, ptmx); err != nil && !isPtyEOF(err) {
		return "", errs.Wrap(errs.External, "git diff read failed", err)
	}
	_ = cmd.Wait()
	return buf.String(), nil
}

func (g *ShellGit) refreshCache() {
	out, err := g.run("status", "--porcelain")
	if err != nil {
		return
	}
	cache := make(map[string]GitStatus)
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 3 {
			continue
		}
		code := strings.TrimSpace(line[:2])
		path := strings.TrimSpace(line[3:])
		cache[path] = porcelainToStatus(code)
	}
	g.mu.Lock()
	g.cache = cache
	g.mu.Unlock()
}

func porcelainToStatus(code string) GitStatus {
	switch {
	case code == "??":
		return StatusUntracked
	case strings.Contains(code, "M"):
		return StatusModified
	case strings.Contains(code, "A"):
		return StatusAdded
	case strings.Contains(code, "D"):
		return StatusDeleted
	case strings.Contains(code, "R"):
		return StatusRenamed
	default:
		return StatusNone
	}
}

func (g *ShellGit) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir
	out, err := cmd.Output()
	return string(out), err
}

// isPtyEOF reports whether err is the "input/output error" a pty read
// returns once the child process exits and closes its end — not a real
// failure, just end of stream.
func isPtyEOF(err error) bool {
	return strings.Contains(err.Error(), "input/output error") || err == io.EOF
}
