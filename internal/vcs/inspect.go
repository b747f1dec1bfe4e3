package vcs

import (
	"context"
	"os"
	"path/filepath"

	"quadstat/internal/system"
)

// Kind is the repository flavor found in a directory.
type Kind int

const (
	KindNone Kind = iota
	KindJJ
	KindGit
)

func (k Kind) String() string {
	switch k {
	case KindJJ:
		return "jj"
	case KindGit:
		return "git"
	default:
		return "none"
	}
}

// Placeholders used when a repository is present but has no named head.
const (
	GitDetached  = "detached"
	JJNoBookmark = "@"
)

// Info is the version-control context shown on the status line.
// An empty Branch means no repository was detected.
type Info struct {
	Branch      string
	FileChanges string
	LineChanges string
}

const jjBranchTemplate = `if(bookmarks, bookmarks.join(" "), change_id.shortest())`

// Detect classifies dir by its marker directory. jj is checked first since
// colocated jj repositories also carry a .git directory.
func Detect(dir string) Kind {
	if isDir(filepath.Join(dir, ".jj")) {
		return KindJJ
	}
	if exists(filepath.Join(dir, ".git")) {
		return KindGit
	}
	return KindNone
}

// Inspect collects branch and change summaries for dir. It never fails:
// anything that goes wrong leaves the corresponding field at its fallback.
func Inspect(ctx context.Context, r Runner, dir string) Info {
	if dir == "" {
		dir = "."
	}
	p := inspector{ctx: ctx, r: r, dir: dir}
	switch Detect(dir) {
	case KindJJ:
		return p.jj()
	case KindGit:
		return p.git()
	default:
		return Info{}
	}
}

type inspector struct {
	ctx context.Context
	r   Runner
	dir string
}

func (p inspector) git() Info {
	info := Info{Branch: GitDetached}
	if out, ok := p.output("git", "branch", "--show-current"); ok {
		if b := firstLine(out); b != "" {
			info.Branch = b
		}
	}
	if out, ok := p.output("git", "diff", "--name-status"); ok {
		info.FileChanges = FileChanges(out)
	}
	if out, ok := p.output("git", "diff", "--shortstat"); ok {
		info.LineChanges = LineChanges(out)
	}
	return info
}

func (p inspector) jj() Info {
	info := Info{Branch: JJNoBookmark}
	if out, ok := p.output("jj", "log", "-r", "@", "--no-graph", "-T", jjBranchTemplate); ok {
		if b := firstLine(out); b != "" {
			info.Branch = b
		}
	}
	if out, ok := p.output("jj", "diff", "--summary"); ok {
		info.FileChanges = FileChanges(out)
	}
	if out, ok := p.output("jj", "diff", "--stat"); ok {
		info.LineChanges = LineChanges(out)
	}
	return info
}

// output runs one command and reports whether it exited cleanly.
func (p inspector) output(name string, args ...string) (string, bool) {
	res, err := p.r.Run(p.ctx, p.dir, name, args...)
	if err != nil {
		system.Logger.Debug("vcs command failed to start", "cmd", name, "args", args, "err", err)
		return "", false
	}
	if !res.OK() {
		system.Logger.Debug("vcs command exited non-zero", "cmd", name, "args", args, "code", res.ExitCode)
		return "", false
	}
	return res.Stdout, true
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// exists accepts files too: git worktrees and submodules use a .git file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
