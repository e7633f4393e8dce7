// Package workdir resolves the directory the tracker state lives under,
// supporting redirection via .crossfeed-root files.
package workdir

import (
	"os"
	"path/filepath"
	"strings"
)

const rootFile = ".crossfeed-root"

// ResolveBaseDir checks for a .crossfeed-root file in the given directory.
// If found and its content names an existing directory, that directory is
// returned, so secondary checkouts (e.g. git worktrees) can share one
// tracker record with the main one. A missing, empty, or dangling redirect
// leaves baseDir unchanged — a broken pointer must not scatter state into
// a path that does not exist.
func ResolveBaseDir(baseDir string) string {
	content, err := os.ReadFile(filepath.Join(baseDir, rootFile))
	if err != nil {
		return baseDir
	}

	resolved := strings.TrimSpace(string(content))
	if resolved == "" {
		return baseDir
	}
	if info, err := os.Stat(resolved); err != nil || !info.IsDir() {
		return baseDir
	}
	return resolved
}
