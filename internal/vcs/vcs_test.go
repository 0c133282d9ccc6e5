package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

// makeRemote creates a local repository with one tagged commit.
func makeRemote(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	steps := [][]string{
		{"init"},
		{"-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "--allow-empty", "-m", "first"},
		{"tag", "v1.0.0"},
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, args := range steps {
		runGit(t, dir, args...)
	}
	runGit(t, dir, "add", "README")
	runGit(t, dir, "-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-m", "second")
	return dir
}

func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func TestGitVCS_Init(t *testing.T) {
	requireGit(t)
	vcs := NewGitVCS()
	dir := filepath.Join(t.TempDir(), "proj")

	for i := 0; i < 2; i++ {
		if err := vcs.Init(context.Background(), dir); err != nil {
			t.Fatalf("Init #%d: %v", i, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Fatalf(".git missing: %v", err)
	}
}

func TestGitVCS_Clone(t *testing.T) {
	requireGit(t)
	remote := makeRemote(t)
	vcs := NewGitVCS()
	ctx := context.Background()

	head := filepath.Join(t.TempDir(), "head")
	if err := vcs.Clone(ctx, remote, "", head); err != nil {
		t.Fatalf("Clone(HEAD): %v", err)
	}
	if _, err := os.Stat(filepath.Join(head, "README")); err != nil {
		t.Fatalf("README missing at HEAD: %v", err)
	}

	tagged := filepath.Join(t.TempDir(), "tagged")
	if err := vcs.Clone(ctx, remote, "v1.0.0", tagged); err != nil {
		t.Fatalf("Clone(v1.0.0): %v", err)
	}
	if _, err := os.Stat(filepath.Join(tagged, "README")); !os.IsNotExist(err) {
		t.Fatalf("README should not exist at v1.0.0, stat err = %v", err)
	}
}

func TestGitVCS_CloneBadRef(t *testing.T) {
	requireGit(t)
	remote := makeRemote(t)
	err := NewGitVCS().Clone(context.Background(), remote, "no-such-ref", filepath.Join(t.TempDir(), "x"))
	if err == nil || !strings.Contains(err.Error(), "fetch") {
		t.Fatalf("err = %v, want fetch error", err)
	}
}

func TestWithGitPath(t *testing.T) {
	vcs := NewGitVCS(WithGitPath(filepath.Join(t.TempDir(), "no-git")))
	if err := vcs.Init(context.Background(), t.TempDir()); err == nil {
		t.Fatal("Init with a missing git binary should fail")
	}
}
