package walker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metascrub/metascrub/internal/redactor"
	"github.com/metascrub/metascrub/internal/types"
)

func newTestWalker(t *testing.T, cfg Config) *Walker {
	t.Helper()
	cfg.Logger = zerolog.Nop()
	w, err := New(cfg)
	require.NoError(t, err)
	return w
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	writeFile(t, src, "Log: 2024-01-15 10:30:00 user logged in")

	w := newTestWalker(t, Config{Redact: redactor.Config{Timestamps: true}})
	res, err := w.Run(src, dst)
	require.NoError(t, err)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "Log:  user logged in", string(b))
	assert.Equal(t, 1, res.FilesWritten)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, types.StatusCreated, res.Outcomes[0].Status)
}

func TestRunSingleFileRerunUnchanged(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	writeFile(t, src, "Server api.example.com responded")

	cfg := Config{Redact: redactor.Config{ServerNames: true}}
	_, err := newTestWalker(t, cfg).Run(src, dst)
	require.NoError(t, err)

	res, err := newTestWalker(t, cfg).Run(src, dst)
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, types.StatusUnchanged, res.Outcomes[0].Status)
	assert.Equal(t, 1, res.FilesUnchanged)
	assert.Equal(t, 0, res.FilesWritten)
}

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	w := newTestWalker(t, Config{})
	_, err := w.Run(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))
}

func TestRunDirectoryMirrorsStructure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "a", "b.txt"), "ts 2024-01-15 10:30:00 end")
	writeFile(t, filepath.Join(src, "a", "c", "d.txt"), "ip 192.168.1.1 end")

	w := newTestWalker(t, Config{Redact: redactor.Config{Timestamps: true, ServerNames: true}})
	res, err := w.Run(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, res.FilesWritten)

	b, err := os.ReadFile(filepath.Join(dst, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ts  end", string(b))

	b, err = os.ReadFile(filepath.Join(dst, "a", "c", "d.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ip  end", string(b))
}

// Children are processed in lexical order, the documented traversal policy.
func TestRunDirectoryLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		writeFile(t, filepath.Join(src, name), "x")
	}

	w := newTestWalker(t, Config{})
	res, err := w.Run(src, dst)
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 3)
	assert.Equal(t, filepath.Join(dst, "a.txt"), res.Outcomes[0].Path)
	assert.Equal(t, filepath.Join(dst, "b.txt"), res.Outcomes[1].Path)
	assert.Equal(t, filepath.Join(dst, "c.txt"), res.Outcomes[2].Path)
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "a", "b.txt"), "host api.example.com up")

	dry := newTestWalker(t, Config{Redact: redactor.Config{ServerNames: true, DryRun: true}})
	dryRes, err := dry.Run(src, dst)
	require.NoError(t, err)
	assert.True(t, dryRes.DryRun)

	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err), "dry run must not create the destination")

	// A real rerun with identical inputs produces the statuses the dry run
	// already reported.
	real := newTestWalker(t, Config{Redact: redactor.Config{ServerNames: true}})
	realRes, err := real.Run(src, dst)
	require.NoError(t, err)
	require.Len(t, realRes.Outcomes, len(dryRes.Outcomes))
	for i := range dryRes.Outcomes {
		assert.Equal(t, dryRes.Outcomes[i].Path, realRes.Outcomes[i].Path)
		assert.Equal(t, dryRes.Outcomes[i].Status, realRes.Outcomes[i].Status)
	}

	b, err := os.ReadFile(filepath.Join(dst, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "host  up", string(b))
}

func TestRunFailFastAbortsSiblings(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "a.txt"), "first")
	writeFile(t, filepath.Join(src, "sub", "inner.txt"), "inner")
	writeFile(t, filepath.Join(src, "z.txt"), "last")

	// Occupy the mirrored subdirectory path with a file so MkdirAll fails
	// mid-walk.
	require.NoError(t, os.MkdirAll(dst, 0o755))
	writeFile(t, filepath.Join(dst, "sub"), "in the way")

	w := newTestWalker(t, Config{})
	_, err := w.Run(src, dst)
	require.Error(t, err)

	// a.txt sorts before sub and was already written; z.txt sorts after
	// and must not have been reached.
	_, err = os.Stat(filepath.Join(dst, "a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dst, "z.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunSkipsNonRegularEntries(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "real.txt"), "ok")
	require.NoError(t, os.Symlink(filepath.Join(src, "real.txt"), filepath.Join(src, "link.txt")))

	w := newTestWalker(t, Config{})
	res, err := w.Run(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.FilesWritten)

	_, err = os.Lstat(filepath.Join(dst, "link.txt"))
	assert.True(t, os.IsNotExist(err), "non-regular entries are not mirrored")
}

func TestRunGlobFilters(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, filepath.Join(src, "keep.txt"), "a")
	writeFile(t, filepath.Join(src, "drop.md"), "b")

	w := newTestWalker(t, Config{IncludeGlobs: "*.txt"})
	res, err := w.Run(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesWritten)
	assert.Equal(t, 1, res.Skipped)

	_, err = os.Stat(filepath.Join(dst, "drop.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestNewRejectsBadCustomPattern(t *testing.T) {
	dir := t.TempDir()
	patterns := filepath.Join(dir, "patterns.txt")
	writeFile(t, patterns, "[unclosed\n")

	_, err := New(Config{
		Redact: redactor.Config{CustomPatterns: patterns},
		Logger: zerolog.Nop(),
	})
	var ipe *redactor.InvalidPatternError
	require.Error(t, err)
	assert.True(t, errors.As(err, &ipe))
}
