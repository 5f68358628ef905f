package walker

import (
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/metascrub/metascrub/internal/redactor"
	"github.com/metascrub/metascrub/internal/types"
)

var (
	// ErrSourceNotFound reports a missing input path.
	ErrSourceNotFound = errors.New("input path does not exist")
	// ErrInvalidInput reports an input that is neither a regular file nor
	// a directory.
	ErrInvalidInput = errors.New("input path is neither a regular file nor a directory")
)

// Config controls a single run. Include/exclude globs are comma-separated
// and gate which files are processed in directory mode; both empty means
// everything.
type Config struct {
	Redact       redactor.Config
	IncludeGlobs string
	ExcludeGlobs string
	Logger       zerolog.Logger
}

// Walker mirrors a source tree onto a destination. Construct with New;
// a Walker is good for one Run.
type Walker struct {
	cfg    Config
	rules  []redactor.Rule
	dryRun bool
	log    zerolog.Logger
	root   string
	res    types.Result
}

// New compiles the rule set up front so a bad custom pattern fails the run
// before anything is read or written.
func New(cfg Config) (*Walker, error) {
	rules, err := redactor.Rules(cfg.Redact)
	if err != nil {
		cfg.Logger.Error().Err(err).Msg("building redaction rules")
		return nil, err
	}
	return &Walker{
		cfg:    cfg,
		rules:  rules,
		dryRun: cfg.Redact.DryRun,
		log:    cfg.Logger,
	}, nil
}

// Run dispatches src to file or directory processing and returns per-entry
// outcomes. Anything already written before a failure stays on disk.
func (w *Walker) Run(src, dst string) (types.Result, error) {
	started := time.Now()
	w.res = types.Result{DryRun: w.dryRun}
	w.root = src

	st, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			w.log.Error().Str("path", src).Msg("input path does not exist")
			return w.res, errors.Errorf("%s: %w", src, ErrSourceNotFound)
		}
		w.log.Error().Str("path", src).Err(err).Msg("stat failed")
		return w.res, errors.Errorf("stat %s: %w", src, err)
	}

	switch {
	case st.Mode().IsRegular():
		err = w.processFile(src, dst)
	case st.IsDir():
		err = w.processDirectory(src, dst)
	default:
		w.log.Error().Str("path", src).Stringer("mode", st.Mode()).Msg("unsupported input type")
		err = errors.Errorf("%s: %w", src, ErrInvalidInput)
	}

	w.res.Duration = time.Since(started)
	return w.res, err
}

// processFile reads src, redacts it, and writes the result to dst. The
// destination directory must already exist; directory mode ensures it
// before dispatching here.
func (w *Walker) processFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			w.log.Error().Str("path", src).Msg("input file does not exist")
			return errors.Errorf("%s: %w", src, ErrSourceNotFound)
		}
		w.log.Error().Str("path", src).Err(err).Msg("read failed")
		return errors.Errorf("reading %s: %w", src, err)
	}

	redacted := []byte(redactor.Apply(string(data), w.rules))
	status := classify(dst, redacted)

	if w.dryRun {
		w.log.Info().Str("src", src).Str("dst", dst).Str("status", string(status)).Msg("dry run: would write")
		w.record(types.Outcome{Path: dst, Status: status, Reason: "dry run"})
		return nil
	}

	if err := os.WriteFile(dst, redacted, 0o644); err != nil {
		w.log.Error().Str("path", dst).Err(err).Msg("write failed")
		return errors.Errorf("writing %s: %w", dst, err)
	}
	w.log.Debug().Str("src", src).Str("dst", dst).Str("status", string(status)).Msg("redacted")
	w.record(types.Outcome{Path: dst, Status: status})
	return nil
}

// processDirectory mirrors inDir onto outDir. Children are handled in the
// lexical order returned by os.ReadDir so runs are reproducible regardless
// of the platform's native listing order. The first error propagates up
// the recursion and aborts the whole invocation.
func (w *Walker) processDirectory(inDir, outDir string) error {
	if w.dryRun {
		w.log.Info().Str("path", outDir).Msg("dry run: would create directory")
	} else {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			w.log.Error().Str("path", outDir).Err(err).Msg("create directory failed")
			return errors.Errorf("creating %s: %w", outDir, err)
		}
	}
	w.res.DirsEnsured++

	entries, err := os.ReadDir(inDir)
	if err != nil {
		w.log.Error().Str("path", inDir).Err(err).Msg("list directory failed")
		return errors.Errorf("listing %s: %w", inDir, err)
	}

	for _, e := range entries {
		src := filepath.Join(inDir, e.Name())
		dst := filepath.Join(outDir, e.Name())
		switch {
		case e.Type().IsRegular():
			rel, _ := filepath.Rel(w.root, src)
			if !w.allowed(rel) {
				w.log.Debug().Str("path", src).Msg("filtered by globs")
				w.record(types.Outcome{Path: src, Status: types.StatusSkipped, Reason: "filtered by globs"})
				continue
			}
			if err := w.processFile(src, dst); err != nil {
				return err
			}
		case e.IsDir():
			if err := w.processDirectory(src, dst); err != nil {
				return err
			}
		default:
			w.log.Warn().Str("path", src).Stringer("type", e.Type()).Msg("skipping non-regular entry")
			w.record(types.Outcome{Path: src, Status: types.StatusSkipped, Reason: "not a regular file or directory"})
		}
	}
	return nil
}

func (w *Walker) record(o types.Outcome) {
	w.res.Outcomes = append(w.res.Outcomes, o)
	switch o.Status {
	case types.StatusCreated, types.StatusModified:
		w.res.FilesWritten++
	case types.StatusUnchanged:
		w.res.FilesUnchanged++
	case types.StatusSkipped:
		w.res.Skipped++
	}
}

// classify compares redacted content against whatever already exists at
// dst. xxhash keeps the comparison cheap for large files.
func classify(dst string, content []byte) types.Status {
	existing, err := os.ReadFile(dst)
	if err != nil {
		return types.StatusCreated
	}
	if xxhash.Sum64(existing) == xxhash.Sum64(content) {
		return types.StatusUnchanged
	}
	return types.StatusModified
}
