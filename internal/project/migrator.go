package project

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/common"
	"wise-migrator/internal/config"
	"wise-migrator/internal/convert"
	"wise-migrator/internal/diagnostic"
	"wise-migrator/internal/legacy"
	"wise-migrator/internal/qti"
	"wise-migrator/internal/runlog"
	"wise-migrator/internal/steptype"
	"wise-migrator/internal/wise4"
)

const logSeparator = "===================="

// Migrator converts project archives.
type Migrator struct {
	cfg     *config.Config
	fetcher assets.Fetcher
	logger  *zap.Logger
	echo    io.Writer
}

// Options configures a Migrator.
type Options struct {
	// Config defaults to config.Default().
	Config *config.Config
	// Fetcher downloads images. Nil disables downloading and measuring.
	Fetcher assets.Fetcher
	Logger  *zap.Logger
	// Echo receives every run log line as it is written. May be nil.
	Echo io.Writer
}

// New creates a Migrator.
func New(opts Options) *Migrator {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Migrator{
		cfg:     cfg,
		fetcher: opts.Fetcher,
		logger:  logger,
		echo:    opts.Echo,
	}
}

// run holds the state of one conversion.
type run struct {
	*Migrator

	dir       string
	journal   *runlog.Log
	selector  *convert.Selector
	result    *Result
	activity  int
	stepIndex int
}

// Run converts the archive at archivePath. The returned error wraps
// ErrArchive when the archive cannot be read; step failures are reported in
// the Result instead.
func (m *Migrator) Run(ctx context.Context, archivePath string) (*Result, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}
	defer zr.Close()

	id := ProjectID(archivePath)

	base := m.cfg.OutputDir
	if base == "" {
		base = filepath.Dir(archivePath)
	}

	r := &run{
		Migrator: m,
		dir:      filepath.Join(base, id),
		journal:  runlog.New(m.echo),
		result:   &Result{ProjectID: id},
	}
	r.result.ProjectDir = r.dir

	logger := m.logger.With(zap.String("project", id))
	logger.Info("converting project", zap.String("archive", archivePath), zap.String("folder", r.dir))

	if err := os.MkdirAll(filepath.Join(r.dir, assets.Dir), dirPerm); err != nil {
		return nil, fmt.Errorf("creating project folder: %w", err)
	}

	if err := r.extract(&zr.Reader); err != nil {
		return nil, err
	}

	root, err := readProject(&zr.Reader)
	if err != nil {
		return nil, err
	}

	imageLog := runlog.New(nil)
	r.selector = r.newSelector(imageLog, logger)

	r.result.Title = root.OptionalTextAt("title")

	nodes, sequences := r.convertActivities(ctx, root)

	manifest := wise4.NewProject(r.result.Title, nodes, sequences)

	file, err := wise4.JSONFile(m.cfg.ManifestFile, manifest)
	if err != nil {
		return nil, err
	}

	if err := wise4.WriteFiles([]wise4.File{file}, r.dir); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	r.finish(imageLog)

	if err := r.journal.WriteFile(filepath.Join(r.dir, m.cfg.LogFile)); err != nil {
		return nil, err
	}

	if r.result.Diagnostics.HasErrors() {
		logger.Warn("project converted with failures",
			zap.Int("steps", len(r.result.Steps)),
			zap.Int("failed", r.result.Failed()),
			zap.NamedError("failures", r.result.Diagnostics.Error()))
	} else {
		logger.Info("project converted", zap.Int("steps", len(r.result.Steps)))
	}

	return r.result, nil
}

func (r *run) newSelector(imageLog *runlog.Log, logger *zap.Logger) *convert.Selector {
	deps := convert.Deps{
		ProjectID:     r.result.ProjectID,
		LaunchBaseURL: r.cfg.LaunchBaseURL,
		DataGraph:     r.cfg.DataGridTarget == config.TargetDataGraph,
		Logger:        logger,
	}

	if r.fetcher != nil {
		deps.Rewriter = assets.NewLocalizer(assets.Options{
			ProjectDir: r.dir,
			SourceHost: r.cfg.Fetch.SourceHost,
			MirrorHost: r.cfg.Fetch.MirrorHost,
		}, r.fetcher, imageLog, logger)
		deps.Prober = assets.NewProber(r.fetcher)
	}

	return convert.NewSelector(deps)
}

func (r *run) extract(zr *zip.Reader) error {
	copied, skipped, err := extractEntries(zr, r.dir)

	for _, c := range copied {
		dest := c.dest
		if abs, err := filepath.Abs(dest); err == nil {
			dest = abs
		}

		r.journal.Printf("copying: %s to %s", c.entry, dest)
	}

	for _, name := range skipped {
		r.logger.Warn("archive entry escapes the project folder", zap.String("entry", name))
		r.result.Diagnostics.AddWarning(diagnostic.CodeUnsafeEntry,
			fmt.Sprintf("archive entry %s escapes the project folder", name), "", "")
	}

	if err != nil {
		return fmt.Errorf("extracting uploads: %w", err)
	}

	r.journal.Println("")

	return nil
}

func (r *run) convertActivities(ctx context.Context, root *legacy.Node) ([]wise4.Node, []wise4.Sequence) {
	var (
		nodes     []wise4.Node
		sequences []wise4.Sequence
		counter   int
	)

	for i, activity := range root.SelectNodes("activity") {
		title := activity.OptionalTextAt("title")
		r.activity = i + 1
		r.journal.Printf("[Activity %d: %s]", r.activity, title)

		refs := []string{}

		for j, step := range activity.SelectNodes("step") {
			r.stepIndex = j + 1

			var res StepResult
			res, counter = r.convertStep(ctx, step, counter)
			r.result.Steps = append(r.result.Steps, res)

			if res.Node != nil {
				nodes = append(nodes, *res.Node)
				refs = append(refs, res.Node.Ref)
			}
		}

		r.journal.Println("")

		if len(refs) == 0 {
			r.result.Diagnostics.AddInfo(diagnostic.CodeEmptyActivity,
				fmt.Sprintf("activity %q has no converted steps", title), "", fmt.Sprintf("activity %d", r.activity))
		}

		sequences = append(sequences, wise4.NewSequence(wise4.ActivitySequenceID(i), title, refs))
	}

	return nodes, sequences
}

// convertStep converts one step and returns its result together with the
// counter for the next step. The counter advances whenever a converter was
// attempted, whether it succeeded or not.
func (r *run) convertStep(ctx context.Context, step *legacy.Node, counter int) (StepResult, int) {
	res := StepResult{
		Activity: r.activity,
		Index:    r.stepIndex,
		XML:      step.AsXML(),
	}

	resolution, err := steptype.Resolve(step)
	res.Resolution = resolution

	if err != nil {
		r.fail(&res, diagnostic.CodeMissingField, err)
		return res, counter
	}

	conv, ok := r.selector.Select(resolution.Type)
	if !ok {
		code := diagnostic.CodeUnconvertible
		err := fmt.Errorf("no converter for step type %s", resolution)

		if resolution.Type == steptype.Unrecognized {
			code = diagnostic.CodeUnrecognized

			if guess, ok := steptype.Suggest(resolution.Raw); ok {
				err = fmt.Errorf("%w (did you mean %s?)", err, guess)
			}
		}

		r.fail(&res, code, err)

		return res, counter
	}

	out, err := conv.Convert(ctx, step, counter)
	counter++

	if err != nil {
		r.fail(&res, failureCode(err), err)
		return res, counter
	}

	if err := wise4.WriteFiles(out.Files, r.dir); err != nil {
		r.fail(&res, diagnostic.CodeWrite, err)
		return res, counter
	}

	res.Node = &out.Node
	r.journal.Printf("[x] %s - %s - %s", resolution, out.Node.Identifier, out.Node.Title)
	r.logger.Debug("step converted",
		zap.String("type", resolution.String()),
		zap.String("identifier", out.Node.Identifier))

	return res, counter
}

func (r *run) fail(res *StepResult, code string, err error) {
	res.Err = err

	r.journal.Printf("[!] Could not create %s", res.Resolution)
	r.journal.Println(res.XML)

	r.result.Diagnostics.AddError(code, err.Error(), res.Resolution.String(), res.Location(), res.XML)
	r.logger.Warn("step not converted",
		zap.String("type", res.Resolution.String()),
		zap.String("step", res.Location()),
		zap.Error(err))
}

func failureCode(err error) string {
	switch {
	case errors.Is(err, convert.ErrMissingField):
		return diagnostic.CodeMissingField
	case errors.Is(err, qti.ErrUnsupported):
		return diagnostic.CodeUnsupported
	default:
		return diagnostic.CodeConversion
	}
}

// finish appends the image log and the summary lines.
func (r *run) finish(imageLog *runlog.Log) {
	r.journal.Append(imageLog)
	r.journal.Println(logSeparator)
	r.journal.Println("")
	r.journal.Printf("Converted project %s", r.result.ProjectID)

	if failed := r.result.Failed(); failed > 0 {
		r.journal.Printf("Failed to convert %d %s", failed, common.Plural(failed, "step", "steps"))
	} else {
		r.journal.Println("Successfully converted all steps")
	}
}
