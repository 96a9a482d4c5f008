package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"wise-migrator/internal/runlog"
)

// Default hosts of the WISE 2 upload server.
const (
	DefaultSourceHost = "wise.berkeley.edu"
	DefaultMirrorHost = "wise2.berkeley.edu"

	// Dir is the project-relative folder images are saved into.
	Dir = "assets"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Options configures a Localizer.
type Options struct {
	// ProjectDir is the root of the converted project.
	ProjectDir string
	// SourceHost is the host step content refers to.
	SourceHost string
	// MirrorHost is the host images are actually downloaded from.
	MirrorHost string
}

// Localizer downloads referenced images and rewrites their references.
// It is used by a single conversion run and is not safe for concurrent use.
type Localizer struct {
	projectDir string
	sourceHost string
	mirrorHost string
	pattern    *regexp.Regexp
	fetcher    Fetcher
	journal    *runlog.Log
	logger     *zap.Logger
	// saved maps an original reference to its local file name.
	saved map[string]string
}

// NewLocalizer creates a Localizer. A nil fetcher disables downloading, in
// which case Rewrite returns its input unchanged.
func NewLocalizer(opts Options, fetcher Fetcher, journal *runlog.Log, logger *zap.Logger) *Localizer {
	if opts.SourceHost == "" {
		opts.SourceHost = DefaultSourceHost
	}

	if opts.MirrorHost == "" {
		opts.MirrorHost = DefaultMirrorHost
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Localizer{
		projectDir: opts.ProjectDir,
		sourceHost: opts.SourceHost,
		mirrorHost: opts.MirrorHost,
		pattern:    imagePattern(opts.SourceHost),
		fetcher:    fetcher,
		journal:    journal,
		logger:     logger,
		saved:      make(map[string]string),
	}
}

// imagePattern matches upload-server image URLs; group 1 is the file name
// below the per-project upload folder.
func imagePattern(host string) *regexp.Regexp {
	return regexp.MustCompile(`http://` + regexp.QuoteMeta(host) +
		`/upload/.+?/(.+?\.(?i:jpg|jpeg|gif|png|tiff|bmp))`)
}

// Rewrite downloads every referenced image and replaces its reference with
// the local assets path. References that fail to download are kept.
func (l *Localizer) Rewrite(ctx context.Context, text string) string {
	if l == nil || l.fetcher == nil {
		return text
	}

	for _, m := range l.pattern.FindAllStringSubmatch(text, -1) {
		original, fileName := m[0], m[1]

		if _, done := l.saved[original]; !done {
			if err := l.save(ctx, original, fileName); err != nil {
				l.logger.Warn("image download failed",
					zap.String("url", original),
					zap.Error(err))

				if l.journal != nil {
					l.journal.Printf("failed to copy: %s (%v)", original, err)
				}

				continue
			}

			l.saved[original] = fileName
		}

		text = strings.ReplaceAll(text, original, Dir+"/"+fileName)
	}

	return text
}

// MirrorURL returns the URL an upload-server reference is downloaded from.
func (l *Localizer) MirrorURL(original string) string {
	u := strings.Replace(original, "http://", "https://", 1)
	return strings.Replace(u, l.sourceHost, l.mirrorHost, 1)
}

func (l *Localizer) save(ctx context.Context, original, fileName string) error {
	src := l.MirrorURL(original)

	data, err := l.fetcher.Fetch(ctx, src)
	if err != nil {
		return err
	}

	dest, err := l.destination(fileName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return fmt.Errorf("creating assets folder: %w", err)
	}

	if err := os.WriteFile(dest, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}

	if abs, err := filepath.Abs(dest); err == nil {
		dest = abs
	}

	if l.journal != nil {
		l.journal.Printf("copying: %s to %s", src, dest)
	}

	l.logger.Debug("image localized", zap.String("url", src), zap.String("file", dest))

	return nil
}

// destination resolves fileName under the assets folder, refusing names
// that would escape it.
func (l *Localizer) destination(fileName string) (string, error) {
	assetsDir := filepath.Join(l.projectDir, Dir)
	dest := filepath.Join(assetsDir, filepath.FromSlash(fileName))

	rel, err := filepath.Rel(assetsDir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("image name %q escapes the assets folder", fileName)
	}

	return dest, nil
}
