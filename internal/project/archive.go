package project

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/legacy"
)

// Archive layout.
const (
	ProjectXML    = "wise-project.xml"
	archivePrefix = "wiseProject-"
	uploadDir     = "upload"

	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrArchive is returned when the project archive cannot be read.
var ErrArchive = errors.New("cannot read project archive")

// ProjectID derives the project id from an archive file name of the form
// wiseProject-<id>-<stamp>-wpe.zip. Other names yield their stem.
func ProjectID(archivePath string) string {
	name := filepath.Base(archivePath)

	if i := strings.Index(name, archivePrefix); i >= 0 {
		rest := name[i+len(archivePrefix):]
		if id, _, ok := strings.Cut(rest, "-"); ok && id != "" {
			return id
		}
	}

	return strings.TrimSuffix(name, filepath.Ext(name))
}

// assetEntryName maps an archive entry to its path in the project folder:
// a leading upload/ folder becomes assets/.
func assetEntryName(name string) string {
	if name == uploadDir || strings.HasPrefix(name, uploadDir+"/") {
		return assets.Dir + strings.TrimPrefix(name, uploadDir)
	}

	return name
}

// readProject parses the project document held by the archive.
func readProject(zr *zip.Reader) (*legacy.Node, error) {
	f, err := zr.Open(ProjectXML)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrArchive, ProjectXML, err)
	}
	defer f.Close()

	root, err := legacy.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	return root, nil
}

// extracted is one archive entry copied into the project folder.
type extracted struct {
	entry string
	dest  string
}

// extractEntries copies every entry except the project document into dir.
// Entries that would land outside dir are returned in skipped.
func extractEntries(zr *zip.Reader, dir string) (copied []extracted, skipped []string, err error) {
	for _, f := range zr.File {
		if f.Name == ProjectXML {
			continue
		}

		name := assetEntryName(f.Name)
		if !filepath.IsLocal(filepath.FromSlash(path.Clean(name))) {
			skipped = append(skipped, f.Name)
			continue
		}

		dest := filepath.Join(dir, filepath.FromSlash(name))

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, dirPerm); err != nil {
				return copied, skipped, fmt.Errorf("creating %s: %w", dest, err)
			}

			continue
		}

		if err := extractFile(f, dest); err != nil {
			return copied, skipped, err
		}

		copied = append(copied, extracted{entry: f.Name, dest: dest})
	}

	return copied, skipped, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
		return fmt.Errorf("creating folder for %s: %w", dest, err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrArchive, f.Name, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}

	return out.Close()
}
