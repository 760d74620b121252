package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/omahapp/mushaf/internal/osutil"
)

// extract unpacks the archive into the pages directory.
func (p *Pipeline) extract(ctx context.Context, progress func(float64)) error {
	r, err := zip.OpenReader(p.archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	root, err := filepath.Abs(p.pagesDir)
	if err != nil {
		return err
	}

	total := len(r.File)

	for i, file := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		destPath := filepath.Join(root, filepath.FromSlash(file.Name))
		if !withinDir(root, destPath) {
			return ErrUnsafeEntry.Fmt(file.Name)
		}

		if file.FileInfo().IsDir() {
			err = os.MkdirAll(destPath, osutil.DirPermission)
			if err != nil {
				return err
			}

			continue
		}

		err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
		if err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}

		err = extractZipFile(file, destPath)
		if err != nil {
			return fmt.Errorf("failed to extract file %s: %w", file.Name, err)
		}

		progress(float64(i+1) / float64(total))
	}

	return nil
}

// extractZipFile extracts a single file from a zip archive.
func extractZipFile(file *zip.File, destPath string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	outFile, err := os.OpenFile(
		destPath,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return err
	}

	//nolint:gosec // page bundles come from a configured source
	_, err = io.Copy(outFile, rc)
	if err != nil {
		_ = outFile.Close()
		return err
	}

	return outFile.Close()
}
