package dataset

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ExtractArchive unpacks the dataset archive into destDir, overwriting any
// previously extracted files. Entry paths inside the archive are
// flattened, so an entry named data/cities.txt lands at destDir/cities.txt
// regardless of how the archive was laid out. This keeps the extracted
// file next to the archive whatever data directory the caller configured.
func ExtractArchive(archivePath, destDir string, logger *slog.Logger) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("dataset archive not found, expected location %s: %w", archivePath, err)
		}
		return fmt.Errorf("failed to open dataset archive %s: %w", archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
		logger.Info("extracted dataset file",
			slog.String("name", f.Name),
			slog.Uint64("size", f.UncompressedSize64))
	}

	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	name := filepath.Base(f.Name)
	if name == "." || name == ".." || name == string(os.PathSeparator) {
		return fmt.Errorf("archive entry %q has no usable file name", f.Name)
	}
	target := filepath.Join(destDir, name)

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %q: %w", f.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to extract %q: %w", f.Name, err)
	}

	return dst.Close()
}
