package transfer

import (
	"archive/tar"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrCorruptArchive marks archive bytes that fail to parse during
// extraction. The wire format is plain tar as produced/consumed by the
// remote side's own tar binary, so anything unparsable means the stream was
// corrupted or truncated in transit.
var ErrCorruptArchive = errors.New("corrupt archive")

// createArchive wraps the single file at sourcePath into a tar archive
// keeping only its base name, and returns a seekable reader positioned at
// the start. The remote `tar xvf -` must accept the result byte for byte.
func createArchive(sourcePath string) (*bytes.Reader, error) {
	file, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat source file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source %q is a directory, expected a file", sourcePath)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return nil, fmt.Errorf("failed to build archive header: %w", err)
	}
	header.Name = filepath.Base(sourcePath)

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	if err := tw.WriteHeader(header); err != nil {
		return nil, fmt.Errorf("failed to write archive header: %w", err)
	}
	if _, err := io.Copy(tw, file); err != nil {
		return nil, fmt.Errorf("failed to archive %q: %w", sourcePath, err)
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return bytes.NewReader(buf.Bytes()), nil
}

// extractArchive unpacks every entry of a tar stream into destDir,
// creating subdirectories as needed. Entries that would escape destDir are
// rejected. Unparsable bytes surface ErrCorruptArchive.
func extractArchive(r io.Reader, destDir string) error {
	tr := tar.NewReader(r)
	destClean := filepath.Clean(destDir)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptArchive, err)
		}

		name := filepath.Clean(header.Name)
		if name == "" || name == "." || name == "/" {
			continue
		}
		targetPath := filepath.Join(destClean, name)
		if targetPath != destClean && !strings.HasPrefix(targetPath, destClean+string(os.PathSeparator)) {
			return fmt.Errorf("%w: entry %q escapes destination directory", ErrCorruptArchive, header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", targetPath, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("failed to create parent directory for %q: %w", targetPath, err)
			}
			outFile, err := os.OpenFile(targetPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("failed to create file %q: %w", targetPath, err)
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return fmt.Errorf("%w: %v", ErrCorruptArchive, err)
			}
			if err := outFile.Close(); err != nil {
				return fmt.Errorf("failed to close %q: %w", targetPath, err)
			}
		default:
			// Symlinks, devices and the rest have no place in a
			// single-file transfer; skip them.
		}
	}
	return nil
}
