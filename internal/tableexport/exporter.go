package tableexport

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"vosul/internal/domain"
	"vosul/internal/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileExporter writes workbooks under a local directory and, when a bucket is
// configured, mirrors every written file to object storage.
type FileExporter struct {
	dir     string
	storage port.ObjectStorage
	bucket  string
	prefix  string
	log     zerolog.Logger
}

// NewFileExporter creates a port.TableExporter rooted at dir. storage may be
// nil to disable the mirror.
func NewFileExporter(dir string, storage port.ObjectStorage, bucket, prefix string, log zerolog.Logger) *FileExporter {
	return &FileExporter{dir: dir, storage: storage, bucket: bucket, prefix: prefix, log: log}
}

// Export writes table to filename inside the export directory.
func (e *FileExporter) Export(ctx context.Context, filename string, table domain.Table) (string, error) {
	return e.write(ctx, filename, func(p string) error { return WriteXLSX(p, table) })
}

// ExportDataset writes every record of ds to filename inside the export
// directory.
func (e *FileExporter) ExportDataset(ctx context.Context, filename string, ds *domain.Dataset) (string, error) {
	return e.write(ctx, filename, func(p string) error { return WriteDatasetXLSX(p, ds) })
}

func (e *FileExporter) write(ctx context.Context, filename string, render func(path string) error) (string, error) {
	name, err := cleanName(filename)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", domain.ErrExportFailed, e.dir, err)
	}

	target := filepath.Join(e.dir, name)
	if err := render(target); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	if e.storage != nil && e.bucket != "" {
		if err := e.mirror(ctx, target, name); err != nil {
			return target, err
		}
	}
	return target, nil
}

func (e *FileExporter) mirror(ctx context.Context, local, name string) error {
	f, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}

	key := path.Join(e.prefix, name)
	out, err := e.storage.Upload(ctx, port.UploadInput{
		Bucket:      e.bucket,
		Key:         key,
		Body:        f,
		ContentType: xlsxContentType,
		Size:        info.Size(),
	})
	if err != nil {
		return fmt.Errorf("%w: mirror to s3://%s/%s: %v", domain.ErrExportFailed, e.bucket, key, err)
	}
	e.log.Debug().Str("location", out.Location).Msg("export mirrored")
	return nil
}

// cleanName confines a caller-supplied file name to the export directory and
// forces the .xlsx extension.
func cleanName(filename string) (string, error) {
	base := filepath.Base(strings.TrimSpace(filename))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || stem == "." || stem == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: out_path %q", domain.ErrInvalidParameter, filename)
	}
	return stem + ".xlsx", nil
}
