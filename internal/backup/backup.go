// Package backup exports the local store to a portable document and restores
// it again, on disk and optionally in an S3 bucket.
package backup

//go:generate go run go.uber.org/mock/mockgen -source=./backup.go -destination=./mocks/backup_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelsphere/config"
	"hotelsphere/infras/otel"
	"hotelsphere/infras/s3"
	"hotelsphere/internal/replica/local"
	"hotelsphere/shared/constant"
	"hotelsphere/shared/failure"
	"hotelsphere/shared/timezone"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const defaultDirectory = "backups"

type Archive struct {
	Path       string `json:"path"`
	Key        string `json:"key,omitempty"`
	Size       int    `json:"size"`
	Compressed bool   `json:"compressed"`
}

type Service interface {
	Export(ctx context.Context) (Document, error)
	Import(ctx context.Context, data []byte) (Document, error)
	Archive(ctx context.Context) (Archive, error)
	Restore(ctx context.Context, key string) (Document, error)
}

type serviceImpl struct {
	store   local.Store
	storage s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

// New returns the backup service. storage may be nil when uploads are disabled.
func New(store local.Store, storage s3.S3, cfg *config.Config, otel otel.Otel) Service {
	return &serviceImpl{
		store:   store,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) directory() string {
	if s.cfg.Backup.Directory != "" {
		return s.cfg.Backup.Directory
	}

	return defaultDirectory
}

func (s *serviceImpl) Export(ctx context.Context) (doc Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelBackupScopeName, constant.OtelBackupScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read local snapshot")

		return doc, fmt.Errorf("failed to read local snapshot: %w", err)
	}

	return NewDocument(snapshot, timezone.Now()), nil
}

// Import replaces every local table with the content of data. A document
// holding no settings and no rows is refused.
func (s *serviceImpl) Import(ctx context.Context, data []byte) (doc Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelBackupScopeName, constant.OtelBackupScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err = Decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("rejected backup document")

		return doc, failure.BadRequest(err) // nolint:wrapcheck
	}

	if doc.Snapshot.Empty() {
		return doc, failure.BadRequest(ErrEmptyDocument) // nolint:wrapcheck
	}

	if err = s.store.ReplaceAll(ctx, doc.Snapshot); err != nil {
		log.Error().Err(err).Msg("failed to import backup")

		return doc, fmt.Errorf("failed to import backup: %w", err)
	}

	log.Info().
		Int("version", doc.Version).
		Time("exportedAt", doc.ExportedAt).
		Int("rooms", len(doc.Rooms)).
		Int("bookings", len(doc.Bookings)).
		Msg("backup imported")

	return doc, nil
}

// Archive writes the current export to the backup directory and uploads it
// when uploads are enabled.
func (s *serviceImpl) Archive(ctx context.Context) (res Archive, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelBackupScopeName, constant.OtelBackupScopeName+".Archive")
	defer scope.End()
	defer scope.TraceIfError(err)

	doc, err := s.Export(ctx)
	if err != nil {
		return res, err
	}

	compress := s.cfg.Backup.Compress

	data, err := Encode(doc, compress)
	if err != nil {
		return res, err
	}

	name := FileName(doc.ExportedAt, compress)
	dir := s.directory()

	if err = os.MkdirAll(dir, 0o750); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to create backup directory")

		return res, fmt.Errorf("failed to create backup directory: %w", err)
	}

	res.Path = filepath.Join(dir, name)
	res.Size = len(data)
	res.Compressed = compress

	if err = os.WriteFile(res.Path, data, 0o600); err != nil {
		log.Error().Err(err).Str("path", res.Path).Msg("failed to write backup")

		return res, fmt.Errorf("failed to write backup: %w", err)
	}

	if s.cfg.Backup.Upload && s.storage != nil {
		if res.Key, err = s.storage.PutObject(ctx, filepath.Base(dir), name, ContentType(compress), data); err != nil {
			return res, fmt.Errorf("failed to upload backup: %w", err)
		}
	}

	log.Info().Str("path", res.Path).Str("key", res.Key).Int("size", res.Size).Msg("backup archived")

	return res, nil
}

// Restore downloads an uploaded archive and imports it.
func (s *serviceImpl) Restore(ctx context.Context, key string) (doc Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelBackupScopeName, constant.OtelBackupScopeName+".Restore")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.storage == nil {
		return doc, failure.Unavailable("backup storage is not configured") // nolint:wrapcheck
	}

	data, err := s.storage.GetObject(ctx, key)
	if err != nil {
		return doc, fmt.Errorf("failed to download backup: %w", err)
	}

	return s.Import(ctx, data)
}
