package backup_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotelsphere/config"
	otelMocks "hotelsphere/infras/otel/mocks"
	s3Mocks "hotelsphere/infras/s3/mocks"
	"hotelsphere/infras/sqlite"
	"hotelsphere/internal/backup"
	roomModel "hotelsphere/internal/domains/room/model"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/local"
	"hotelsphere/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T) local.Store {
	t.Helper()

	pool, err := sqlite.Open(filepath.Join(t.TempDir(), "local.db"), 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	store, err := local.New(pool, otelMocks.NewOtel())
	require.NoError(t, err)

	return store
}

func newConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Backup.Directory = filepath.Join(t.TempDir(), "backups")

	return cfg
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	source := newStore(t)
	require.NoError(t, source.ReplaceAll(ctx, sampleSnapshot()))

	exported, err := backup.New(source, nil, newConfig(t), otelMocks.NewOtel()).Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, backup.Version, exported.Version)

	data, err := backup.Encode(exported, true)
	require.NoError(t, err)

	target := newStore(t)
	require.NoError(t, target.ReplaceAll(ctx, replica.Snapshot{Rooms: []roomModel.Room{{ID: "999", Number: "999"}}}))

	imported, err := backup.New(target, nil, newConfig(t), otelMocks.NewOtel()).Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, exported.Snapshot, imported.Snapshot)

	restored, err := target.Snapshot(ctx)
	require.NoError(t, err)

	original, err := source.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestImportRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty snapshot", data: `{"version": 1, "rooms": [], "settings": null}`},
		{name: "malformed", data: `not json`},
		{name: "future version", data: `{"version": 2, "rooms": [{"id": "101"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)
			require.NoError(t, store.ReplaceAll(ctx, sampleSnapshot()))

			_, err := backup.New(store, nil, newConfig(t), otelMocks.NewOtel()).Import(ctx, []byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

			empty, err := store.Empty(ctx)
			require.NoError(t, err)
			assert.False(t, empty)
		})
	}
}

func TestArchive(t *testing.T) {
	tests := []struct {
		name     string
		compress bool
		upload   bool
		putErr   error
		wantErr  bool
		wantKey  string
	}{
		{name: "local only", compress: false},
		{name: "compressed and uploaded", compress: true, upload: true, wantKey: "backups/archive.json.zst"},
		{name: "upload failure", upload: true, putErr: errors.New("bucket unavailable"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			storage := s3Mocks.NewMockS3(ctrl)

			store := newStore(t)
			require.NoError(t, store.ReplaceAll(ctx, sampleSnapshot()))

			cfg := newConfig(t)
			cfg.Backup.Compress = tt.compress
			cfg.Backup.Upload = tt.upload

			if tt.upload {
				storage.EXPECT().
					PutObject(gomock.Any(), "backups", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.wantKey, tt.putErr)
			}

			res, err := backup.New(store, storage, cfg, otelMocks.NewOtel()).Archive(ctx)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, res.Key)
			assert.Equal(t, tt.compress, res.Compressed)
			assert.True(t, strings.HasPrefix(filepath.Base(res.Path), "hotelsphere_backup_"))

			data, err := os.ReadFile(res.Path)
			require.NoError(t, err)
			assert.Len(t, data, res.Size)

			doc, err := backup.Decode(data)
			require.NoError(t, err)
			assert.Len(t, doc.Rooms, 1)
		})
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	data, err := backup.Encode(backup.NewDocument(sampleSnapshot(), exportedAt), true)
	require.NoError(t, err)

	storage.EXPECT().GetObject(gomock.Any(), "backups/archive.json.zst").Return(data, nil)

	store := newStore(t)

	doc, err := backup.New(store, storage, newConfig(t), otelMocks.NewOtel()).Restore(ctx, "backups/archive.json.zst")
	require.NoError(t, err)
	assert.Equal(t, exportedAt, doc.ExportedAt)

	bookings, err := store.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b-1", bookings[0].ID)
}

func TestRestoreWithoutStorage(t *testing.T) {
	_, err := backup.New(newStore(t), nil, newConfig(t), otelMocks.NewOtel()).Restore(context.Background(), "any")
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}
