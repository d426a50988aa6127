package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"hotelsphere/internal/replica"
	"hotelsphere/shared/constant"
	"time"

	bookingModel "hotelsphere/internal/domains/booking/model"
	groupModel "hotelsphere/internal/domains/group/model"
	guestModel "hotelsphere/internal/domains/guest/model"
	roomModel "hotelsphere/internal/domains/room/model"
	settingsModel "hotelsphere/internal/domains/settings/model"
	transactionModel "hotelsphere/internal/domains/transaction/model"

	"github.com/klauspost/compress/zstd"
)

const (
	// Version of the document layout written by Encode.
	Version = 1

	filePrefix    = "hotelsphere_backup_"
	jsonExtension = ".json"
	zstdExtension = ".json.zst"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

	ErrUnsupportedVersion = errors.New("unsupported backup version")
	ErrEmptyDocument      = errors.New("backup document is empty")
)

// Document is the portable export of every replicated table.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	replica.Snapshot
}

func NewDocument(snapshot replica.Snapshot, at time.Time) Document {
	return Document{
		Version:    Version,
		ExportedAt: at.UTC(),
		Snapshot:   snapshot,
	}
}

// wireDocument accepts settings as one object or, for exports made by the
// browser client, as a list holding the single record.
type wireDocument struct {
	Version      int                            `json:"version"`
	ExportedAt   time.Time                      `json:"exportedAt"`
	Rooms        []roomModel.Room               `json:"rooms"`
	Guests       []guestModel.Guest             `json:"guests"`
	Bookings     []bookingModel.Booking         `json:"bookings"`
	Transactions []transactionModel.Transaction `json:"transactions"`
	Settings     json.RawMessage                `json:"settings"`
	Groups       []groupModel.GroupProfile      `json:"groups"`
}

func decodeSettings(raw json.RawMessage) (*settingsModel.HostelSettings, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		var list []settingsModel.HostelSettings
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to decode settings list: %w", err)
		}

		if len(list) == 0 {
			return nil, nil
		}

		return &list[0], nil
	}

	var settings settingsModel.HostelSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return &settings, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode backup document: %w", err)
	}

	settings, err := decodeSettings(wire.Settings)
	if err != nil {
		return err
	}

	*d = Document{
		Version:    wire.Version,
		ExportedAt: wire.ExportedAt,
		Snapshot: replica.Snapshot{
			Settings:     settings,
			Rooms:        wire.Rooms,
			Guests:       wire.Guests,
			Bookings:     wire.Bookings,
			Transactions: wire.Transactions,
			Groups:       wire.Groups,
		},
	}

	return nil
}

// Encode renders the document as indented JSON, zstd-compressed when compress is set.
func Encode(doc Document, compress bool) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup document: %w", err)
	}

	if !compress {
		return data, nil
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, nil), nil
}

// Compressed reports whether data starts with the zstd frame magic.
func Compressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

// Decode reads a document written by Encode or by the browser client.
// Documents without a version are treated as version 1.
func Decode(data []byte) (Document, error) {
	var doc Document

	if Compressed(data) {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return doc, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer decoder.Close()

		if data, err = decoder.DecodeAll(data, nil); err != nil {
			return doc, fmt.Errorf("failed to decompress backup: %w", err)
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return doc, ErrEmptyDocument
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, err //nolint:wrapcheck
	}

	if doc.Version == 0 {
		doc.Version = Version
	}

	if doc.Version > Version {
		return doc, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	return doc, nil
}

// FileName is the archive name of a document exported at the given time.
func FileName(at time.Time, compress bool) string {
	extension := jsonExtension
	if compress {
		extension = zstdExtension
	}

	return filePrefix + at.UTC().Format(constant.BackupFileTime) + extension
}

// ContentType is the media type of an encoded document.
func ContentType(compress bool) string {
	if compress {
		return constant.ContentTypeZstd
	}

	return constant.ContentTypeJSON
}

// Summary counts the rows of each table held by a document.
type Summary struct {
	Version      int       `json:"version"`
	ExportedAt   time.Time `json:"exportedAt"`
	Settings     bool      `json:"settings"`
	Rooms        int       `json:"rooms"`
	Guests       int       `json:"guests"`
	Bookings     int       `json:"bookings"`
	Transactions int       `json:"transactions"`
	Groups       int       `json:"groups"`
}

func (d Document) Summary() Summary {
	return Summary{
		Version:      d.Version,
		ExportedAt:   d.ExportedAt,
		Settings:     d.Settings != nil,
		Rooms:        len(d.Rooms),
		Guests:       len(d.Guests),
		Bookings:     len(d.Bookings),
		Transactions: len(d.Transactions),
		Groups:       len(d.Groups),
	}
}
