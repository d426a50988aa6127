package main

import (
	"context"
	"errors"
	"fmt"
	"hotelsphere/config"
	"hotelsphere/infras/otel"
	"hotelsphere/infras/s3"
	"hotelsphere/infras/sqlite"
	"hotelsphere/internal/backup"
	"hotelsphere/internal/replica/local"
	"hotelsphere/shared/logger"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const (
	commandExport  = "export"
	commandImport  = "import"
	commandArchive = "archive"
	commandRestore = "restore"
)

var errUsage = errors.New("usage error")

func main() {
	logger.InitLogger()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}

		log.Fatal().Err(err).Msg("Backup command failed")
	}
}

type options struct {
	file     string
	key      string
	compress bool
}

func run(args []string) error {
	var opts options

	flagSet := pflag.NewFlagSet("backup", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.file, "file", "f", "", "document to write on export or read on import (stdout/stdin when empty)")
	flagSet.StringVar(&opts.key, "key", "", "object key of the archive to restore")
	flagSet.BoolVar(&opts.compress, "compress", false, "compress exported documents with zstd")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)

			return nil
		}

		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)

		return nil
	}

	if flagSet.NArg() != 1 {
		printHelp(flagSet)

		return fmt.Errorf("%w: expected exactly one command", errUsage)
	}

	cfg := config.Get()

	logger.Configure(cfg, os.Stderr)

	service, cleanup, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	switch command := flagSet.Arg(0); command {
	case commandExport:
		return export(ctx, service, opts)
	case commandImport:
		return importDocument(ctx, service, opts)
	case commandArchive:
		archive, err := service.Archive(ctx)
		if err != nil {
			return err //nolint:wrapcheck
		}

		log.Info().Str("path", archive.Path).Str("key", archive.Key).Int("size", archive.Size).Msg("Backup archived")

		return nil
	case commandRestore:
		if opts.key == "" {
			return fmt.Errorf("%w: --key is required for restore", errUsage)
		}

		doc, err := service.Restore(ctx, opts.key)
		if err != nil {
			return err //nolint:wrapcheck
		}

		logSummary(doc, "Backup restored")

		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// newService opens the local store directly. The server must not be running
// against the same database while an import or restore replaces it.
func newService(cfg *config.Config) (backup.Service, func(), error) {
	pool, err := sqlite.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local store: %w", err)
	}

	tracer, flush := otel.New(cfg)

	cleanup := func() {
		flush()
		_ = pool.Close()
	}

	store, err := local.New(pool, tracer)
	if err != nil {
		cleanup()

		return nil, nil, fmt.Errorf("failed to prepare local store: %w", err)
	}

	var storage s3.S3
	if cfg.External.S3.BucketName != "" {
		storage = s3.New(cfg, tracer)
	}

	return backup.New(store, storage, cfg, tracer), cleanup, nil
}

func export(ctx context.Context, service backup.Service, opts options) error {
	doc, err := service.Export(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	data, err := backup.Encode(doc, opts.compress)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if opts.file == "" {
		_, err = os.Stdout.Write(data)

		return err //nolint:wrapcheck
	}

	if err = os.WriteFile(opts.file, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.file, err)
	}

	logSummary(doc, "Backup exported to "+opts.file)

	return nil
}

func importDocument(ctx context.Context, service backup.Service, opts options) error {
	var (
		data []byte
		err  error
	)

	if opts.file == "" {
		data, err = readAll(os.Stdin)
	} else {
		data, err = os.ReadFile(opts.file)
	}

	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	doc, err := service.Import(ctx, data)
	if err != nil {
		return err //nolint:wrapcheck
	}

	logSummary(doc, "Backup imported")

	return nil
}

func readAll(file *os.File) ([]byte, error) {
	info, err := file.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return nil, fmt.Errorf("%w: pipe a document on stdin or pass --file", errUsage)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return data, nil
}

func logSummary(doc backup.Document, message string) {
	summary := doc.Summary()

	log.Info().
		Int("version", summary.Version).
		Time("exportedAt", summary.ExportedAt).
		Int("rooms", summary.Rooms).
		Int("guests", summary.Guests).
		Int("bookings", summary.Bookings).
		Int("transactions", summary.Transactions).
		Int("groups", summary.Groups).
		Msg(message)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Export, import and archive the local front-desk data.

Usage:
  backup [flags] export|import|archive|restore

Commands:
  export   write the local data as a backup document
  import   replace the local data with a backup document
  archive  write a backup to the configured directory, uploading it when enabled
  restore  download an uploaded archive and import it

Flags:
%s`, flagSet.FlagUsages())
}
