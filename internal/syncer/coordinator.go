// Package syncer keeps the local store and the remote replica in eventual agreement.
package syncer

//go:generate go run go.uber.org/mock/mockgen -source=./coordinator.go -destination=./mocks/coordinator_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelsphere/config"
	"hotelsphere/infras/otel"
	"hotelsphere/internal/replica"
	"hotelsphere/internal/replica/local"
	"hotelsphere/internal/replica/remote"
	"hotelsphere/shared/constant"
	"time"

	settingsModel "hotelsphere/internal/domains/settings/model"

	"github.com/rs/zerolog/log"
)

const defaultPushTimeout = 10 * time.Second

var (
	// ErrRemoteEmpty is returned by ForceResync when the replica holds no settings.
	ErrRemoteEmpty = errors.New("remote replica holds no settings")
	errNoRecord    = errors.New("change event carries no record")
)

type Branch string

const (
	BranchRemote Branch = "remote"
	BranchLocal  Branch = "local"
	BranchSeed   Branch = "seed"
)

type BootstrapResult struct {
	Branch   Branch
	Settings settingsModel.HostelSettings
	// Resumed is set when an earlier bootstrap had been interrupted.
	Resumed bool
}

type Coordinator interface {
	Bootstrap(ctx context.Context) (BootstrapResult, error)
	Push(ctx context.Context, table replica.Table, records ...replica.Record) error
	PushSettings(ctx context.Context, settings settingsModel.HostelSettings) error
	PushDelete(ctx context.Context, table replica.Table, id string) error
	ApplyChange(ctx context.Context, event replica.ChangeEvent) error
	ForceResync(ctx context.Context) error
	Health() Health
	Run(ctx context.Context) error
}

type coordinatorImpl struct {
	local       local.Store
	remote      remote.Replica
	feed        remote.Feed
	policy      ConflictPolicy
	health      *healthState
	pushTimeout time.Duration
	otel        otel.Otel
}

func New(store local.Store, replica remote.Replica, feed remote.Feed, policy ConflictPolicy, cfg *config.Config, otel otel.Otel) Coordinator {
	pushTimeout := defaultPushTimeout
	if cfg.Sync.PushTimeoutSeconds > 0 {
		pushTimeout = time.Duration(cfg.Sync.PushTimeoutSeconds) * time.Second
	}

	if policy == nil {
		policy = DefaultPolicy()
	}

	return &coordinatorImpl{
		local:       store,
		remote:      replica,
		feed:        feed,
		policy:      policy,
		health:      newHealthState(),
		pushTimeout: pushTimeout,
		otel:        otel,
	}
}

func (c *coordinatorImpl) Health() Health {
	return c.health.get()
}

// observe records the outcome of a remote call in the health flag.
func (c *coordinatorImpl) observe(table replica.Table, err error) {
	if err == nil {
		c.health.ok()

		return
	}

	c.health.fail(err)

	switch kind := remote.Classify(err); kind {
	case remote.KindSchemaMismatch:
		log.Warn().Err(err).Str("table", string(table)).Str("hint", remote.SchemaHint).Msg("remote schema mismatch")
	case remote.KindUnreachable:
		log.Warn().Err(err).Str("table", string(table)).Msg("remote replica unreachable, continuing locally")
	default:
		log.Error().Err(err).Str("table", string(table)).Str("kind", kind.String()).Msg("failed to sync with remote replica")
	}
}

func (c *coordinatorImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.pushTimeout)
}

// Push upserts the changed records remotely. The local write is never rolled back.
func (c *coordinatorImpl) Push(ctx context.Context, table replica.Table, records ...replica.Record) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".Push")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(records) == 0 {
		return nil
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = c.remote.Upsert(ctx, table, records...)
	c.observe(table, err)

	if err != nil {
		return fmt.Errorf("failed to push %s: %w", table, err)
	}

	return nil
}

func (c *coordinatorImpl) PushSettings(ctx context.Context, settings settingsModel.HostelSettings) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".PushSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = c.remote.UpsertSettings(ctx, settings)
	c.observe(replica.Settings, err)

	if err != nil {
		return fmt.Errorf("failed to push settings: %w", err)
	}

	return nil
}

func (c *coordinatorImpl) PushDelete(ctx context.Context, table replica.Table, id string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".PushDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	err = c.remote.Delete(ctx, table, id)
	c.observe(table, err)

	if err != nil {
		return fmt.Errorf("failed to push delete of %s %s: %w", table, id, err)
	}

	return nil
}

// ApplyChange folds one inbound event into the local store. Re-applying the
// same event leaves the store unchanged.
func (c *coordinatorImpl) ApplyChange(ctx context.Context, event replica.ChangeEvent) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".ApplyChange")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTableAttributeKey, string(event.Table))

	table, err := replica.ParseTable(string(event.Table))
	if err != nil {
		log.Warn().Str("table", string(event.Table)).Msg("ignoring change event for unknown table")

		return nil
	}

	if table == replica.Settings {
		return c.applySettings(ctx, event)
	}

	switch event.EventType {
	case replica.EventInsert, replica.EventUpdate:
		return c.applyUpsert(ctx, table, event)
	case replica.EventDelete:
		id, err := event.OldID()
		if err != nil {
			return fmt.Errorf("failed to apply delete on %s: %w", table, err)
		}

		if err := c.local.Delete(ctx, table, id); err != nil {
			return fmt.Errorf("failed to apply delete on %s: %w", table, err)
		}

		log.Debug().Str("table", string(table)).Str("id", id).Msg("applied remote delete")

		return nil
	default:
		log.Warn().Str("table", string(table)).Str("event", string(event.EventType)).Msg("ignoring change event of unknown type")

		return nil
	}
}

func (c *coordinatorImpl) applyUpsert(ctx context.Context, table replica.Table, event replica.ChangeEvent) error {
	if len(event.New) == 0 {
		return fmt.Errorf("failed to apply %s on %s: %w", event.EventType, table, errNoRecord)
	}

	incoming, err := replica.DecodeJSON(table, event.New)
	if err != nil {
		return fmt.Errorf("failed to decode %s record: %w", table, err)
	}

	current, found, err := c.local.Get(ctx, table, incoming.RecordID())
	if err != nil {
		return fmt.Errorf("failed to read local %s %s: %w", table, incoming.RecordID(), err)
	}

	resolved := incoming
	if found {
		resolved = c.policy.Resolve(current, incoming)
	}

	changed, err := c.local.Put(ctx, table, resolved)
	if err != nil {
		return fmt.Errorf("failed to apply %s on %s: %w", event.EventType, table, err)
	}

	log.Debug().
		Str("table", string(table)).
		Str("id", resolved.RecordID()).
		Str("origin", event.Origin).
		Bool("changed", changed).
		Msg("applied remote change")

	return nil
}

// applySettings writes the singleton unconditionally. Deletes are ignored.
func (c *coordinatorImpl) applySettings(ctx context.Context, event replica.ChangeEvent) error {
	if event.EventType == replica.EventDelete {
		log.Warn().Msg("ignoring remote delete of settings")

		return nil
	}

	if len(event.New) == 0 {
		return fmt.Errorf("failed to apply settings: %w", errNoRecord)
	}

	var settings settingsModel.HostelSettings
	if err := json.Unmarshal(event.New, &settings); err != nil {
		return fmt.Errorf("failed to decode settings: %w", err)
	}

	if _, err := c.local.PutSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to apply settings: %w", err)
	}

	return nil
}

// Run applies change feed events until ctx ends.
func (c *coordinatorImpl) Run(ctx context.Context) error {
	if c.feed == nil {
		log.Info().Msg("Change feed disabled, running without realtime updates")

		<-ctx.Done()

		return nil
	}

	err := c.feed.Subscribe(ctx, func(ctx context.Context, event replica.ChangeEvent) error {
		if err := c.ApplyChange(ctx, event); err != nil {
			log.Error().Err(err).Str("table", string(event.Table)).Str("event", string(event.EventType)).Msg("failed to apply change event")

			return err
		}

		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err //nolint:wrapcheck
}

// ForceResync replaces the local store with the remote snapshot. On any
// remote failure the local store is left as it was.
func (c *coordinatorImpl) ForceResync(ctx context.Context) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".ForceResync")
	defer scope.End()
	defer scope.TraceIfError(err)

	c.health.syncing()

	snapshot, err := c.remote.FetchAll(ctx)
	if err != nil {
		c.observe(replica.Settings, err)

		return fmt.Errorf("failed to fetch remote snapshot: %w", err)
	}

	if snapshot.Settings == nil {
		c.health.fail(ErrRemoteEmpty)
		log.Warn().Msg("remote replica holds no settings, keeping local data")

		return ErrRemoteEmpty
	}

	if err = c.replaceLocal(ctx, "resync", snapshot); err != nil {
		c.health.fail(err)

		return err
	}

	c.health.ok()

	log.Info().
		Int("rooms", len(snapshot.Rooms)).
		Int("bookings", len(snapshot.Bookings)).
		Msg("Local store resynced from remote replica")

	return nil
}

// replaceLocal overwrites every local table inside the bootstrap marker.
func (c *coordinatorImpl) replaceLocal(ctx context.Context, source string, snapshot replica.Snapshot) error {
	if err := c.local.BeginBootstrap(ctx, source); err != nil {
		return fmt.Errorf("failed to mark bootstrap: %w", err)
	}

	if err := c.local.ReplaceAll(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to replace local tables: %w", err)
	}

	if err := c.local.CompleteBootstrap(ctx); err != nil {
		return fmt.Errorf("failed to clear bootstrap marker: %w", err)
	}

	return nil
}
