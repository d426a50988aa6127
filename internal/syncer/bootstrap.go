package syncer

import (
	"context"
	"fmt"
	"hotelsphere/internal/replica"
	"hotelsphere/shared/constant"

	settingsModel "hotelsphere/internal/domains/settings/model"

	"github.com/rs/zerolog/log"
)

const (
	sourceRemote = "remote"
	sourceSeed   = "seed"
)

// Bootstrap reconciles the two stores at session start. A populated remote
// wins over local data, local data wins over nothing, and a fresh install is
// seeded into both. Every branch that rewrites local tables runs inside the
// durable bootstrap marker so an interrupted run is retried on next start.
func (c *coordinatorImpl) Bootstrap(ctx context.Context) (result BootstrapResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".Bootstrap")
	defer scope.End()
	defer scope.TraceIfError(err)

	c.health.syncing()

	marker, pending, err := c.local.PendingBootstrap(ctx)
	if err != nil {
		c.health.fail(err)

		return result, fmt.Errorf("failed to read bootstrap marker: %w", err)
	}

	if pending {
		result.Resumed = true

		log.Warn().
			Str("source", marker.Source).
			Time("startedAt", marker.StartedAt).
			Msg("previous bootstrap did not complete, retrying")
	}

	remoteSettings, remoteErr := c.fetchRemoteSettings(ctx)
	reachable := remoteErr == nil

	if reachable && remoteSettings != nil {
		result, err = c.bootstrapFromRemote(ctx, result)
		if err == nil {
			return result, nil
		}

		reachable = false
	}

	localEmpty, err := c.local.Empty(ctx)
	if err != nil {
		c.health.fail(err)

		return result, fmt.Errorf("failed to inspect local store: %w", err)
	}

	switch {
	case reachable && pending && !localEmpty:
		return c.bootstrapResumePush(ctx, result)
	case !localEmpty:
		return c.bootstrapFromLocal(ctx, result, reachable)
	default:
		return c.bootstrapFromSeed(ctx, result, reachable)
	}
}

func (c *coordinatorImpl) fetchRemoteSettings(ctx context.Context) (*settingsModel.HostelSettings, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	settings, err := c.remote.FetchSettings(ctx)
	if err != nil {
		c.observe(replica.Settings, err)

		return nil, err //nolint:wrapcheck
	}

	return settings, nil
}

func (c *coordinatorImpl) bootstrapFromRemote(ctx context.Context, result BootstrapResult) (BootstrapResult, error) {
	snapshot, err := c.remote.FetchAll(ctx)
	if err != nil {
		c.observe(replica.Settings, err)

		return result, fmt.Errorf("failed to fetch remote snapshot: %w", err)
	}

	if snapshot.Settings == nil {
		c.health.fail(ErrRemoteEmpty)

		return result, ErrRemoteEmpty
	}

	if err := c.replaceLocal(ctx, sourceRemote, snapshot); err != nil {
		c.health.fail(err)

		return result, err
	}

	c.health.ok()

	log.Info().
		Str("branch", string(BranchRemote)).
		Int("rooms", len(snapshot.Rooms)).
		Int("guests", len(snapshot.Guests)).
		Int("bookings", len(snapshot.Bookings)).
		Msg("Bootstrapped local store from remote replica")

	result.Branch = BranchRemote
	result.Settings = *snapshot.Settings

	return result, nil
}

// localSettings returns the stored settings, writing the defaults when local
// data exists without them.
func (c *coordinatorImpl) localSettings(ctx context.Context) (settingsModel.HostelSettings, error) {
	settings, err := c.local.GetSettings(ctx)
	if err != nil {
		return settingsModel.HostelSettings{}, fmt.Errorf("failed to read local settings: %w", err)
	}

	if settings != nil {
		return *settings, nil
	}

	defaults := DefaultSettings()
	if _, err := c.local.PutSettings(ctx, defaults); err != nil {
		return settingsModel.HostelSettings{}, fmt.Errorf("failed to write default settings: %w", err)
	}

	return defaults, nil
}

func (c *coordinatorImpl) bootstrapFromLocal(ctx context.Context, result BootstrapResult, reachable bool) (BootstrapResult, error) {
	settings, err := c.localSettings(ctx)
	if err != nil {
		c.health.fail(err)

		return result, err
	}

	if reachable {
		c.health.ok()
	}

	log.Info().
		Str("branch", string(BranchLocal)).
		Bool("remoteReachable", reachable).
		Msg("Bootstrapped from existing local data")

	result.Branch = BranchLocal
	result.Settings = settings

	return result, nil
}

// bootstrapResumePush finishes an interrupted seed: the local tables were
// written but the empty remote never received them.
func (c *coordinatorImpl) bootstrapResumePush(ctx context.Context, result BootstrapResult) (BootstrapResult, error) {
	settings, err := c.localSettings(ctx)
	if err != nil {
		c.health.fail(err)

		return result, err
	}

	snapshot, err := c.local.Snapshot(ctx)
	if err != nil {
		c.health.fail(err)

		return result, fmt.Errorf("failed to read local snapshot: %w", err)
	}

	result.Branch = BranchLocal
	result.Settings = settings

	if err := c.pushSnapshot(ctx, snapshot); err != nil {
		log.Warn().Err(err).Msg("remote still not seeded, will retry on next start")

		return result, nil
	}

	if err := c.local.CompleteBootstrap(ctx); err != nil {
		return result, fmt.Errorf("failed to clear bootstrap marker: %w", err)
	}

	log.Info().Str("branch", string(BranchLocal)).Msg("Seeded empty remote replica from local data")

	return result, nil
}

func (c *coordinatorImpl) bootstrapFromSeed(ctx context.Context, result BootstrapResult, reachable bool) (BootstrapResult, error) {
	snapshot := SeedSnapshot()

	if err := c.local.BeginBootstrap(ctx, sourceSeed); err != nil {
		c.health.fail(err)

		return result, fmt.Errorf("failed to mark bootstrap: %w", err)
	}

	if err := c.local.ReplaceAll(ctx, snapshot); err != nil {
		c.health.fail(err)

		return result, fmt.Errorf("failed to write seed data: %w", err)
	}

	result.Branch = BranchSeed
	result.Settings = *snapshot.Settings

	if !reachable {
		log.Warn().Str("branch", string(BranchSeed)).Msg("Seeded local store, remote replica unreachable")

		return result, nil
	}

	if err := c.pushSnapshot(ctx, snapshot); err != nil {
		log.Warn().Err(err).Msg("failed to seed remote replica, will retry on next start")

		return result, nil
	}

	if err := c.local.CompleteBootstrap(ctx); err != nil {
		return result, fmt.Errorf("failed to clear bootstrap marker: %w", err)
	}

	log.Info().Str("branch", string(BranchSeed)).Int("rooms", len(snapshot.Rooms)).Msg("Seeded local store and remote replica")

	return result, nil
}

// pushSnapshot upserts settings first, then every non-empty table.
func (c *coordinatorImpl) pushSnapshot(ctx context.Context, snapshot replica.Snapshot) error {
	if snapshot.Settings != nil {
		if err := c.PushSettings(ctx, *snapshot.Settings); err != nil {
			return err
		}
	}

	for _, table := range replica.Tables {
		records := snapshot.Records(table)
		if len(records) == 0 {
			continue
		}

		if err := c.Push(ctx, table, records...); err != nil {
			return err
		}
	}

	return nil
}
