package shared

import (
	"context"
	"hotelsphere/shared/cache"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToBool parses an optional boolean query value. It returns nil
// when the value is blank or unparsable.
func ConvertStringToBool(value string) *bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("ignoring malformed boolean")

		return nil
	}

	return &boolValue
}

// BuildCacheKey joins the prefix and parts with ':'. Empty parts are skipped.
func BuildCacheKey(prefix string, parts ...string) string {
	segments := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return strings.Join(segments, cacheKeySeparator)
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if redisCache == nil {
		return
	}

	if err := redisCache.Purge(ctx, BuildCacheKey(prefix, "*")); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
