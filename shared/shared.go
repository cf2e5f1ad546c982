package shared

import (
	"context"
	"fmt"
	"math"
	"ohanna/shared/cache"
	"ohanna/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the 1-based page of items. A non-positive limit returns everything.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// BuildCacheKey joins the prefix and parts with colons, e.g. calendar:month:2025:3.
func BuildCacheKey(prefix string, parts ...any) string {
	var b strings.Builder

	b.WriteString(prefix)

	for _, part := range parts {
		b.WriteString(":")
		b.WriteString(fmt.Sprint(part))
	}

	return b.String()
}

// InvalidateCaches drops every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
