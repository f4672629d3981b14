package cache

import (
	"context"
	"log/slog"
)

// SafeInvalidatePattern invalidates a cache pattern, logging instead of
// propagating errors: a stale cache entry is preferable to a failed write.
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete deletes cache keys with logging on failure.
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateRoster drops student/teacher/class list caches after a write.
func InvalidateRoster(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Roster, "*")
}

// InvalidateAttendance drops attendance list caches after new records land.
func InvalidateAttendance(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Attendance, "*")
}

// InvalidateFees drops fee caches after a ledger write.
func InvalidateFees(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Fees, "*")
}

// InvalidateBulletin drops announcement/event caches.
func InvalidateBulletin(ctx context.Context, cm *CacheManager) {
	SafeInvalidatePattern(ctx, cm.Bulletin, "*")
}
