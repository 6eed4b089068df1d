// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package limits

import (
	"context"
	"time"

	"github.com/mbx92/entitlement-service/internal/types"
)

// Counter computes the current usage of one resource kind for a tenant.
type Counter func(ctx context.Context, tenantID string) (int64, error)

// CounterRegistry maps each recognized resource kind to its counting rule.
// Adding a kind is a registry entry plus a plan limits key, not a code
// change in the guard.
type CounterRegistry map[types.ResourceKind]Counter

// NewCounterRegistry builds the default counting rules:
//
//   - menuItems, tables, users: tenant-scoped totals over all time.
//   - orders: tenant-scoped count within the current calendar month, so
//     lifetime volume never dominates the cap.
//   - locations: constant 1. Multi-location support does not exist yet;
//     keeping the constant documents the gap instead of hiding it.
//   - storage: constant 0, usage accounting not implemented. The guard
//     always passes; wiring real usage replaces this entry.
//
// now is injectable so tests can pin the month boundary.
func NewCounterRegistry(storage StorageInterface, now func() time.Time) CounterRegistry {
	if now == nil {
		now = time.Now
	}

	return CounterRegistry{
		types.ResourceMenuItems: func(ctx context.Context, tenantID string) (int64, error) {
			return storage.CountMenuItems(ctx, tenantID)
		},
		types.ResourceTables: func(ctx context.Context, tenantID string) (int64, error) {
			return storage.CountTables(ctx, tenantID)
		},
		types.ResourceUsers: func(ctx context.Context, tenantID string) (int64, error) {
			return storage.CountUsers(ctx, tenantID)
		},
		types.ResourceOrders: func(ctx context.Context, tenantID string) (int64, error) {
			return storage.CountOrdersSince(ctx, tenantID, startOfMonth(now()))
		},
		types.ResourceLocations: func(ctx context.Context, tenantID string) (int64, error) {
			return 1, nil
		},
		types.ResourceStorage: func(ctx context.Context, tenantID string) (int64, error) {
			return 0, nil
		},
	}
}

// startOfMonth returns the first instant of t's month in t's location. The
// boundary is fixed at call time.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
