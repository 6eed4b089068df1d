// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package limits

import (
	"context"
	"time"

	"github.com/mbx92/entitlement-service/internal/types"
)

// StorageInterface defines the storage operations required by the limits package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CountMenuItems(ctx context.Context, tenantID string) (int64, error)
	CountTables(ctx context.Context, tenantID string) (int64, error)
	CountUsers(ctx context.Context, tenantID string) (int64, error)
	CountOrdersSince(ctx context.Context, tenantID string, since time.Time) (int64, error)
}

// GuardInterface is the boundary exposed to request handlers.
type GuardInterface interface {
	CheckResourceLimit(ctx context.Context, tenantID string, kind types.ResourceKind) error
	Usage(ctx context.Context, tenantID string) (map[types.ResourceKind]UsageInfo, error)
}
