// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/types"
)

// StorageInterface defines the methods necessary to persist audit entries.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	InsertAuditLog(ctx context.Context, entry *types.AuditEntry) (string, error)
}

// RecorderInterface is the audit surface consumed by the API layer.
type RecorderInterface interface {
	Record(ctx context.Context, entry *types.AuditEntry)
}
