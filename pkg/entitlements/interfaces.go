// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/types"
	"github.com/mbx92/entitlement-service/pkg/limits"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

// PlanResolverInterface resolves the tenant's effective plan.
// It is a subset of the pkg/plan resolver.
type PlanResolverInterface interface {
	ResolvePlan(ctx context.Context, tenantID string) (*plan.TenantPlan, error)
}

// LimitGuardInterface answers resource limit checks.
// It is a subset of the pkg/limits guard.
type LimitGuardInterface interface {
	CheckResourceLimit(ctx context.Context, tenantID string, kind types.ResourceKind) error
	Usage(ctx context.Context, tenantID string) (map[types.ResourceKind]limits.UsageInfo, error)
}

// FeatureResolverInterface answers feature flag lookups.
// It is a subset of the pkg/features resolver.
type FeatureResolverInterface interface {
	HasFeature(ctx context.Context, tenantID, featureCode string) (bool, error)
	TenantFeatures(ctx context.Context, tenantID string) (map[string]bool, error)
}

// PermissionResolverInterface answers permission checks.
// It is a subset of the pkg/rbac resolver.
type PermissionResolverInterface interface {
	HasPermission(ctx context.Context, tenantID string, role types.RoleCode, permissionCode string) (bool, error)
}

// AuditRecorderInterface records decisions for the audit trail.
// It is a subset of the pkg/audit recorder.
type AuditRecorderInterface interface {
	Record(ctx context.Context, entry *types.AuditEntry)
}
