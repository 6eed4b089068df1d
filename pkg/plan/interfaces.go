// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package plan

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/types"
)

// StorageInterface defines the storage operations required by the plan package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetActiveSubscription(ctx context.Context, tenantID string) (*types.Subscription, error)
	GetPlanByID(ctx context.Context, id string) (*types.Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (*types.Plan, error)
}

// ResolverInterface is consumed by the limit guard and the feature flag
// resolver, which both need the tenant's effective plan first.
type ResolverInterface interface {
	ResolvePlan(ctx context.Context, tenantID string) (*TenantPlan, error)
}
