// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package features

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/types"
)

// StorageInterface defines the storage operations required by the features package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetTenantFeatureOverride(ctx context.Context, tenantID, featureCode string) (*types.TenantFeatureOverride, error)
	GetPlanFeature(ctx context.Context, planID, featureCode string) (*types.PlanFeature, error)
	ListPlanFeatures(ctx context.Context, planID string) ([]*types.PlanFeature, error)
	ListTenantFeatureOverrides(ctx context.Context, tenantID string) ([]*types.TenantFeatureOverride, error)
}

// ResolverInterface is the boundary exposed to request handlers.
type ResolverInterface interface {
	HasFeature(ctx context.Context, tenantID, featureCode string) (bool, error)
	TenantFeatures(ctx context.Context, tenantID string) (map[string]bool, error)
}
