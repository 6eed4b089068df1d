// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/mbx92/entitlement-service/internal/types"
)

// StorageInterface enumerates every entitlement store lookup the resolvers
// use. All queries are scoped by tenant ID (or by the business type derived
// from one); no query may return another tenant's rows.
type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetActiveSubscription(ctx context.Context, tenantID string) (*types.Subscription, error)

	GetPlanByID(ctx context.Context, id string) (*types.Plan, error)
	GetPlanBySlug(ctx context.Context, slug string) (*types.Plan, error)
	ListPlans(ctx context.Context) ([]*types.Plan, error)
	UpsertPlan(ctx context.Context, plan *types.Plan) (*types.Plan, error)

	GetFeatureByCode(ctx context.Context, code string) (*types.Feature, error)
	GetPlanFeature(ctx context.Context, planID, featureCode string) (*types.PlanFeature, error)
	ListPlanFeatures(ctx context.Context, planID string) ([]*types.PlanFeature, error)
	GetTenantFeatureOverride(ctx context.Context, tenantID, featureCode string) (*types.TenantFeatureOverride, error)
	ListTenantFeatureOverrides(ctx context.Context, tenantID string) ([]*types.TenantFeatureOverride, error)

	GetPermissionByCode(ctx context.Context, code string) (*types.Permission, error)
	GetRoleByCode(ctx context.Context, code types.RoleCode) (*types.Role, error)
	GetRolePermission(ctx context.Context, roleID, permissionID string) (*types.RolePermission, error)
	GetBusinessTypePermission(ctx context.Context, businessType types.BusinessType, permissionID string) (*types.BusinessTypePermission, error)
	ListBusinessTypeRoles(ctx context.Context, businessType types.BusinessType) ([]*types.BusinessTypeRole, error)
	GetTenantPermissionOverride(ctx context.Context, tenantID, permissionID string, role types.RoleCode) (*types.TenantPermissionOverride, error)

	CountMenuItems(ctx context.Context, tenantID string) (int64, error)
	CountTables(ctx context.Context, tenantID string) (int64, error)
	CountUsers(ctx context.Context, tenantID string) (int64, error)
	CountOrdersSince(ctx context.Context, tenantID string, since time.Time) (int64, error)

	InsertAuditLog(ctx context.Context, entry *types.AuditEntry) (string, error)
}
