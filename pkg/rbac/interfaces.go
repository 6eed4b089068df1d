// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/types"
)

// StorageInterface defines the storage operations required by the rbac package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetPermissionByCode(ctx context.Context, code string) (*types.Permission, error)
	GetRoleByCode(ctx context.Context, code types.RoleCode) (*types.Role, error)
	GetRolePermission(ctx context.Context, roleID, permissionID string) (*types.RolePermission, error)
	GetBusinessTypePermission(ctx context.Context, businessType types.BusinessType, permissionID string) (*types.BusinessTypePermission, error)
	GetTenantPermissionOverride(ctx context.Context, tenantID, permissionID string, role types.RoleCode) (*types.TenantPermissionOverride, error)
}

// ResolverInterface is the boundary exposed to request handlers.
type ResolverInterface interface {
	HasPermission(ctx context.Context, tenantID string, role types.RoleCode, permissionCode string) (bool, error)
}
