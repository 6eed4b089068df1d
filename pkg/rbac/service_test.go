// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/storage"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package rbac -destination ./mock_interfaces.go -source=./interfaces.go

func newTestResolver(t *testing.T, cfg Config) (*Resolver, *MockStorageInterface, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	r := NewResolver(mockStorage, DefaultMatrix, cfg, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return r, mockStorage, ctrl
}

func TestResolver_HasPermission(t *testing.T) {
	viewMenu := &types.Permission{ID: "perm-1", Code: "VIEW_MENU"}
	manager := &types.Role{ID: "role-1", Code: types.RoleManager, HierarchyLevel: 4}
	restaurant := &types.Tenant{ID: "tenant-1", BusinessType: types.BusinessTypeRestaurant}

	tests := []struct {
		name       string
		role       types.RoleCode
		permission string
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "owner bypasses the chain",
			role:       types.RoleOwner,
			permission: "MANAGE_SETTINGS",
			setupMocks: func(mockStorage *MockStorageInterface) {},
			expected:   true,
		},
		{
			name:       "code unknown to the catalog falls back to the static matrix",
			role:       types.RoleKitchen,
			permission: "VIEW_KITCHEN_DISPLAY",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_KITCHEN_DISPLAY").
					Return(nil, storage.ErrNotFound)
			},
			expected: true,
		},
		{
			name:       "static matrix fallback still denies unauthorized roles",
			role:       types.RoleWaiter,
			permission: "VIEW_KITCHEN_DISPLAY",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_KITCHEN_DISPLAY").
					Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name:       "business type without the capability denies",
			role:       types.RoleManager,
			permission: "VIEW_MENU",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").Return(viewMenu, nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").
					Return(&types.Tenant{ID: "tenant-1", BusinessType: types.BusinessTypeRetail}, nil)
				mockStorage.EXPECT().GetBusinessTypePermission(gomock.Any(), types.BusinessTypeRetail, "perm-1").
					Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name:       "role without the grant denies",
			role:       types.RoleManager,
			permission: "VIEW_MENU",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").Return(viewMenu, nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(restaurant, nil)
				mockStorage.EXPECT().GetBusinessTypePermission(gomock.Any(), types.BusinessTypeRestaurant, "perm-1").
					Return(&types.BusinessTypePermission{BusinessType: types.BusinessTypeRestaurant, PermissionID: "perm-1", IsEnabled: true}, nil)
				mockStorage.EXPECT().GetRoleByCode(gomock.Any(), types.RoleManager).Return(manager, nil)
				mockStorage.EXPECT().GetRolePermission(gomock.Any(), "role-1", "perm-1").
					Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name:       "full chain passes without an override",
			role:       types.RoleManager,
			permission: "VIEW_MENU",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").Return(viewMenu, nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(restaurant, nil)
				mockStorage.EXPECT().GetBusinessTypePermission(gomock.Any(), types.BusinessTypeRestaurant, "perm-1").
					Return(&types.BusinessTypePermission{BusinessType: types.BusinessTypeRestaurant, PermissionID: "perm-1", IsEnabled: true}, nil)
				mockStorage.EXPECT().GetRoleByCode(gomock.Any(), types.RoleManager).Return(manager, nil)
				mockStorage.EXPECT().GetRolePermission(gomock.Any(), "role-1", "perm-1").
					Return(&types.RolePermission{RoleID: "role-1", PermissionID: "perm-1"}, nil)
				mockStorage.EXPECT().GetTenantPermissionOverride(gomock.Any(), "tenant-1", "perm-1", types.RoleManager).
					Return(nil, storage.ErrNotFound)
			},
			expected: true,
		},
		{
			name:       "tenant override revokes a granted permission",
			role:       types.RoleManager,
			permission: "VIEW_MENU",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").Return(viewMenu, nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(restaurant, nil)
				mockStorage.EXPECT().GetBusinessTypePermission(gomock.Any(), types.BusinessTypeRestaurant, "perm-1").
					Return(&types.BusinessTypePermission{BusinessType: types.BusinessTypeRestaurant, PermissionID: "perm-1", IsEnabled: true}, nil)
				mockStorage.EXPECT().GetRoleByCode(gomock.Any(), types.RoleManager).Return(manager, nil)
				mockStorage.EXPECT().GetRolePermission(gomock.Any(), "role-1", "perm-1").
					Return(&types.RolePermission{RoleID: "role-1", PermissionID: "perm-1"}, nil)
				mockStorage.EXPECT().GetTenantPermissionOverride(gomock.Any(), "tenant-1", "perm-1", types.RoleManager).
					Return(&types.TenantPermissionOverride{TenantID: "tenant-1", PermissionID: "perm-1", RoleCode: types.RoleManager, IsGranted: false}, nil)
			},
			expected: false,
		},
		{
			name:       "unknown tenant denies",
			role:       types.RoleManager,
			permission: "VIEW_MENU",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").Return(viewMenu, nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mockStorage, ctrl := newTestResolver(t, Config{FailOpen: true})
			defer ctrl.Finish()

			tt.setupMocks(mockStorage)

			allowed, err := r.HasPermission(context.Background(), "tenant-1", tt.role, tt.permission)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if allowed != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, allowed)
			}
		})
	}
}

func TestResolver_HasPermissionFailOpen(t *testing.T) {
	r, mockStorage, ctrl := newTestResolver(t, Config{FailOpen: true})
	defer ctrl.Finish()

	mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").
		Return(nil, errors.New("connection refused"))

	allowed, err := r.HasPermission(context.Background(), "tenant-1", types.RoleCashier, "VIEW_MENU")
	if err != nil {
		t.Fatalf("expected degraded answer, got error: %v", err)
	}
	if !allowed {
		t.Error("expected static matrix to grant VIEW_MENU to CASHIER")
	}

	mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "MANAGE_SETTINGS").
		Return(nil, errors.New("connection refused"))

	allowed, err = r.HasPermission(context.Background(), "tenant-1", types.RoleCashier, "MANAGE_SETTINGS")
	if err != nil {
		t.Fatalf("expected degraded answer, got error: %v", err)
	}
	if allowed {
		t.Error("expected static matrix to deny MANAGE_SETTINGS to CASHIER")
	}
}

func TestResolver_HasPermissionFailClosed(t *testing.T) {
	r, mockStorage, ctrl := newTestResolver(t, Config{FailOpen: false})
	defer ctrl.Finish()

	mockStorage.EXPECT().GetPermissionByCode(gomock.Any(), "VIEW_MENU").
		Return(nil, errors.New("connection refused"))

	allowed, err := r.HasPermission(context.Background(), "tenant-1", types.RoleCashier, "VIEW_MENU")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if allowed {
		t.Error("expected deny alongside the error")
	}
}
