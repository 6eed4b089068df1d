// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"slices"
	"testing"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

func TestMatrix_Allows(t *testing.T) {
	tests := []struct {
		name       string
		role       types.RoleCode
		permission string
		expected   bool
	}{
		{"kitchen sees the kitchen display", types.RoleKitchen, "VIEW_KITCHEN_DISPLAY", true},
		{"waiter does not see the kitchen display", types.RoleWaiter, "VIEW_KITCHEN_DISPLAY", false},
		{"customer writes reviews", types.RoleCustomer, "WRITE_REVIEW", true},
		{"manager does not write reviews", types.RoleManager, "WRITE_REVIEW", false},
		{"only owner manages settings", types.RoleManager, "MANAGE_SETTINGS", false},
		{"unknown code denies", types.RoleOwner, "LAUNCH_ROCKETS", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultMatrix.Allows(tt.role, tt.permission); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMatrix_PermissionsForRole(t *testing.T) {
	codes := DefaultMatrix.PermissionsForRole(types.RoleCustomer)

	expected := []string{"CREATE_ORDER", "CREATE_RESERVATION", "VIEW_MENU", "VIEW_OWN_ORDERS", "WRITE_REVIEW"}
	slices.Sort(codes)

	if !slices.Equal(codes, expected) {
		t.Errorf("expected %v, got %v", expected, codes)
	}
}

func TestResolver_StaticHelpers(t *testing.T) {
	r := NewResolver(nil, DefaultMatrix, Config{}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	if !r.HasPermissionStatic(types.RoleOwner, "ANYTHING_AT_ALL") {
		t.Error("expected owner shortcut to grant unconditionally")
	}
	if !r.HasAnyPermissionStatic(types.RoleWaiter, []string{"MANAGE_SETTINGS", "VIEW_TABLES"}) {
		t.Error("expected waiter to hold at least VIEW_TABLES")
	}
	if r.HasAllPermissionsStatic(types.RoleWaiter, []string{"MANAGE_SETTINGS", "VIEW_TABLES"}) {
		t.Error("expected waiter to lack MANAGE_SETTINGS")
	}
	if !r.HasAllPermissionsStatic(types.RoleCashier, []string{"VIEW_MENU", "PROCESS_PAYMENT"}) {
		t.Error("expected cashier to hold both permissions")
	}
}

func TestHasHigherOrEqualRole(t *testing.T) {
	tests := []struct {
		name     string
		actor    types.RoleCode
		required types.RoleCode
		expected bool
	}{
		{"owner outranks manager", types.RoleOwner, types.RoleManager, true},
		{"manager does not outrank owner", types.RoleManager, types.RoleOwner, false},
		{"cashier and waiter are peers", types.RoleCashier, types.RoleWaiter, true},
		{"customer is outranked by staff", types.RoleCustomer, types.RoleWaiter, false},
		{"unknown role never qualifies", types.RoleCode("INTERN"), types.RoleCustomer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasHigherOrEqualRole(tt.actor, tt.required); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
