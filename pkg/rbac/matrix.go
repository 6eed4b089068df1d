// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"slices"

	"github.com/mbx92/entitlement-service/internal/types"
)

// Matrix is the static role-to-permission table used as a degradation
// path: for permission codes the catalog has not been migrated to yet, and
// (in fail-open mode) when the entitlement store is unreachable. It is
// immutable, compiled-in state, injected into the resolver so tests can
// substitute their own.
type Matrix map[string][]types.RoleCode

// Allows reports the matrix verdict for a role and permission code. An
// unknown code denies.
func (m Matrix) Allows(role types.RoleCode, permissionCode string) bool {
	allowed, ok := m[permissionCode]
	if !ok {
		return false
	}
	return slices.Contains(allowed, role)
}

// PermissionsForRole returns every code the matrix grants to the role, in
// no particular order.
func (m Matrix) PermissionsForRole(role types.RoleCode) []string {
	var codes []string
	for code, roles := range m {
		if slices.Contains(roles, role) {
			codes = append(codes, code)
		}
	}
	return codes
}

// DefaultMatrix mirrors the permission catalog seeded into the store. It
// predates the database-driven chain and is kept in sync with it.
var DefaultMatrix = Matrix{
	// User management
	"MANAGE_USERS": {types.RoleOwner, types.RoleManager},
	"VIEW_USERS":   {types.RoleOwner, types.RoleManager},

	// Menu management
	"MANAGE_MENU": {types.RoleOwner, types.RoleManager},
	"VIEW_MENU":   {types.RoleOwner, types.RoleManager, types.RoleCashier, types.RoleWaiter, types.RoleKitchen, types.RoleCustomer},

	// Category management
	"MANAGE_CATEGORIES": {types.RoleOwner, types.RoleManager},

	// Orders
	"CREATE_ORDER":        {types.RoleOwner, types.RoleManager, types.RoleCashier, types.RoleWaiter, types.RoleCustomer},
	"VIEW_ALL_ORDERS":     {types.RoleOwner, types.RoleManager, types.RoleKitchen},
	"VIEW_OWN_ORDERS":     {types.RoleCustomer},
	"UPDATE_ORDER_STATUS": {types.RoleOwner, types.RoleManager, types.RoleCashier, types.RoleKitchen},
	"CANCEL_ORDER":        {types.RoleOwner, types.RoleManager, types.RoleCashier},

	// Tables
	"MANAGE_TABLES": {types.RoleOwner, types.RoleManager},
	"VIEW_TABLES":   {types.RoleOwner, types.RoleManager, types.RoleWaiter},

	// Reservations
	"MANAGE_RESERVATIONS": {types.RoleOwner, types.RoleManager, types.RoleWaiter},
	"VIEW_RESERVATIONS":   {types.RoleOwner, types.RoleManager, types.RoleWaiter},
	"CREATE_RESERVATION":  {types.RoleCustomer},

	// Payments
	"PROCESS_PAYMENT": {types.RoleOwner, types.RoleManager, types.RoleCashier},
	"VIEW_PAYMENTS":   {types.RoleOwner, types.RoleManager, types.RoleCashier},

	// Reviews
	"MODERATE_REVIEWS": {types.RoleOwner, types.RoleManager},
	"WRITE_REVIEW":     {types.RoleCustomer},

	// Site settings and theme
	"MANAGE_SETTINGS": {types.RoleOwner},
	"MANAGE_THEME":    {types.RoleOwner},

	// Landing page content
	"MANAGE_LANDING": {types.RoleOwner, types.RoleManager},

	// Dashboard and analytics
	"VIEW_DASHBOARD": {types.RoleOwner, types.RoleManager},
	"VIEW_ANALYTICS": {types.RoleOwner, types.RoleManager},

	// Kitchen display
	"VIEW_KITCHEN_DISPLAY": {types.RoleKitchen},
}
