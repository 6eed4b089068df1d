// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rbac

import (
	"github.com/mbx92/entitlement-service/internal/types"
)

// roleHierarchy assigns each role a seniority level for relative
// comparisons; it is not consulted by the permission chain itself.
var roleHierarchy = map[types.RoleCode]int{
	types.RoleOwner:    5,
	types.RoleManager:  4,
	types.RoleCashier:  3,
	types.RoleWaiter:   3,
	types.RoleKitchen:  3,
	types.RoleCustomer: 1,
}

// HasHigherOrEqualRole reports whether a is at least as senior as b.
// Unknown roles rank below every known one.
func HasHigherOrEqualRole(a, b types.RoleCode) bool {
	return roleHierarchy[a] >= roleHierarchy[b]
}
