// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package plan

import (
	"github.com/mbx92/entitlement-service/internal/types"
)

// DefaultCatalog returns the stock plan tiers seeded into a fresh
// deployment. Limits not listed default to zero; -1 means unlimited.
func DefaultCatalog() []*types.Plan {
	return []*types.Plan{
		{
			Name:        "Free",
			Slug:        "free",
			Description: "Perfect for trying out the platform",
			PriceCents:  0,
			Limits: types.PlanLimits{
				types.ResourceMenuItems: 20,
				types.ResourceTables:    5,
				types.ResourceOrders:    100,
				types.ResourceUsers:     2,
				types.ResourceStorage:   100,
				types.ResourceLocations: 1,
			},
			Features: []string{
				"BASIC_REPORTING",
				"EMAIL_SUPPORT",
			},
			IsActive:  true,
			SortOrder: 1,
		},
		{
			Name:        "Starter",
			Slug:        "starter",
			Description: "Great for small businesses",
			PriceCents:  29900,
			Limits: types.PlanLimits{
				types.ResourceMenuItems: 100,
				types.ResourceTables:    20,
				types.ResourceOrders:    1000,
				types.ResourceUsers:     5,
				types.ResourceStorage:   1000,
				types.ResourceLocations: 1,
			},
			Features: []string{
				"BASIC_REPORTING",
				"ADVANCED_REPORTING",
				"QR_ORDERING",
				"CUSTOM_BRANDING",
				"EMAIL_SUPPORT",
			},
			IsActive:  true,
			SortOrder: 2,
		},
		{
			Name:        "Professional",
			Slug:        "pro",
			Description: "For growing businesses",
			PriceCents:  79900,
			Limits: types.PlanLimits{
				types.ResourceMenuItems: types.Unlimited,
				types.ResourceTables:    types.Unlimited,
				types.ResourceOrders:    types.Unlimited,
				types.ResourceUsers:     20,
				types.ResourceStorage:   10000,
				types.ResourceLocations: 3,
			},
			Features: []string{
				"BASIC_REPORTING",
				"ADVANCED_REPORTING",
				"ADVANCED_ANALYTICS",
				"QR_ORDERING",
				"ONLINE_RESERVATIONS",
				"INVENTORY_MANAGEMENT",
				"CUSTOM_BRANDING",
				"CUSTOM_DOMAIN",
				"API_ACCESS",
			},
			IsActive:  true,
			SortOrder: 3,
		},
		{
			Name:        "Enterprise",
			Slug:        "enterprise",
			Description: "For large organizations",
			PriceCents:  0, // custom pricing
			Limits: types.PlanLimits{
				types.ResourceMenuItems: types.Unlimited,
				types.ResourceTables:    types.Unlimited,
				types.ResourceOrders:    types.Unlimited,
				types.ResourceUsers:     types.Unlimited,
				types.ResourceStorage:   types.Unlimited,
				types.ResourceLocations: types.Unlimited,
			},
			Features: []string{
				"BASIC_REPORTING",
				"ADVANCED_REPORTING",
				"ADVANCED_ANALYTICS",
				"QR_ORDERING",
				"ONLINE_RESERVATIONS",
				"INVENTORY_MANAGEMENT",
				"CUSTOM_BRANDING",
				"CUSTOM_DOMAIN",
				"API_ACCESS",
				"WHITE_LABEL",
				"SLA",
			},
			IsActive:  true,
			SortOrder: 4,
		},
	}
}
