// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// BusinessType identifies the vertical template a tenant was provisioned
// from. It constrains which roles and permissions exist for the tenant at
// all; the raw string is used only at the storage and HTTP boundaries.
type BusinessType string

const (
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeRetail     BusinessType = "retail"
	BusinessTypeSalon      BusinessType = "salon"
	BusinessTypeBakery     BusinessType = "bakery"
)

// BusinessTypes is the fixed catalog of recognized verticals.
var BusinessTypes = []BusinessType{
	BusinessTypeRestaurant,
	BusinessTypeRetail,
	BusinessTypeSalon,
	BusinessTypeBakery,
}

func (b BusinessType) Valid() bool {
	for _, t := range BusinessTypes {
		if t == b {
			return true
		}
	}
	return false
}

// RoleCode identifies an actor class within a tenant.
type RoleCode string

const (
	RoleOwner    RoleCode = "OWNER"
	RoleManager  RoleCode = "MANAGER"
	RoleCashier  RoleCode = "CASHIER"
	RoleWaiter   RoleCode = "WAITER"
	RoleKitchen  RoleCode = "KITCHEN"
	RoleCustomer RoleCode = "CUSTOMER"
)

// ResourceKind is a countable, plan-limited tenant resource.
type ResourceKind string

const (
	ResourceMenuItems ResourceKind = "menuItems"
	ResourceTables    ResourceKind = "tables"
	ResourceOrders    ResourceKind = "orders"
	ResourceUsers     ResourceKind = "users"
	ResourceStorage   ResourceKind = "storage"
	ResourceLocations ResourceKind = "locations"
)

// ResourceKinds is the fixed enumeration recognized by the limit guard.
// Adding a kind requires both a plan limits key and a counting rule.
var ResourceKinds = []ResourceKind{
	ResourceMenuItems,
	ResourceTables,
	ResourceOrders,
	ResourceUsers,
	ResourceStorage,
	ResourceLocations,
}

func (r ResourceKind) Valid() bool {
	for _, k := range ResourceKinds {
		if k == r {
			return true
		}
	}
	return false
}

// Unlimited is the sentinel limit value meaning no cap on a resource.
const Unlimited int64 = -1

// PlanLimits maps a resource kind to its numeric cap. A missing kind is a
// cap of zero; only an explicit -1 means unlimited.
type PlanLimits map[ResourceKind]int64

// Get returns the limit for kind, treating absent keys as zero.
func (l PlanLimits) Get(kind ResourceKind) int64 {
	if l == nil {
		return 0
	}
	limit, ok := l[kind]
	if !ok {
		return 0
	}
	return limit
}

type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type Tenant struct {
	ID           string       `db:"id"`
	Name         string       `db:"name"`
	Slug         string       `db:"slug"`
	BusinessType BusinessType `db:"business_type"`
	Enabled      bool         `db:"enabled"`
	CreatedAt    time.Time    `db:"created_at"`
}

// Subscription links a tenant to a plan. Subscriptions are never hard
// deleted; billing transitions the status externally.
type Subscription struct {
	ID                 string             `db:"id"`
	TenantID           string             `db:"tenant_id"`
	PlanID             string             `db:"plan_id"`
	Status             SubscriptionStatus `db:"status"`
	CurrentPeriodStart time.Time          `db:"current_period_start"`
	CurrentPeriodEnd   time.Time          `db:"current_period_end"`
	CreatedAt          time.Time          `db:"created_at"`
}

// Plan is a subscription tier. Features is the legacy string list kept in
// sync with the normalized plan_features rows for backward compatibility.
type Plan struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Description string     `db:"description"`
	PriceCents  int64      `db:"price_cents"`
	Limits      PlanLimits `db:"limits"`
	Features    []string   `db:"features"`
	IsActive    bool       `db:"is_active"`
	SortOrder   int        `db:"sort_order"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Feature struct {
	ID          string    `db:"id"`
	Code        string    `db:"code"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type PlanFeature struct {
	PlanID      string `db:"plan_id"`
	FeatureID   string `db:"feature_id"`
	FeatureCode string `db:"feature_code"`
	Enabled     bool   `db:"enabled"`
}

// TenantFeatureOverride is authoritative for its (tenant, feature) pair
// regardless of the plan. Written only by platform administrators.
type TenantFeatureOverride struct {
	TenantID    string    `db:"tenant_id"`
	FeatureID   string    `db:"feature_id"`
	FeatureCode string    `db:"feature_code"`
	Enabled     bool      `db:"enabled"`
	Reason      string    `db:"reason"`
	CreatedAt   time.Time `db:"created_at"`
}

type Permission struct {
	ID       string `db:"id"`
	Code     string `db:"code"`
	Name     string `db:"name"`
	Category string `db:"category"`
}

// Role carries a numeric hierarchy level used for relative seniority
// comparisons (OWNER=5 > MANAGER=4 > CASHIER/WAITER/KITCHEN=3 > CUSTOMER=1).
type Role struct {
	ID             string   `db:"id"`
	Code           RoleCode `db:"code"`
	Name           string   `db:"name"`
	HierarchyLevel int      `db:"hierarchy_level"`
}

// RolePermission is the global default grant matrix, tenant independent.
type RolePermission struct {
	RoleID       string `db:"role_id"`
	PermissionID string `db:"permission_id"`
}

type BusinessTypeRole struct {
	BusinessType BusinessType `db:"business_type"`
	RoleID       string       `db:"role_id"`
	RoleCode     RoleCode     `db:"role_code"`
	IsEnabled    bool         `db:"is_enabled"`
}

type BusinessTypePermission struct {
	BusinessType BusinessType `db:"business_type"`
	PermissionID string       `db:"permission_id"`
	IsEnabled    bool         `db:"is_enabled"`
}

// TenantPermissionOverride is scoped to one tenant AND one role; it never
// affects other roles of the same tenant.
type TenantPermissionOverride struct {
	TenantID     string    `db:"tenant_id"`
	PermissionID string    `db:"permission_id"`
	RoleCode     RoleCode  `db:"role_code"`
	IsGranted    bool      `db:"is_granted"`
	Note         string    `db:"note"`
	CreatedAt    time.Time `db:"created_at"`
}

// AuditEntry is an append-only record of a write intent. The entitlement
// engine only ever writes these, it never reads them back.
type AuditEntry struct {
	ID        string            `db:"id"`
	TenantID  string            `db:"tenant_id"`
	UserID    string            `db:"user_id"`
	Action    string            `db:"action"`
	Entity    string            `db:"entity"`
	EntityID  string            `db:"entity_id"`
	OldData   map[string]any    `db:"old_data"`
	NewData   map[string]any    `db:"new_data"`
	Metadata  map[string]string `db:"metadata"`
	CreatedAt time.Time         `db:"created_at"`
}
