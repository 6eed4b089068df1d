// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"github.com/mbx92/entitlement-service/internal/types"
	"github.com/mbx92/entitlement-service/pkg/limits"
)

// PlanResponse is the effective plan surface exposed to clients. Limit
// values of -1 mean unlimited.
type PlanResponse struct {
	Slug               string                      `json:"slug"`
	Name               string                      `json:"name"`
	Limits             map[types.ResourceKind]int64 `json:"limits"`
	SubscriptionStatus types.SubscriptionStatus    `json:"subscription_status"`
}

// FeatureResponse reports a single feature flag verdict.
type FeatureResponse struct {
	Code    string `json:"code"`
	Enabled bool   `json:"enabled"`
}

// FeaturesResponse reports the full flag map for a tenant.
type FeaturesResponse struct {
	Features map[string]bool `json:"features"`
}

// PermissionResponse reports a single permission verdict.
type PermissionResponse struct {
	Code    string `json:"code"`
	Allowed bool   `json:"allowed"`
}

// LimitExceededResponse is the 403 payload for a rejected resource check.
type LimitExceededResponse struct {
	Resource types.ResourceKind `json:"resource"`
	Limit    int64              `json:"limit"`
	Current  int64              `json:"current"`
}

// UsageResponse reports per-resource consumption against the plan limits.
type UsageResponse struct {
	Usage map[types.ResourceKind]limits.UsageInfo `json:"usage"`
}
