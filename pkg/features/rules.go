// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package features

import (
	"context"
	"errors"
	"slices"

	"github.com/mbx92/entitlement-service/internal/storage"
	"github.com/mbx92/entitlement-service/internal/types"
)

// request carries one feature lookup through the rule chain.
type request struct {
	tenantID    string
	featureCode string
	plan        *types.Plan
}

// rule is one precedence level of feature resolution. A nil decision means
// the rule does not apply and the chain moves on; the first non-nil
// decision wins. Reordering or inserting a level (say, a region override)
// is a change to the chain slice, not to the resolver.
type rule struct {
	name     string
	evaluate func(ctx context.Context, req *request) (*bool, error)
}

func (s *Service) chain() []rule {
	return []rule{
		{name: "tenant_override", evaluate: s.tenantOverrideRule},
		{name: "plan_feature", evaluate: s.planFeatureRule},
		{name: "legacy_feature_list", evaluate: s.legacyFeatureListRule},
	}
}

// tenantOverrideRule: an override row is authoritative for its tenant
// regardless of the plan, in either direction.
func (s *Service) tenantOverrideRule(ctx context.Context, req *request) (*bool, error) {
	override, err := s.storage.GetTenantFeatureOverride(ctx, req.tenantID, req.featureCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override.Enabled, nil
}

// planFeatureRule: an enabled plan-feature row grants the feature. A
// disabled or absent row is not authoritative, the legacy list may still
// grant it.
func (s *Service) planFeatureRule(ctx context.Context, req *request) (*bool, error) {
	pf, err := s.storage.GetPlanFeature(ctx, req.plan.ID, req.featureCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !pf.Enabled {
		return nil, nil
	}
	granted := true
	return &granted, nil
}

// legacyFeatureListRule: backward compatibility with the plan's string
// feature list, kept in sync with plan_features during migration.
func (s *Service) legacyFeatureListRule(_ context.Context, req *request) (*bool, error) {
	if slices.Contains(req.plan.Features, req.featureCode) {
		granted := true
		return &granted, nil
	}
	return nil, nil
}

// resolvePlanFor loads the effective plan once per lookup.
func (s *Service) resolvePlanFor(ctx context.Context, tenantID string) (*types.Plan, error) {
	resolved, err := s.plans.ResolvePlan(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return resolved.Plan, nil
}
