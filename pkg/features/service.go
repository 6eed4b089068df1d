// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package features resolves feature availability per tenant through a
// fixed precedence chain: tenant override, then the normalized
// plan-feature mapping, then the plan's legacy feature list.
package features

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

var _ ResolverInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	plans   plan.ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	plans plan.ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		plans:   plans,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HasFeature runs the rule chain in precedence order; the first rule with
// an opinion wins, and a chain with no opinion denies.
func (s *Service) HasFeature(ctx context.Context, tenantID, featureCode string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "features.Service.HasFeature")
	defer span.End()

	p, err := s.resolvePlanFor(ctx, tenantID)
	if err != nil {
		return false, err
	}

	req := &request{tenantID: tenantID, featureCode: featureCode, plan: p}

	for _, r := range s.chain() {
		decision, err := r.evaluate(ctx, req)
		if err != nil {
			return false, err
		}
		if decision != nil {
			s.recordDecision(*decision)
			return *decision, nil
		}
	}

	s.recordDecision(false)
	return false, nil
}

// TenantFeatures returns the merged feature view used by tenant-facing
// UIs: every plan-feature row, legacy list codes granted on top, and tenant
// overrides applied last. The result agrees key-by-key with HasFeature at
// the same instant.
func (s *Service) TenantFeatures(ctx context.Context, tenantID string) (map[string]bool, error) {
	ctx, span := s.tracer.Start(ctx, "features.Service.TenantFeatures")
	defer span.End()

	p, err := s.resolvePlanFor(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	planFeatures, err := s.storage.ListPlanFeatures(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.storage.ListTenantFeatureOverrides(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	// Merge in chain precedence order: a legacy code grants unless an
	// enabled row already did, and overrides have the final word. A
	// disabled row is not authoritative against the legacy list, matching
	// the rule chain.
	merged := make(map[string]bool, len(planFeatures)+len(overrides))
	for _, pf := range planFeatures {
		merged[pf.FeatureCode] = pf.Enabled
	}
	for _, code := range p.Features {
		if !merged[code] {
			merged[code] = true
		}
	}
	for _, o := range overrides {
		merged[o.FeatureCode] = o.Enabled
	}

	return merged, nil
}

func (s *Service) recordDecision(enabled bool) {
	outcome := "deny"
	if enabled {
		outcome = "allow"
	}
	tags := map[string]string{"resolver": "features", "outcome": outcome}
	if err := s.monitor.SetDecisionMetric(tags); err != nil {
		s.logger.Debugf("failed to record decision metric: %v", err)
	}
}
