// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package limits implements the pre-flight resource limit guard. The check
// is advisory: it is not atomic with the resource-creating write that
// follows it, so two concurrent requests can both pass and overshoot the
// cap by a small margin. Callers needing strict enforcement run the check
// and the insert inside one db.WithTx.
package limits

import (
	"context"
	"fmt"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

// UsageInfo is the current usage and cap for one resource kind.
type UsageInfo struct {
	Current int64 `json:"current"`
	Limit   int64 `json:"limit"`
}

var _ GuardInterface = (*Service)(nil)

type Service struct {
	plans    plan.ResolverInterface
	counters CounterRegistry

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	plans plan.ResolverInterface,
	counters CounterRegistry,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		plans:    plans,
		counters: counters,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// CheckResourceLimit reports whether the tenant may create one more
// resource of the given kind. nil means allowed; a *LimitExceededError
// means the cap is reached. A limit of -1 always allows; a limit key
// missing from the plan counts as zero.
func (s *Service) CheckResourceLimit(ctx context.Context, tenantID string, kind types.ResourceKind) error {
	ctx, span := s.tracer.Start(ctx, "limits.Service.CheckResourceLimit")
	defer span.End()

	counter, ok := s.counters[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResource, kind)
	}

	resolved, err := s.plans.ResolvePlan(ctx, tenantID)
	if err != nil {
		return err
	}

	limit := resolved.Limits.Get(kind)
	if limit == types.Unlimited {
		s.recordDecision("allow")
		return nil
	}

	current, err := counter(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", kind, err)
	}

	if current >= limit {
		s.recordDecision("deny")
		return &LimitExceededError{Kind: kind, Limit: limit, Current: current}
	}

	s.recordDecision("allow")
	return nil
}

// Usage returns {current, limit} for every recognized resource kind, for
// dashboards and the usage endpoint.
func (s *Service) Usage(ctx context.Context, tenantID string) (map[types.ResourceKind]UsageInfo, error) {
	ctx, span := s.tracer.Start(ctx, "limits.Service.Usage")
	defer span.End()

	resolved, err := s.plans.ResolvePlan(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	usage := make(map[types.ResourceKind]UsageInfo, len(s.counters))
	for kind, counter := range s.counters {
		current, err := counter(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", kind, err)
		}
		usage[kind] = UsageInfo{Current: current, Limit: resolved.Limits.Get(kind)}
	}

	return usage, nil
}

func (s *Service) recordDecision(outcome string) {
	tags := map[string]string{"resolver": "limits", "outcome": outcome}
	if err := s.monitor.SetDecisionMetric(tags); err != nil {
		s.logger.Debugf("failed to record decision metric: %v", err)
	}
}
