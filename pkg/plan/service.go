// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/storage"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

// DefaultPlanSlug is the fallback tier for tenants without a subscription.
const DefaultPlanSlug = "free"

var (
	// ErrTenantNotFound is returned when the tenant itself does not exist.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrNoPlanConfigured signals a misconfigured catalog: even the fallback
	// plan is missing. Resolution must not silently default to unlimited.
	ErrNoPlanConfigured = errors.New("no plan configured for tenant")
)

// TenantPlan is a tenant's effective plan at resolution time.
type TenantPlan struct {
	Plan               *types.Plan
	Limits             types.PlanLimits
	SubscriptionStatus types.SubscriptionStatus
}

var _ ResolverInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	defaultSlug string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	defaultSlug string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if defaultSlug == "" {
		defaultSlug = DefaultPlanSlug
	}

	return &Service{
		storage:     storage,
		defaultSlug: defaultSlug,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// ResolvePlan looks up tenant -> subscription -> plan, falling back to the
// default plan when the tenant has no subscription or the subscription
// points at a deleted plan. Tenants without a subscription report TRIAL
// status. Pure read, no side effects.
func (s *Service) ResolvePlan(ctx context.Context, tenantID string) (*TenantPlan, error) {
	ctx, span := s.tracer.Start(ctx, "plan.Service.ResolvePlan")
	defer span.End()

	if _, err := s.storage.GetTenantByID(ctx, tenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	status := types.SubscriptionTrial
	var p *types.Plan

	sub, err := s.storage.GetActiveSubscription(ctx, tenantID)
	switch {
	case err == nil:
		status = sub.Status
		p, err = s.storage.GetPlanByID(ctx, sub.PlanID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up subscribed plan: %w", err)
		}
	case errors.Is(err, storage.ErrNotFound):
		// No subscription, fall through to the default plan.
	default:
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	if p == nil {
		p, err = s.storage.GetPlanBySlug(ctx, s.defaultSlug)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				s.logger.Errorf("default plan %q missing from catalog", s.defaultSlug)
				return nil, ErrNoPlanConfigured
			}
			return nil, fmt.Errorf("failed to look up default plan: %w", err)
		}
	}

	return &TenantPlan{
		Plan:               p,
		Limits:             p.Limits,
		SubscriptionStatus: status,
	}, nil
}
