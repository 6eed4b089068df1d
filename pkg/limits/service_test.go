// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package limits

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

//go:generate mockgen -build_flags=--mod=mod -package limits -destination ./mock_interfaces.go -source=./interfaces.go

func resolvedPlan(limits types.PlanLimits) *plan.TenantPlan {
	return &plan.TenantPlan{
		Plan:               &types.Plan{ID: "plan-1", Slug: "free", Limits: limits},
		Limits:             limits,
		SubscriptionStatus: types.SubscriptionActive,
	}
}

func TestService_CheckResourceLimit(t *testing.T) {
	tests := []struct {
		name       string
		kind       types.ResourceKind
		setupMocks func(*plan.MockResolverInterface, *MockStorageInterface)
		check      func(*testing.T, error)
	}{
		{
			name: "below cap allows",
			kind: types.ResourceMenuItems,
			setupMocks: func(mockPlans *plan.MockResolverInterface, mockStorage *MockStorageInterface) {
				mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").
					Return(resolvedPlan(types.PlanLimits{types.ResourceMenuItems: 20}), nil)
				mockStorage.EXPECT().CountMenuItems(gomock.Any(), "tenant-1").Return(int64(19), nil)
			},
			check: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			},
		},
		{
			name: "at cap denies",
			kind: types.ResourceMenuItems,
			setupMocks: func(mockPlans *plan.MockResolverInterface, mockStorage *MockStorageInterface) {
				mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").
					Return(resolvedPlan(types.PlanLimits{types.ResourceMenuItems: 20}), nil)
				mockStorage.EXPECT().CountMenuItems(gomock.Any(), "tenant-1").Return(int64(20), nil)
			},
			check: func(t *testing.T, err error) {
				exceeded, ok := IsLimitExceeded(err)
				if !ok {
					t.Fatalf("expected LimitExceededError, got %v", err)
				}
				if exceeded.Kind != types.ResourceMenuItems || exceeded.Limit != 20 || exceeded.Current != 20 {
					t.Errorf("unexpected rejection details: %+v", exceeded)
				}
			},
		},
		{
			name: "unlimited skips counting",
			kind: types.ResourceOrders,
			setupMocks: func(mockPlans *plan.MockResolverInterface, mockStorage *MockStorageInterface) {
				mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").
					Return(resolvedPlan(types.PlanLimits{types.ResourceOrders: types.Unlimited}), nil)
			},
			check: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			},
		},
		{
			name: "missing limit key counts as zero",
			kind: types.ResourceUsers,
			setupMocks: func(mockPlans *plan.MockResolverInterface, mockStorage *MockStorageInterface) {
				mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").
					Return(resolvedPlan(types.PlanLimits{}), nil)
				mockStorage.EXPECT().CountUsers(gomock.Any(), "tenant-1").Return(int64(0), nil)
			},
			check: func(t *testing.T, err error) {
				if _, ok := IsLimitExceeded(err); !ok {
					t.Fatalf("expected LimitExceededError, got %v", err)
				}
			},
		},
		{
			name:       "unknown resource kind",
			kind:       types.ResourceKind("widgets"),
			setupMocks: func(mockPlans *plan.MockResolverInterface, mockStorage *MockStorageInterface) {},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnknownResource) {
					t.Fatalf("expected ErrUnknownResource, got %v", err)
				}
			},
		},
		{
			name: "plan resolution failure propagates",
			kind: types.ResourceTables,
			setupMocks: func(mockPlans *plan.MockResolverInterface, mockStorage *MockStorageInterface) {
				mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").
					Return(nil, errors.New("connection refused"))
			},
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPlans := plan.NewMockResolverInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockPlans, mockStorage)

			svc := NewService(
				mockPlans,
				NewCounterRegistry(mockStorage, nil),
				tracing.NewNoopTracer(),
				monitoring.NewNoopMonitor(),
				logging.NewNoopLogger(),
			)

			tt.check(t, svc.CheckResourceLimit(context.Background(), "tenant-1", tt.kind))
		})
	}
}

func TestService_CheckResourceLimitOrdersWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.UTC)
	wantSince := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	mockPlans := plan.NewMockResolverInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").
		Return(resolvedPlan(types.PlanLimits{types.ResourceOrders: 100}), nil)
	mockStorage.EXPECT().CountOrdersSince(gomock.Any(), "tenant-1", wantSince).Return(int64(42), nil)

	svc := NewService(
		mockPlans,
		NewCounterRegistry(mockStorage, func() time.Time { return now }),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	if err := svc.CheckResourceLimit(context.Background(), "tenant-1", types.ResourceOrders); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Usage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlans := plan.NewMockResolverInterface(ctrl)
	mockStorage := NewMockStorageInterface(ctrl)

	limits := types.PlanLimits{
		types.ResourceMenuItems: 20,
		types.ResourceTables:    5,
		types.ResourceOrders:    100,
		types.ResourceUsers:     2,
		types.ResourceStorage:   100,
		types.ResourceLocations: 1,
	}

	mockPlans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").Return(resolvedPlan(limits), nil)
	mockStorage.EXPECT().CountMenuItems(gomock.Any(), "tenant-1").Return(int64(7), nil)
	mockStorage.EXPECT().CountTables(gomock.Any(), "tenant-1").Return(int64(3), nil)
	mockStorage.EXPECT().CountUsers(gomock.Any(), "tenant-1").Return(int64(1), nil)
	mockStorage.EXPECT().CountOrdersSince(gomock.Any(), "tenant-1", gomock.Any()).Return(int64(42), nil)

	svc := NewService(
		mockPlans,
		NewCounterRegistry(mockStorage, nil),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	usage, err := svc.Usage(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(usage) != len(types.ResourceKinds) {
		t.Fatalf("expected %d entries, got %d", len(types.ResourceKinds), len(usage))
	}
	if got := usage[types.ResourceMenuItems]; got != (UsageInfo{Current: 7, Limit: 20}) {
		t.Errorf("unexpected menuItems usage: %+v", got)
	}
	if got := usage[types.ResourceLocations]; got != (UsageInfo{Current: 1, Limit: 1}) {
		t.Errorf("unexpected locations usage: %+v", got)
	}
	if got := usage[types.ResourceStorage]; got != (UsageInfo{Current: 0, Limit: 100}) {
		t.Errorf("unexpected storage usage: %+v", got)
	}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2026, time.February, 17, 23, 59, 59, 0, time.UTC)
	want := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	if got := startOfMonth(in); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
