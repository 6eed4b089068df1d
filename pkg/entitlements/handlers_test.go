// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlements

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/mbx92/entitlement-service/internal/identity"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
	"github.com/mbx92/entitlement-service/pkg/limits"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

//go:generate mockgen -build_flags=--mod=mod -package entitlements -destination ./mock_interfaces.go -source=./interfaces.go

type apiMocks struct {
	plans       *MockPlanResolverInterface
	guard       *MockLimitGuardInterface
	features    *MockFeatureResolverInterface
	permissions *MockPermissionResolverInterface
	auditor     *MockAuditRecorderInterface
}

func newTestAPI(t *testing.T) (*chi.Mux, *apiMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &apiMocks{
		plans:       NewMockPlanResolverInterface(ctrl),
		guard:       NewMockLimitGuardInterface(ctrl),
		features:    NewMockFeatureResolverInterface(ctrl),
		permissions: NewMockPermissionResolverInterface(ctrl),
		auditor:     NewMockAuditRecorderInterface(ctrl),
	}

	mux := chi.NewMux()
	NewAPI(mocks.plans, mocks.guard, mocks.features, mocks.permissions, mocks.auditor, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux, mocks, ctrl
}

func doRequest(mux *chi.Mux, method, path string, principal *identity.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if principal != nil {
		req = req.WithContext(identity.ContextWithPrincipal(req.Context(), principal))
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func staffPrincipal() *identity.Principal {
	return &identity.Principal{TenantID: "tenant-1", UserID: "user-1", Role: types.RoleManager}
}

func TestAPI_GetPlan(t *testing.T) {
	mux, mocks, ctrl := newTestAPI(t)
	defer ctrl.Finish()

	mocks.plans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").Return(&plan.TenantPlan{
		Plan:               &types.Plan{Slug: "pro", Name: "Professional"},
		Limits:             types.PlanLimits{types.ResourceUsers: 20},
		SubscriptionStatus: types.SubscriptionActive,
	}, nil)

	w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/plan", staffPrincipal())

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp PlanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Slug != "pro" || resp.SubscriptionStatus != types.SubscriptionActive {
		t.Errorf("unexpected payload: %+v", resp)
	}
	if resp.Limits[types.ResourceUsers] != 20 {
		t.Errorf("expected users limit 20, got %d", resp.Limits[types.ResourceUsers])
	}
}

func TestAPI_GetPlanWithoutPrincipal(t *testing.T) {
	mux, _, ctrl := newTestAPI(t)
	defer ctrl.Finish()

	w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/plan", nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAPI_GetPlanUnknownTenant(t *testing.T) {
	mux, mocks, ctrl := newTestAPI(t)
	defer ctrl.Finish()

	mocks.plans.EXPECT().ResolvePlan(gomock.Any(), "tenant-1").Return(nil, plan.ErrTenantNotFound)

	w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/plan", staffPrincipal())

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestAPI_GetFeature(t *testing.T) {
	mux, mocks, ctrl := newTestAPI(t)
	defer ctrl.Finish()

	mocks.features.EXPECT().HasFeature(gomock.Any(), "tenant-1", "QR_ORDERING").Return(true, nil)

	w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/features/QR_ORDERING", staffPrincipal())

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp FeatureResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != "QR_ORDERING" || !resp.Enabled {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestAPI_ListFeatures(t *testing.T) {
	mux, mocks, ctrl := newTestAPI(t)
	defer ctrl.Finish()

	mocks.features.EXPECT().TenantFeatures(gomock.Any(), "tenant-1").
		Return(map[string]bool{"QR_ORDERING": true, "WHITE_LABEL": false}, nil)

	w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/features", staffPrincipal())

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp FeaturesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Features) != 2 || !resp.Features["QR_ORDERING"] {
		t.Errorf("unexpected payload: %+v", resp)
	}
}

func TestAPI_CheckPermission(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*apiMocks)
		allowed    bool
	}{
		{
			name: "allowed",
			setupMocks: func(mocks *apiMocks) {
				mocks.permissions.EXPECT().HasPermission(gomock.Any(), "tenant-1", types.RoleManager, "MANAGE_MENU").
					Return(true, nil)
			},
			allowed: true,
		},
		{
			name: "denied decisions are audited",
			setupMocks: func(mocks *apiMocks) {
				mocks.permissions.EXPECT().HasPermission(gomock.Any(), "tenant-1", types.RoleManager, "MANAGE_MENU").
					Return(false, nil)
				mocks.auditor.EXPECT().Record(gomock.Any(), gomock.Any())
			},
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mocks, ctrl := newTestAPI(t)
			defer ctrl.Finish()

			tt.setupMocks(mocks)

			w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/permissions/MANAGE_MENU", staffPrincipal())

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var resp PermissionResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Allowed != tt.allowed {
				t.Errorf("expected allowed=%v, got %v", tt.allowed, resp.Allowed)
			}
		})
	}
}

func TestAPI_CheckLimit(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		mux, mocks, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		mocks.guard.EXPECT().CheckResourceLimit(gomock.Any(), "tenant-1", types.ResourceMenuItems).Return(nil)

		w := doRequest(mux, http.MethodPost, "/api/v0/entitlements/limits/menuItems/check", staffPrincipal())

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", w.Code)
		}
	})

	t.Run("exceeded", func(t *testing.T) {
		mux, mocks, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		mocks.guard.EXPECT().CheckResourceLimit(gomock.Any(), "tenant-1", types.ResourceMenuItems).
			Return(&limits.LimitExceededError{Kind: types.ResourceMenuItems, Limit: 20, Current: 20})
		mocks.auditor.EXPECT().Record(gomock.Any(), gomock.Any())

		w := doRequest(mux, http.MethodPost, "/api/v0/entitlements/limits/menuItems/check", staffPrincipal())

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected status 403, got %d", w.Code)
		}

		var resp struct {
			Data    LimitExceededResponse `json:"data"`
			Code    string                `json:"code"`
			Message string                `json:"message"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Code != limits.LimitExceededCode {
			t.Errorf("expected code %q, got %q", limits.LimitExceededCode, resp.Code)
		}
		if resp.Data.Limit != 20 || resp.Data.Current != 20 {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
	})

	t.Run("unknown resource", func(t *testing.T) {
		mux, mocks, ctrl := newTestAPI(t)
		defer ctrl.Finish()

		mocks.guard.EXPECT().CheckResourceLimit(gomock.Any(), "tenant-1", types.ResourceKind("widgets")).
			Return(limits.ErrUnknownResource)

		w := doRequest(mux, http.MethodPost, "/api/v0/entitlements/limits/widgets/check", staffPrincipal())

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
	})
}

func TestAPI_GetUsage(t *testing.T) {
	mux, mocks, ctrl := newTestAPI(t)
	defer ctrl.Finish()

	mocks.guard.EXPECT().Usage(gomock.Any(), "tenant-1").Return(map[types.ResourceKind]limits.UsageInfo{
		types.ResourceMenuItems: {Current: 7, Limit: 20},
	}, nil)

	w := doRequest(mux, http.MethodGet, "/api/v0/entitlements/usage", staffPrincipal())

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp UsageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Usage[types.ResourceMenuItems] != (limits.UsageInfo{Current: 7, Limit: 20}) {
		t.Errorf("unexpected payload: %+v", resp.Usage)
	}
}
