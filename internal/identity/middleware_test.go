// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name              string
		headers           map[string]string
		expectedPrincipal *Principal
	}{
		{
			name: "full identity headers",
			headers: map[string]string{
				TenantHeaderName: "tenant-1",
				RoleHeaderName:   "MANAGER",
				UserHeaderName:   "user-1",
			},
			expectedPrincipal: &Principal{
				TenantID: "tenant-1",
				UserID:   "user-1",
				Role:     types.RoleManager,
			},
		},
		{
			name: "tenant only",
			headers: map[string]string{
				TenantHeaderName: "tenant-1",
			},
			expectedPrincipal: &Principal{TenantID: "tenant-1"},
		},
		{
			name:              "no headers leaves the context anonymous",
			headers:           map[string]string{},
			expectedPrincipal: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			var got *Principal
			var present bool
			handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, present = PrincipalFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/entitlements/plan", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tt.expectedPrincipal == nil {
				if present {
					t.Fatalf("expected no principal, got %+v", got)
				}
				return
			}

			if !present {
				t.Fatal("expected a principal on the request context")
			}
			if *got != *tt.expectedPrincipal {
				t.Errorf("expected principal %+v, got %+v", *tt.expectedPrincipal, *got)
			}
		})
	}
}
