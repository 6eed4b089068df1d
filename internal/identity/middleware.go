// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

// Header names set by the upstream gateway after session validation. The
// service trusts them; session mechanics live outside this boundary.
const (
	TenantHeaderName = "X-Tenant-Id"
	RoleHeaderName   = "X-Tenant-Role"
	UserHeaderName   = "X-User-Id"
)

type principalContextKey struct{}

// Principal is the acting identity for a request: which tenant it belongs
// to and which role it holds there.
type Principal struct {
	TenantID string
	UserID   string
	Role     types.RoleCode
}

// PrincipalFromContext returns the request principal, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	return p, ok
}

// ContextWithPrincipal attaches a principal to the context. Exposed for
// tests and for non-HTTP callers.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		tenantID := r.Header.Get(TenantHeaderName)
		if tenantID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		p := &Principal{
			TenantID: tenantID,
			UserID:   r.Header.Get(UserHeaderName),
			Role:     types.RoleCode(r.Header.Get(RoleHeaderName)),
		}

		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(ctx, p)))
	})
}
