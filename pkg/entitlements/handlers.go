// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package entitlements exposes the JSON API over the resolvers: effective
// plan, feature flags, permission checks, and resource limit checks. The
// acting principal comes from the identity middleware headers.
package entitlements

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	httptypes "github.com/mbx92/entitlement-service/internal/http/types"
	"github.com/mbx92/entitlement-service/internal/identity"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
	"github.com/mbx92/entitlement-service/pkg/limits"
	"github.com/mbx92/entitlement-service/pkg/plan"
)

type API struct {
	plans       PlanResolverInterface
	guard       LimitGuardInterface
	features    FeatureResolverInterface
	permissions PermissionResolverInterface
	auditor     AuditRecorderInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(
	plans PlanResolverInterface,
	guard LimitGuardInterface,
	features FeatureResolverInterface,
	permissions PermissionResolverInterface,
	auditor AuditRecorderInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		plans:       plans,
		guard:       guard,
		features:    features,
		permissions: permissions,
		auditor:     auditor,
		tracer:      tracer,
		logger:      logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/entitlements/plan", a.getPlan)
	mux.Get("/api/v0/entitlements/features", a.listFeatures)
	mux.Get("/api/v0/entitlements/features/{code}", a.getFeature)
	mux.Get("/api/v0/entitlements/permissions/{code}", a.checkPermission)
	mux.Get("/api/v0/entitlements/usage", a.getUsage)
	mux.Post("/api/v0/entitlements/limits/{resource}/check", a.checkLimit)
}

func (a *API) getPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.getPlan")
	defer span.End()

	principal, ok := identity.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing tenant identity", "")
		return
	}

	tp, err := a.plans.ResolvePlan(ctx, principal.TenantID)
	if err != nil {
		if errors.Is(err, plan.ErrTenantNotFound) {
			a.writeError(w, http.StatusNotFound, "tenant not found", "")
			return
		}
		a.logger.Errorf("failed to resolve plan for tenant %s: %v", principal.TenantID, err)
		a.writeError(w, http.StatusInternalServerError, "failed to resolve plan", "")
		return
	}

	a.writeResponse(w, http.StatusOK, PlanResponse{
		Slug:               tp.Plan.Slug,
		Name:               tp.Plan.Name,
		Limits:             tp.Limits,
		SubscriptionStatus: tp.SubscriptionStatus,
	})
}

func (a *API) listFeatures(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.listFeatures")
	defer span.End()

	principal, ok := identity.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing tenant identity", "")
		return
	}

	flags, err := a.features.TenantFeatures(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to list features for tenant %s: %v", principal.TenantID, err)
		a.writeError(w, http.StatusInternalServerError, "failed to list features", "")
		return
	}

	a.writeResponse(w, http.StatusOK, FeaturesResponse{Features: flags})
}

func (a *API) getFeature(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.getFeature")
	defer span.End()

	principal, ok := identity.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing tenant identity", "")
		return
	}

	code := chi.URLParam(r, "code")

	enabled, err := a.features.HasFeature(ctx, principal.TenantID, code)
	if err != nil {
		a.logger.Errorf("failed to resolve feature %s for tenant %s: %v", code, principal.TenantID, err)
		a.writeError(w, http.StatusInternalServerError, "failed to resolve feature", "")
		return
	}

	a.writeResponse(w, http.StatusOK, FeatureResponse{Code: code, Enabled: enabled})
}

func (a *API) checkPermission(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.checkPermission")
	defer span.End()

	principal, ok := identity.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing tenant identity", "")
		return
	}

	code := chi.URLParam(r, "code")

	allowed, err := a.permissions.HasPermission(ctx, principal.TenantID, principal.Role, code)
	if err != nil {
		a.logger.Errorf("failed to resolve permission %s for tenant %s: %v", code, principal.TenantID, err)
		a.writeError(w, http.StatusInternalServerError, "failed to resolve permission", "")
		return
	}

	if !allowed {
		a.auditor.Record(ctx, &types.AuditEntry{
			TenantID: principal.TenantID,
			UserID:   principal.UserID,
			Action:   "PERMISSION_DENIED",
			Entity:   "permission",
			EntityID: code,
			Metadata: map[string]string{"role": string(principal.Role)},
		})
	}

	a.writeResponse(w, http.StatusOK, PermissionResponse{Code: code, Allowed: allowed})
}

func (a *API) checkLimit(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.checkLimit")
	defer span.End()

	principal, ok := identity.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing tenant identity", "")
		return
	}

	kind := types.ResourceKind(chi.URLParam(r, "resource"))

	err := a.guard.CheckResourceLimit(ctx, principal.TenantID, kind)
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if errors.Is(err, limits.ErrUnknownResource) {
		a.writeError(w, http.StatusBadRequest, "unknown resource kind", "")
		return
	}

	var exceeded *limits.LimitExceededError
	if errors.As(err, &exceeded) {
		a.auditor.Record(ctx, &types.AuditEntry{
			TenantID: principal.TenantID,
			UserID:   principal.UserID,
			Action:   "LIMIT_DENIED",
			Entity:   "resource",
			EntityID: string(kind),
			Metadata: map[string]string{"role": string(principal.Role)},
		})

		a.writeResponse(w, http.StatusForbidden, httptypes.Response{
			Data: LimitExceededResponse{
				Resource: exceeded.Kind,
				Limit:    exceeded.Limit,
				Current:  exceeded.Current,
			},
			Message: exceeded.Error(),
			Code:    limits.LimitExceededCode,
			Status:  http.StatusForbidden,
		})
		return
	}

	a.logger.Errorf("failed to check %s limit for tenant %s: %v", kind, principal.TenantID, err)
	a.writeError(w, http.StatusInternalServerError, "failed to check resource limit", "")
}

func (a *API) getUsage(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "entitlements.API.getUsage")
	defer span.End()

	principal, ok := identity.PrincipalFromContext(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "missing tenant identity", "")
		return
	}

	usage, err := a.guard.Usage(ctx, principal.TenantID)
	if err != nil {
		a.logger.Errorf("failed to compute usage for tenant %s: %v", principal.TenantID, err)
		a.writeError(w, http.StatusInternalServerError, "failed to compute usage", "")
		return
	}

	a.writeResponse(w, http.StatusOK, UsageResponse{Usage: usage})
}

func (a *API) writeResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message, code string) {
	a.writeResponse(w, status, httptypes.Response{
		Message: message,
		Code:    code,
		Status:  status,
	})
}
