// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package rbac resolves role-based permissions per tenant. The decision
// chain, in fixed order: OWNER shortcut, permission catalog lookup (with a
// static-matrix fallback for codes the catalog has not been migrated to),
// business-type capability gate, role-permission matrix, tenant+role
// override as the final word.
package rbac

import (
	"context"
	"errors"

	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/storage"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

// Config tunes the resolver's degradation behavior.
type Config struct {
	// FailOpen answers permission checks from the static matrix when the
	// entitlement store is unavailable, keeping basic authorization
	// functioning through partial outages. Fail-closed propagates the
	// store error instead. Availability-over-strictness is the historical
	// behavior and the default.
	FailOpen bool
}

// request carries one permission check through the chain. The catalog step
// fills in the permission entity for the later steps.
type request struct {
	tenantID       string
	role           types.RoleCode
	permissionCode string

	permission *types.Permission
}

// verdict is a terminal decision together with the rule that produced it.
type verdict struct {
	allowed bool
	rule    string
}

// rule is one step of the permission chain. A nil verdict with a nil error
// passes evaluation to the next step; the first non-nil verdict is final.
type rule struct {
	name     string
	evaluate func(ctx context.Context, req *request) (*verdict, error)
}

var _ ResolverInterface = (*Resolver)(nil)

type Resolver struct {
	storage  StorageInterface
	fallback Matrix
	cfg      Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(
	storage StorageInterface,
	fallback Matrix,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	return &Resolver{
		storage:  storage,
		fallback: fallback,
		cfg:      cfg,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (r *Resolver) chain() []rule {
	return []rule{
		{name: "owner_shortcut", evaluate: r.ownerShortcutRule},
		{name: "permission_catalog", evaluate: r.permissionCatalogRule},
		{name: "business_type_gate", evaluate: r.businessTypeGateRule},
		{name: "role_permission", evaluate: r.rolePermissionRule},
		{name: "tenant_override", evaluate: r.tenantOverrideRule},
	}
}

// HasPermission resolves whether the role may perform the permission
// within the tenant's business-type context. Store faults degrade to the
// static matrix when FailOpen is set, and propagate otherwise.
func (r *Resolver) HasPermission(ctx context.Context, tenantID string, role types.RoleCode, permissionCode string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "rbac.Resolver.HasPermission")
	defer span.End()

	req := &request{tenantID: tenantID, role: role, permissionCode: permissionCode}

	for _, step := range r.chain() {
		v, err := step.evaluate(ctx, req)
		if err != nil {
			if !r.cfg.FailOpen {
				return false, err
			}
			r.logger.Errorf("permission chain step %s failed, using static matrix: %v", step.name, err)
			r.logger.Security().FallbackUsed(tenantID, permissionCode, "store unavailable")
			return r.finish(req, &verdict{allowed: r.fallback.Allows(role, permissionCode), rule: "static_matrix"}), nil
		}
		if v != nil {
			return r.finish(req, v), nil
		}
	}

	// Every gate passed and no override had the final word.
	return r.finish(req, &verdict{allowed: true, rule: "chain_complete"}), nil
}

func (r *Resolver) finish(req *request, v *verdict) bool {
	outcome := "deny"
	if v.allowed {
		outcome = "allow"
	} else {
		r.logger.Security().PermissionDenied(req.tenantID, string(req.role), req.permissionCode, v.rule)
	}

	tags := map[string]string{"resolver": "rbac", "outcome": outcome}
	if err := r.monitor.SetDecisionMetric(tags); err != nil {
		r.logger.Debugf("failed to record decision metric: %v", err)
	}

	return v.allowed
}

// ownerShortcutRule: OWNER bypasses the whole chain. A deliberate
// shortcut, not a cache.
func (r *Resolver) ownerShortcutRule(_ context.Context, req *request) (*verdict, error) {
	if req.role == types.RoleOwner {
		return &verdict{allowed: true, rule: "owner_shortcut"}, nil
	}
	return nil, nil
}

// permissionCatalogRule: resolve the permission entity. Codes unknown to
// the catalog get the static matrix verdict; this tolerates partially
// migrated catalogs and applies regardless of the fail-open setting.
func (r *Resolver) permissionCatalogRule(ctx context.Context, req *request) (*verdict, error) {
	p, err := r.storage.GetPermissionByCode(ctx, req.permissionCode)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &verdict{allowed: r.fallback.Allows(req.role, req.permissionCode), rule: "static_matrix"}, nil
		}
		return nil, err
	}

	req.permission = p
	return nil, nil
}

// businessTypeGateRule: the tenant's vertical must list the capability at
// all. An absent or disabled row denies; overrides further down cannot
// re-enable a capability the business type lacks.
func (r *Resolver) businessTypeGateRule(ctx context.Context, req *request) (*verdict, error) {
	tenant, err := r.storage.GetTenantByID(ctx, req.tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &verdict{allowed: false, rule: "tenant_missing"}, nil
		}
		return nil, err
	}

	_, err = r.storage.GetBusinessTypePermission(ctx, tenant.BusinessType, req.permission.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &verdict{allowed: false, rule: "business_type_gate"}, nil
		}
		return nil, err
	}

	return nil, nil
}

// rolePermissionRule: the global default grant matrix must list the
// (role, permission) pair.
func (r *Resolver) rolePermissionRule(ctx context.Context, req *request) (*verdict, error) {
	role, err := r.storage.GetRoleByCode(ctx, req.role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &verdict{allowed: false, rule: "role_missing"}, nil
		}
		return nil, err
	}

	_, err = r.storage.GetRolePermission(ctx, role.ID, req.permission.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &verdict{allowed: false, rule: "role_permission"}, nil
		}
		return nil, err
	}

	return nil, nil
}

// tenantOverrideRule: the finest-grained level, scoped to one tenant AND
// one role. When present its grant is the final word; when absent the
// chain's prior gates stand.
func (r *Resolver) tenantOverrideRule(ctx context.Context, req *request) (*verdict, error) {
	override, err := r.storage.GetTenantPermissionOverride(ctx, req.tenantID, req.permission.ID, req.role)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &verdict{allowed: override.IsGranted, rule: "tenant_override"}, nil
}

// HasPermissionStatic answers from the static matrix only, with no store
// access. OWNER keeps its shortcut for parity with the full chain.
func (r *Resolver) HasPermissionStatic(role types.RoleCode, permissionCode string) bool {
	if role == types.RoleOwner {
		return true
	}
	return r.fallback.Allows(role, permissionCode)
}

// HasAnyPermissionStatic reports whether the matrix grants at least one of
// the codes to the role.
func (r *Resolver) HasAnyPermissionStatic(role types.RoleCode, permissionCodes []string) bool {
	for _, code := range permissionCodes {
		if r.HasPermissionStatic(role, code) {
			return true
		}
	}
	return false
}

// HasAllPermissionsStatic reports whether the matrix grants every code to
// the role.
func (r *Resolver) HasAllPermissionsStatic(role types.RoleCode, permissionCodes []string) bool {
	for _, code := range permissionCodes {
		if !r.HasPermissionStatic(role, code) {
			return false
		}
	}
	return true
}
