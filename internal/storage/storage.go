// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mbx92/entitlement-service/internal/db"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "business_type", "enabled", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.Slug, &t.BusinessType, &t.Enabled, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

// GetActiveSubscription returns the tenant's current subscription. A tenant
// owns at most one; CANCELLED rows stay behind as historical records and are
// not returned.
func (s *Storage) GetActiveSubscription(ctx context.Context, tenantID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveSubscription")
	defer span.End()

	var sub types.Subscription
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "plan_id", "status", "current_period_start", "current_period_end", "created_at").
		From("subscriptions").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.NotEq{"status": types.SubscriptionCancelled}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&sub.ID, &sub.TenantID, &sub.PlanID, &sub.Status, &sub.CurrentPeriodStart, &sub.CurrentPeriodEnd, &sub.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

func (s *Storage) GetPlanByID(ctx context.Context, id string) (*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanByID")
	defer span.End()

	return s.getPlan(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetPlanBySlug(ctx context.Context, slug string) (*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanBySlug")
	defer span.End()

	return s.getPlan(ctx, sq.Eq{"slug": slug})
}

func (s *Storage) getPlan(ctx context.Context, pred sq.Eq) (*types.Plan, error) {
	var (
		p           types.Plan
		rawLimits   []byte
		rawFeatures []byte
	)
	err := s.db.Statement(ctx).
		Select("id", "name", "slug", "description", "price_cents", "limits", "features", "is_active", "sort_order", "created_at").
		From("plans").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &rawLimits, &rawFeatures, &p.IsActive, &p.SortOrder, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	if err := unmarshalPlanColumns(&p, rawLimits, rawFeatures); err != nil {
		return nil, err
	}

	return &p, nil
}

func unmarshalPlanColumns(p *types.Plan, rawLimits, rawFeatures []byte) error {
	if len(rawLimits) > 0 {
		if err := json.Unmarshal(rawLimits, &p.Limits); err != nil {
			return fmt.Errorf("failed to decode plan limits for %q: %w", p.Slug, err)
		}
	}
	if len(rawFeatures) > 0 {
		if err := json.Unmarshal(rawFeatures, &p.Features); err != nil {
			return fmt.Errorf("failed to decode plan features for %q: %w", p.Slug, err)
		}
	}
	return nil
}

func (s *Storage) ListPlans(ctx context.Context) ([]*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlans")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "slug", "description", "price_cents", "limits", "features", "is_active", "sort_order", "created_at").
		From("plans").
		OrderBy("sort_order ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.Plan
	for rows.Next() {
		var (
			p           types.Plan
			rawLimits   []byte
			rawFeatures []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &rawLimits, &rawFeatures, &p.IsActive, &p.SortOrder, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		if err := unmarshalPlanColumns(&p, rawLimits, rawFeatures); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return plans, nil
}

func (s *Storage) UpsertPlan(ctx context.Context, plan *types.Plan) (*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertPlan")
	defer span.End()

	rawLimits, err := json.Marshal(plan.Limits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan limits: %w", err)
	}
	rawFeatures, err := json.Marshal(plan.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan features: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan ID: %w", err)
	}

	var updated types.Plan
	err = s.db.Statement(ctx).
		Insert("plans").
		Columns("id", "name", "slug", "description", "price_cents", "limits", "features", "is_active", "sort_order").
		Values(id.String(), plan.Name, plan.Slug, plan.Description, plan.PriceCents, rawLimits, rawFeatures, plan.IsActive, plan.SortOrder).
		Suffix(`ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price_cents = EXCLUDED.price_cents,
			limits = EXCLUDED.limits,
			features = EXCLUDED.features,
			is_active = EXCLUDED.is_active,
			sort_order = EXCLUDED.sort_order
			RETURNING id, name, slug, created_at`).
		QueryRowContext(ctx).
		Scan(&updated.ID, &updated.Name, &updated.Slug, &updated.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert plan: %w", err)
	}

	updated.Limits = plan.Limits
	updated.Features = plan.Features
	return &updated, nil
}

func (s *Storage) GetFeatureByCode(ctx context.Context, code string) (*types.Feature, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFeatureByCode")
	defer span.End()

	var f types.Feature
	err := s.db.Statement(ctx).
		Select("id", "code", "name", "description", "created_at").
		From("features").
		Where(sq.Eq{"code": code}).
		QueryRowContext(ctx).
		Scan(&f.ID, &f.Code, &f.Name, &f.Description, &f.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	return &f, nil
}

func (s *Storage) GetPlanFeature(ctx context.Context, planID, featureCode string) (*types.PlanFeature, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanFeature")
	defer span.End()

	var pf types.PlanFeature
	err := s.db.Statement(ctx).
		Select("pf.plan_id", "pf.feature_id", "f.code", "pf.enabled").
		From("plan_features pf").
		Join("features f ON f.id = pf.feature_id").
		Where(sq.Eq{"pf.plan_id": planID, "f.code": featureCode}).
		QueryRowContext(ctx).
		Scan(&pf.PlanID, &pf.FeatureID, &pf.FeatureCode, &pf.Enabled)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan feature: %w", err)
	}

	return &pf, nil
}

func (s *Storage) ListPlanFeatures(ctx context.Context, planID string) ([]*types.PlanFeature, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlanFeatures")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("pf.plan_id", "pf.feature_id", "f.code", "pf.enabled").
		From("plan_features pf").
		Join("features f ON f.id = pf.feature_id").
		Where(sq.Eq{"pf.plan_id": planID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan features: %w", err)
	}
	defer rows.Close()

	var features []*types.PlanFeature
	for rows.Next() {
		var pf types.PlanFeature
		if err := rows.Scan(&pf.PlanID, &pf.FeatureID, &pf.FeatureCode, &pf.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan plan feature: %w", err)
		}
		features = append(features, &pf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return features, nil
}

func (s *Storage) GetTenantFeatureOverride(ctx context.Context, tenantID, featureCode string) (*types.TenantFeatureOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantFeatureOverride")
	defer span.End()

	var o types.TenantFeatureOverride
	err := s.db.Statement(ctx).
		Select("o.tenant_id", "o.feature_id", "f.code", "o.enabled", "o.reason", "o.created_at").
		From("tenant_feature_overrides o").
		Join("features f ON f.id = o.feature_id").
		Where(sq.Eq{"o.tenant_id": tenantID, "f.code": featureCode}).
		QueryRowContext(ctx).
		Scan(&o.TenantID, &o.FeatureID, &o.FeatureCode, &o.Enabled, &o.Reason, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature override: %w", err)
	}

	return &o, nil
}

func (s *Storage) ListTenantFeatureOverrides(ctx context.Context, tenantID string) ([]*types.TenantFeatureOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantFeatureOverrides")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("o.tenant_id", "o.feature_id", "f.code", "o.enabled", "o.reason", "o.created_at").
		From("tenant_feature_overrides o").
		Join("features f ON f.id = o.feature_id").
		Where(sq.Eq{"o.tenant_id": tenantID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feature overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*types.TenantFeatureOverride
	for rows.Next() {
		var o types.TenantFeatureOverride
		if err := rows.Scan(&o.TenantID, &o.FeatureID, &o.FeatureCode, &o.Enabled, &o.Reason, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feature override: %w", err)
		}
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return overrides, nil
}

func (s *Storage) GetPermissionByCode(ctx context.Context, code string) (*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPermissionByCode")
	defer span.End()

	var p types.Permission
	err := s.db.Statement(ctx).
		Select("id", "code", "name", "category").
		From("permissions").
		Where(sq.Eq{"code": code}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Code, &p.Name, &p.Category)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return &p, nil
}

func (s *Storage) GetRoleByCode(ctx context.Context, code types.RoleCode) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByCode")
	defer span.End()

	var r types.Role
	err := s.db.Statement(ctx).
		Select("id", "code", "name", "hierarchy_level").
		From("roles").
		Where(sq.Eq{"code": code}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.Code, &r.Name, &r.HierarchyLevel)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &r, nil
}

func (s *Storage) GetRolePermission(ctx context.Context, roleID, permissionID string) (*types.RolePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRolePermission")
	defer span.End()

	var rp types.RolePermission
	err := s.db.Statement(ctx).
		Select("role_id", "permission_id").
		From("role_permissions").
		Where(sq.Eq{"role_id": roleID, "permission_id": permissionID}).
		QueryRowContext(ctx).
		Scan(&rp.RoleID, &rp.PermissionID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role permission: %w", err)
	}

	return &rp, nil
}

// GetBusinessTypePermission returns the enabled capability row for the
// vertical, or ErrNotFound when the vertical does not support the
// permission at all (disabled rows are equivalent to absent ones).
func (s *Storage) GetBusinessTypePermission(ctx context.Context, businessType types.BusinessType, permissionID string) (*types.BusinessTypePermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBusinessTypePermission")
	defer span.End()

	var btp types.BusinessTypePermission
	err := s.db.Statement(ctx).
		Select("business_type", "permission_id", "is_enabled").
		From("business_type_permissions").
		Where(sq.Eq{
			"business_type": businessType,
			"permission_id": permissionID,
			"is_enabled":    true,
		}).
		QueryRowContext(ctx).
		Scan(&btp.BusinessType, &btp.PermissionID, &btp.IsEnabled)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business type permission: %w", err)
	}

	return &btp, nil
}

func (s *Storage) ListBusinessTypeRoles(ctx context.Context, businessType types.BusinessType) ([]*types.BusinessTypeRole, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBusinessTypeRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("btr.business_type", "btr.role_id", "r.code", "btr.is_enabled").
		From("business_type_roles btr").
		Join("roles r ON r.id = btr.role_id").
		Where(sq.Eq{"btr.business_type": businessType}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list business type roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.BusinessTypeRole
	for rows.Next() {
		var btr types.BusinessTypeRole
		if err := rows.Scan(&btr.BusinessType, &btr.RoleID, &btr.RoleCode, &btr.IsEnabled); err != nil {
			return nil, fmt.Errorf("failed to scan business type role: %w", err)
		}
		roles = append(roles, &btr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) GetTenantPermissionOverride(ctx context.Context, tenantID, permissionID string, role types.RoleCode) (*types.TenantPermissionOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantPermissionOverride")
	defer span.End()

	var o types.TenantPermissionOverride
	err := s.db.Statement(ctx).
		Select("tenant_id", "permission_id", "role_code", "is_granted", "note", "created_at").
		From("tenant_permission_overrides").
		Where(sq.Eq{
			"tenant_id":     tenantID,
			"permission_id": permissionID,
			"role_code":     role,
		}).
		QueryRowContext(ctx).
		Scan(&o.TenantID, &o.PermissionID, &o.RoleCode, &o.IsGranted, &o.Note, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get permission override: %w", err)
	}

	return &o, nil
}

func (s *Storage) CountMenuItems(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMenuItems")
	defer span.End()

	return s.countByTenant(ctx, "menu_items", tenantID)
}

func (s *Storage) CountTables(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTables")
	defer span.End()

	return s.countByTenant(ctx, "tables", tenantID)
}

func (s *Storage) CountUsers(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUsers")
	defer span.End()

	return s.countByTenant(ctx, "users", tenantID)
}

func (s *Storage) countByTenant(ctx context.Context, table, tenantID string) (int64, error) {
	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return count, nil
}

// CountOrdersSince counts only orders created at or after the cutoff; the
// limit guard passes the first instant of the current month.
func (s *Storage) CountOrdersSince(ctx context.Context, tenantID string, since time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountOrdersSince")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"tenant_id": tenantID}).
		Where(sq.GtOrEq{"created_at": since}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}

func (s *Storage) InsertAuditLog(ctx context.Context, entry *types.AuditEntry) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertAuditLog")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate audit log ID: %w", err)
	}

	oldData, err := marshalNullable(entry.OldData)
	if err != nil {
		return "", fmt.Errorf("failed to encode old data: %w", err)
	}
	newData, err := marshalNullable(entry.NewData)
	if err != nil {
		return "", fmt.Errorf("failed to encode new data: %w", err)
	}
	metadata, err := marshalNullable(entry.Metadata)
	if err != nil {
		return "", fmt.Errorf("failed to encode metadata: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_logs").
		Columns("id", "tenant_id", "user_id", "action", "entity", "entity_id", "old_data", "new_data", "metadata").
		Values(id.String(), entry.TenantID, nullableString(entry.UserID), entry.Action, entry.Entity, nullableString(entry.EntityID), oldData, newData, metadata).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to insert audit log: %w", err)
	}

	return id.String(), nil
}

func marshalNullable(v any) (any, error) {
	switch data := v.(type) {
	case map[string]any:
		if data == nil {
			return nil, nil
		}
	case map[string]string:
		if data == nil {
			return nil, nil
		}
	case nil:
		return nil, nil
	}
	return json.Marshal(v)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
