// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/mbx92/entitlement-service/internal/db"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

// testDBClient runs statements against a sqlmock handle instead of a pgx
// pool. Transactions degrade to running the callback on the same handle.
type testDBClient struct {
	db *sql.DB
}

func (c *testDBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(c.db)
}

func (c *testDBClient) BeginTx(ctx context.Context) (context.Context, db.TxInterface, error) {
	return ctx, nil, errors.New("not supported")
}

func (c *testDBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (c *testDBClient) Close() {}

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	s := NewStorage(&testDBClient{db: mockDB}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, mock
}

func TestStorage_GetTenantByID(t *testing.T) {
	s, mock := newTestStorage(t)

	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, slug, business_type, enabled, created_at FROM tenants").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "business_type", "enabled", "created_at"}).
			AddRow("tenant-1", "Corner Bakery", "corner-bakery", "bakery", true, createdAt))

	tenant, err := s.GetTenantByID(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := &types.Tenant{
		ID:           "tenant-1",
		Name:         "Corner Bakery",
		Slug:         "corner-bakery",
		BusinessType: types.BusinessTypeBakery,
		Enabled:      true,
		CreatedAt:    createdAt,
	}
	if !reflect.DeepEqual(tenant, expected) {
		t.Errorf("expected tenant %+v, got %+v", expected, tenant)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetTenantByIDNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT id, name, slug, business_type, enabled, created_at FROM tenants").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetTenantByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStorage_GetPlanBySlug(t *testing.T) {
	s, mock := newTestStorage(t)

	createdAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, name, slug, description, price_cents, limits, features, is_active, sort_order, created_at FROM plans").
		WithArgs("pro").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description", "price_cents", "limits", "features", "is_active", "sort_order", "created_at"}).
			AddRow("plan-pro", "Professional", "pro", "For growing teams", int64(4900),
				[]byte(`{"menuItems":-1,"users":20}`), []byte(`["ADVANCED_REPORTING"]`), true, 2, createdAt))

	p, err := s.GetPlanBySlug(context.Background(), "pro")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if p.Slug != "pro" || p.PriceCents != 4900 {
		t.Errorf("unexpected plan row: %+v", p)
	}
	if p.Limits[types.ResourceMenuItems] != types.Unlimited {
		t.Errorf("expected unlimited menu items, got %d", p.Limits[types.ResourceMenuItems])
	}
	if p.Limits[types.ResourceUsers] != 20 {
		t.Errorf("expected users limit 20, got %d", p.Limits[types.ResourceUsers])
	}
	if !reflect.DeepEqual(p.Features, []string{"ADVANCED_REPORTING"}) {
		t.Errorf("expected legacy feature list, got %v", p.Features)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_GetPlanBySlugMalformedLimits(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM plans").
		WithArgs("broken").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description", "price_cents", "limits", "features", "is_active", "sort_order", "created_at"}).
			AddRow("plan-x", "Broken", "broken", "", int64(0), []byte(`{not json`), []byte(`[]`), true, 0, time.Now()))

	_, err := s.GetPlanBySlug(context.Background(), "broken")
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestStorage_GetActiveSubscriptionExcludesCancelled(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT (.+) FROM subscriptions").
		WithArgs("tenant-1", types.SubscriptionCancelled).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetActiveSubscription(context.Background(), "tenant-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStorage_GetBusinessTypePermission(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT business_type, permission_id, is_enabled FROM business_type_permissions").
		WillReturnRows(sqlmock.NewRows([]string{"business_type", "permission_id", "is_enabled"}).
			AddRow("restaurant", "perm-1", true))

	btp, err := s.GetBusinessTypePermission(context.Background(), types.BusinessTypeRestaurant, "perm-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if btp.BusinessType != types.BusinessTypeRestaurant || !btp.IsEnabled {
		t.Errorf("unexpected row: %+v", btp)
	}
}

func TestStorage_CountOrdersSince(t *testing.T) {
	s, mock := newTestStorage(t)

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT(.+) FROM orders").
		WithArgs("tenant-1", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := s.CountOrdersSince(context.Background(), "tenant-1", since)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 42 {
		t.Errorf("expected count 42, got %d", count)
	}
}

func TestStorage_CountUsers(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery("SELECT COUNT(.+) FROM users").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := s.CountUsers(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 7 {
		t.Errorf("expected count 7, got %d", count)
	}
}

func TestStorage_InsertAuditLog(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec("INSERT INTO audit_logs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := s.InsertAuditLog(context.Background(), &types.AuditEntry{
		TenantID: "tenant-1",
		UserID:   "user-1",
		Action:   "PERMISSION_DENIED",
		Entity:   "permission",
		EntityID: "MANAGE_SETTINGS",
		Metadata: map[string]string{"role": "CASHIER"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id == "" {
		t.Error("expected generated audit log ID")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_ListPlans(t *testing.T) {
	s, mock := newTestStorage(t)

	createdAt := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM plans ORDER BY sort_order ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "description", "price_cents", "limits", "features", "is_active", "sort_order", "created_at"}).
			AddRow("plan-free", "Free", "free", "", int64(0), []byte(`{"users":2}`), []byte(`[]`), true, 0, createdAt).
			AddRow("plan-pro", "Professional", "pro", "", int64(4900), []byte(`{"users":20}`), []byte(`[]`), true, 2, createdAt))

	plans, err := s.ListPlans(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].Slug != "free" || plans[1].Slug != "pro" {
		t.Errorf("unexpected plan order: %s, %s", plans[0].Slug, plans[1].Slug)
	}
}
