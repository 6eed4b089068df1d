// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mbx92/entitlement-service/internal/db"
	"github.com/mbx92/entitlement-service/internal/identity"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/storage"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/pkg/audit"
	"github.com/mbx92/entitlement-service/pkg/entitlements"
	"github.com/mbx92/entitlement-service/pkg/features"
	"github.com/mbx92/entitlement-service/pkg/limits"
	"github.com/mbx92/entitlement-service/pkg/metrics"
	"github.com/mbx92/entitlement-service/pkg/plan"
	"github.com/mbx92/entitlement-service/pkg/rbac"
	"github.com/mbx92/entitlement-service/pkg/status"
)

// Config carries the resolver knobs the router needs beyond its injected
// dependencies.
type Config struct {
	DefaultPlanSlug    string
	PermissionFailOpen bool
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	plans := plan.NewService(s, cfg.DefaultPlanSlug, tracer, monitor, logger)
	guard := limits.NewService(plans, limits.NewCounterRegistry(s, nil), tracer, monitor, logger)
	flags := features.NewService(s, plans, tracer, monitor, logger)
	permissions := rbac.NewResolver(s, rbac.DefaultMatrix, rbac.Config{FailOpen: cfg.PermissionFailOpen}, tracer, monitor, logger)
	auditor := audit.NewRecorder(s, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	entitlements.NewAPI(plans, guard, flags, permissions, auditor, tracer, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
