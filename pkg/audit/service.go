// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package audit records write intents to an append-only trail. Recording is
// best effort: an audit failure is logged and never fails the request that
// triggered it.
package audit

import (
	"context"

	"github.com/mbx92/entitlement-service/internal/db"
	"github.com/mbx92/entitlement-service/internal/logging"
	"github.com/mbx92/entitlement-service/internal/monitoring"
	"github.com/mbx92/entitlement-service/internal/tracing"
	"github.com/mbx92/entitlement-service/internal/types"
)

var _ RecorderInterface = (*Recorder)(nil)

type Recorder struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRecorder(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Recorder {
	return &Recorder{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Record persists the entry. Storage errors are swallowed after logging so
// callers never couple their success to the audit trail. The insert runs
// outside any request transaction: a denial response rolls the request
// transaction back, and the denial record must survive that.
func (r *Recorder) Record(ctx context.Context, entry *types.AuditEntry) {
	ctx, span := r.tracer.Start(ctx, "audit.Recorder.Record")
	defer span.End()

	ctx = db.ContextWithoutTx(ctx)

	outcome := "recorded"
	if _, err := r.storage.InsertAuditLog(ctx, entry); err != nil {
		outcome = "dropped"
		r.logger.Errorf(
			"failed to record audit entry action=%s entity=%s tenant=%s: %v",
			entry.Action, entry.Entity, entry.TenantID, err,
		)
	}

	tags := map[string]string{"resolver": "audit", "outcome": outcome}
	if err := r.monitor.SetDecisionMetric(tags); err != nil {
		r.logger.Debugf("failed to record decision metric: %v", err)
	}
}
