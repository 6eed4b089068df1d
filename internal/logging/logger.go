// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// SecurityLogger writes authorization outcomes on a dedicated logger so
// they can be routed and retained independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) PermissionDenied(tenantID, role, permission, rule string) {
	s.l.Warn("permission denied",
		zap.String("tenant_id", tenantID),
		zap.String("role", role),
		zap.String("permission", permission),
		zap.String("rule", rule),
	)
}

func (s *SecurityLogger) FallbackUsed(tenantID, permission, reason string) {
	s.l.Warn("static matrix fallback used",
		zap.String("tenant_id", tenantID),
		zap.String("permission", permission),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown")
}

func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l.Named("security")},
	}
}
