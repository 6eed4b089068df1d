// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits structured records for authorization
// outcomes that security reviews care about: denials and degraded
// (fallback) evaluations.
type SecurityLoggerInterface interface {
	PermissionDenied(tenantID, role, permission, rule string)
	FallbackUsed(tenantID, permission, reason string)
	SystemStartup()
	SystemShutdown()
}
