// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package limits

import (
	"errors"
	"fmt"

	"github.com/mbx92/entitlement-service/internal/types"
)

// Code carried by LimitExceededError for machine checks at the transport
// boundary.
const LimitExceededCode = "LIMIT_EXCEEDED"

// ErrUnknownResource is returned for a kind outside the fixed enumeration.
var ErrUnknownResource = errors.New("unknown resource kind")

// LimitExceededError reports a resource at or above its plan cap. Callers
// are expected to translate it into an upgrade prompt.
type LimitExceededError struct {
	Kind    types.ResourceKind
	Limit   int64
	Current int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("plan limit exceeded: you can only have %d %s, please upgrade your plan", e.Limit, e.Kind)
}

// IsLimitExceeded reports whether err is a limit rejection and returns it.
func IsLimitExceeded(err error) (*LimitExceededError, bool) {
	var le *LimitExceededError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
