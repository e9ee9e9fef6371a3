package handler

import (
	"context"

	"github.com/edutech-dev/board/internal/session"
)

type ContextKey string

var PrincipalCtxKey ContextKey = "principal"

// PrincipalFromContext returns the authenticated principal, or nil for an
// anonymous request.
func PrincipalFromContext(ctx context.Context) *session.Principal {
	p, _ := ctx.Value(PrincipalCtxKey).(*session.Principal)
	return p
}
