package api

import (
	"context"

	"github.com/taijii-c/portfolio-site-backend/authz"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal adds the acting principal to the context
func ctxWithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// principalFromCtx retrieves the acting principal from the context. The
// second return is false when the request never passed the identity
// middleware.
func principalFromCtx(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalKey).(authz.Principal)
	return p, ok
}
