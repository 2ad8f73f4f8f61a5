// Package auth provides caller identity and group-based authorization checks.
package auth

import "context"

// Identity carries the verified identity of a caller: the username and the
// group claims delivered by the upstream identity provider. The claims are
// trusted as-is; no verification happens here.
type Identity struct {
	Username string
	Groups   []string
}

// IsMember reports whether the caller belongs to the named group.
// Anonymous callers (nil identity) and identities without group claims are
// never members. Group names match exactly, case-sensitively.
func IsMember(identity *Identity, group string) bool {
	if identity == nil {
		return false
	}
	for _, g := range identity.Groups {
		if g == group {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity adds the caller identity to the context.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// FromContext retrieves the caller identity from the context.
// Returns nil for anonymous callers.
func FromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(identityKey{}).(*Identity)
	return identity
}
