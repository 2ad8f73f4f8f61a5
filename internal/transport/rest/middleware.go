package rest

import (
	"net/http"
	"strings"

	"github.com/shopfabrik/product-api/internal/auth"
)

// Headers set by the upstream gateway after verifying the caller's session.
// The group list is trusted as delivered; no verification happens here.
const (
	UserHeader   = "X-User-Id"
	GroupsHeader = "X-User-Groups"
)

// CallerIdentity extracts the caller identity from the request headers and
// attaches it to the request context. Requests without a user header pass
// through as anonymous.
func CallerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get(UserHeader)
		if username == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity := &auth.Identity{Username: username}
		if raw := r.Header.Get(GroupsHeader); raw != "" {
			for _, group := range strings.Split(raw, ",") {
				if group = strings.TrimSpace(group); group != "" {
					identity.Groups = append(identity.Groups, group)
				}
			}
		}

		ctx := auth.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
