package handler

import (
	"slices"
	"strings"

	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/session"
)

// AccessRule ties a path pattern to the roles allowed through. A nil Roles
// slice permits everyone, including anonymous requests. Patterns are either
// exact paths or a prefix ending in "/**".
type AccessRule struct {
	Pattern string
	Roles   []domain.Role
}

// AccessPolicy is an ordered rule list evaluated before routing dispatch;
// the first matching rule decides.
type AccessPolicy []AccessRule

// DefaultAccessPolicy gates the board detail page behind a logged-in role
// and permits everything else. Per-handler requireRole guards are the second
// enforcement layer on top of this.
func DefaultAccessPolicy() AccessPolicy {
	return AccessPolicy{
		{Pattern: "/board/read", Roles: domain.AllRoles},
		{Pattern: "/**", Roles: nil},
	}
}

// RequiredRoles returns the roles the first matching rule demands for path.
// (nil, false) means no rule matched; (nil, true) means matched and open.
func (p AccessPolicy) RequiredRoles(path string) ([]domain.Role, bool) {
	for _, rule := range p {
		if matchPattern(rule.Pattern, path) {
			return rule.Roles, true
		}
	}
	return nil, false
}

// Allows decides whether principal may pass the policy for path. Unmatched
// paths are permitted, matching the catch-all default.
func (p AccessPolicy) Allows(path string, principal *session.Principal) bool {
	roles, matched := p.RequiredRoles(path)
	if !matched || roles == nil {
		return true
	}
	if principal == nil {
		return false
	}
	return slices.Contains(roles, principal.Role)
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return strings.HasPrefix(path, prefix+"/") || path == prefix || prefix == ""
	}
	return pattern == path
}
