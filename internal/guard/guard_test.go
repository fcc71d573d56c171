package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courseportal/portal-cli/internal/portal"
	"github.com/courseportal/portal-cli/internal/sessions"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	authenticated := func(role portal.Role) sessions.Snapshot {
		return sessions.Snapshot{
			Token:     "t1",
			Claims:    &sessions.State{Subject: "u1", Role: role},
			Readiness: sessions.ReadinessIdentity,
		}
	}

	tests := []struct {
		name     string
		snapshot sessions.Snapshot
		allowed  []portal.Role
		want     Decision
	}{
		{
			"resolving without token shows loading",
			sessions.Snapshot{Readiness: sessions.ReadinessResolving},
			nil,
			DecisionLoading,
		},
		{
			"resolving with token still shows loading",
			sessions.Snapshot{Token: "t1", Readiness: sessions.ReadinessResolving},
			[]portal.Role{portal.RoleAdmin},
			DecisionLoading,
		},
		{
			"anonymous redirects to login",
			sessions.Snapshot{Readiness: sessions.ReadinessAnonymous},
			nil,
			DecisionRedirectLogin,
		},
		{
			"token without claims redirects to login",
			sessions.Snapshot{Token: "t1", Readiness: sessions.ReadinessAnonymous},
			nil,
			DecisionRedirectLogin,
		},
		{
			"authenticated with no restriction proceeds",
			authenticated(portal.RoleUser),
			nil,
			DecisionProceed,
		},
		{
			"standard user denied admin view via root redirect",
			authenticated(portal.RoleUser),
			[]portal.Role{portal.RoleAdmin},
			DecisionRedirectRoot,
		},
		{
			"admin allowed",
			authenticated(portal.RoleAdmin),
			[]portal.Role{portal.RoleAdmin},
			DecisionProceed,
		},
		{
			"instructor allowed in multi-role set",
			authenticated(portal.RoleInstructor),
			[]portal.Role{portal.RoleAdmin, portal.RoleInstructor},
			DecisionProceed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Check(tt.snapshot, tt.allowed...))
		})
	}
}
