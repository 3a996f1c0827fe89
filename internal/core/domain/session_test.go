package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	for raw, want := range map[string]Role{"brand": RoleBrand, " Creator ": RoleCreator} {
		got, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseRole("admin"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestRolePaths(t *testing.T) {
	if got := RoleBrand.DashboardPath(); got != "/brand/dashboard" {
		t.Fatalf("brand dashboard path = %q", got)
	}
	if got := RoleCreator.AuthPath(); got != "/auth?type=creator" {
		t.Fatalf("creator auth path = %q", got)
	}
}

func TestNewSessionRejectsForeignProfile(t *testing.T) {
	profile := Profile{ID: uuid.New(), Role: RoleBrand}
	if _, err := NewSession(uuid.New(), "a@b.c", "tok", profile); err == nil {
		t.Fatalf("expected error for mismatched profile")
	}
}

func TestSessionRequireRoleRedirectsToOwnDashboard(t *testing.T) {
	id := uuid.New()
	sess, err := NewSession(id, "c@x.in", "tok", Profile{ID: id, Role: RoleCreator})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err = sess.RequireRole(RoleCreator); err != nil {
		t.Fatalf("creator should pass creator guard: %v", err)
	}
	err = sess.RequireRole(RoleBrand)
	authErr, ok := err.(*AuthError)
	if !ok {
		t.Fatalf("expected *AuthError, got %T", err)
	}
	if authErr.Redirect != "/creator/dashboard" {
		t.Fatalf("redirect = %q", authErr.Redirect)
	}
}
