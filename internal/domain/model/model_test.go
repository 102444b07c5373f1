package model

import (
	"testing"
	"time"
)

func TestRoleKindValues(t *testing.T) {
	cases := []struct {
		name  string
		got   RoleKind
		value string
	}{
		{"diner", RoleDiner, "diner"},
		{"franchisee", RoleFranchisee, "franchisee"},
		{"admin", RoleAdmin, "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			parsed, err := ParseRoleKind(tc.value)
			if err != nil || parsed != tc.got {
				t.Fatalf("parse %q: got %q err=%v", tc.value, parsed, err)
			}
		})
	}

	if _, err := ParseRoleKind("chef"); err == nil {
		t.Fatal("expected unknown role to be rejected")
	}
}

func TestUserRoleChecks(t *testing.T) {
	user := &User{ID: 1, Roles: []Role{{Kind: RoleDiner}, {Kind: RoleFranchisee, ObjectID: 7}}}

	if !user.HasRole(RoleDiner) || !user.HasRole(RoleFranchisee) {
		t.Fatal("expected held roles to be reported")
	}
	if user.HasRole(RoleAdmin) {
		t.Fatal("did not expect admin role")
	}
	if !user.HasScopedRole(RoleFranchisee, 7) {
		t.Fatal("expected scoped franchisee role for 7")
	}
	if user.HasScopedRole(RoleFranchisee, 8) {
		t.Fatal("did not expect scoped role for 8")
	}

	var nilUser *User
	if nilUser.HasRole(RoleDiner) || nilUser.HasScopedRole(RoleFranchisee, 7) {
		t.Fatal("nil user must hold no roles")
	}

	if (Role{Kind: RoleDiner}).Scoped() {
		t.Fatal("unscoped role reported as scoped")
	}
	if !(Role{Kind: RoleFranchisee, ObjectID: 3}).Scoped() {
		t.Fatal("scoped role reported as unscoped")
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	if (Session{}).Expired(now) {
		t.Fatal("session without expiry must never expire")
	}
	if !(Session{ExpiresAt: now}).Expired(now) {
		t.Fatal("session expiring now must be expired")
	}
	if (Session{ExpiresAt: now.Add(time.Minute)}).Expired(now) {
		t.Fatal("future expiry must be valid")
	}
}

func TestOrderTotal(t *testing.T) {
	order := Order{Items: []OrderItem{{Price: 0.0038}, {Price: 0.05}}}
	if got := order.Total(); got < 0.0537 || got > 0.0539 {
		t.Fatalf("unexpected total %f", got)
	}
}
