package models

import "testing"

func TestRoleRank_Ordering(t *testing.T) {
	t.Parallel()

	if !(RoleRank(RoleClient) < RoleRank(RoleAdmin)) {
		t.Fatal("client must rank below admin")
	}
	if !(RoleRank(RoleAdmin) < RoleRank(RoleSuperAdmin)) {
		t.Fatal("admin must rank below super_admin")
	}
}

func TestRoleRank_Unknown(t *testing.T) {
	t.Parallel()

	for _, role := range []string{"", "root", "Admin", "CLIENT"} {
		if got := RoleRank(role); got != 0 {
			t.Errorf("RoleRank(%q) = %d, want 0", role, got)
		}
	}
}

func TestValidRole(t *testing.T) {
	t.Parallel()

	for _, role := range []string{RoleClient, RoleAdmin, RoleSuperAdmin} {
		if !ValidRole(role) {
			t.Errorf("expected %q to be valid", role)
		}
	}
	for _, role := range []string{"", "superadmin", "admin "} {
		if ValidRole(role) {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}
