package entities

import "testing"

func TestCanAccess(t *testing.T) {
	if !CanAccess(RoleAdmin, []Role{RoleCustomer, RoleAdmin}) {
		t.Fatal("admin should be allowed")
	}
	if CanAccess(RoleTradesperson, []Role{RoleCustomer, RoleAdmin}) {
		t.Fatal("tradesperson should not be allowed")
	}
	if CanAccess(RoleCustomer, nil) {
		t.Fatal("empty allowed set should deny everyone")
	}
}

func TestIsProvider(t *testing.T) {
	for _, r := range []Role{RoleTradesperson, RoleBusinessOwner, RoleManager} {
		if !IsProvider(r) {
			t.Fatalf("expected %s to be a provider", r)
		}
	}
	for _, r := range []Role{RoleCustomer, RoleAdmin, Role("")} {
		if IsProvider(r) {
			t.Fatalf("expected %s to not be a provider", r)
		}
	}
}

func TestTierOrder(t *testing.T) {
	if !(TierOrder(TierBasic) < TierOrder(TierPro) && TierOrder(TierPro) < TierOrder(TierBusiness)) {
		t.Fatal("tier ordering broken")
	}
	if TierOrder(SubscriptionTier("platinum")) >= TierOrder(TierBasic) {
		t.Fatal("unknown tier must rank below basic")
	}
}
