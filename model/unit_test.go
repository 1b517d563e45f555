package model

import (
	"math"
	"testing"
)

func TestUnitValidate(t *testing.T) {
	u := &Unit{ID: 1, Owner: "red", Domain: DomainLand, MovePoints: 3, MaxMovePoints: 3}
	if err := u.Validate(); err != nil {
		t.Errorf("valid unit rejected: %v", err)
	}
}

func TestUnitValidateRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name string
		unit *Unit
	}{
		{"nil unit", nil},
		{"unknown domain", &Unit{Domain: MovementDomain(42), MovePoints: 1}},
		{"negative move points", &Unit{Domain: DomainLand, MovePoints: -1}},
		{"NaN move points", &Unit{Domain: DomainLand, MovePoints: math.NaN()}},
		{"negative max", &Unit{Domain: DomainLand, MovePoints: 1, MaxMovePoints: -2}},
	}
	for _, tc := range tests {
		if err := tc.unit.Validate(); err == nil {
			t.Errorf("%s: Validate() should fail", tc.name)
		}
	}
}

func TestUnitCanCross(t *testing.T) {
	u := &Unit{Domain: DomainLand, Crossable: []TerrainType{Water}}
	if !u.CanCross(Water) {
		t.Error("unit with water in crossable set should cross water")
	}
	if u.CanCross(Mountain) {
		t.Error("unit should not cross terrain outside its crossable set")
	}
}
