package domain

import "testing"

func TestServiceClassValid(t *testing.T) {
	for _, c := range []ServiceClass{ClassBLS, ClassALS, ClassMortuary, ClassAny} {
		if !c.Valid() {
			t.Fatalf("%s should be valid", c)
		}
	}
	if ServiceClass("ICU").Valid() {
		t.Fatal("unknown class should be invalid")
	}
	if ServiceClass("").Valid() {
		t.Fatal("empty class should be invalid")
	}
}

func TestVehicleMatches(t *testing.T) {
	bls := Vehicle{Class: ClassBLS}
	als := Vehicle{Class: ClassALS}
	mort := Vehicle{Class: ClassMortuary}

	if !bls.Matches(ClassBLS) || bls.Matches(ClassALS) {
		t.Fatal("exact class match broken for BLS")
	}
	if !bls.Matches(ClassAny) || !als.Matches(ClassAny) {
		t.Fatal("Any should match both emergency classes")
	}
	if mort.Matches(ClassAny) {
		t.Fatal("Any must not match mortuary vans")
	}
	if !mort.Matches(ClassMortuary) {
		t.Fatal("mortuary vans must match Mortuary requests")
	}
}
