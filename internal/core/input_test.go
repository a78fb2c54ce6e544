package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionFire) || !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
	if ActionFire.String() != "Fire" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action.String() output")
	}
}
