package theme

import "testing"

func TestByName(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %q", got.Name)
	}
	if got := ByName("nope"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(nope) = %q, want default %q", got.Name, FlexokiDark.Name)
	}
}

func TestSetActive(t *testing.T) {
	orig := Active
	defer func() { Active = orig }()

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q, want terminal", Active.Name)
	}
	if len(Names()) != len(All) {
		t.Errorf("Names() = %v", Names())
	}
}
