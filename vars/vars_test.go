package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "Yes", "y", "on", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "F", "No", "n", "off", "0", ""} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero("", "", "foo", "bar"); v != "foo" {
		t.Fatalf("got %q", v)
	}
	if v := FirstNonZero(0, 0); v != 0 {
		t.Fatalf("got %v", v)
	}
}
