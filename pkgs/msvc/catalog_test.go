package msvc

import (
	"reflect"
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		year string
		want bool
	}{
		{"2026", true},
		{"2022", true},
		{"2019", true},
		{"2017", false},
		{"2015", false},
		{"", false},
		{"17", false},
		{" 2022", true},
		{"2019\n", true},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := IsSupported(tt.year); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("2019")
	if !ok || v.Generator != "Visual Studio 16 2019" || v.Number != "16" {
		t.Fatalf("Lookup(2019) = %+v, %v", v, ok)
	}
	v, ok = LookupNumber("17")
	if !ok || v.Year != "2022" {
		t.Fatalf("LookupNumber(17) = %+v, %v", v, ok)
	}
	if _, ok := LookupNumber("15"); ok {
		t.Fatal("LookupNumber(15) should fail")
	}
}

func TestCatalogNewestFirst(t *testing.T) {
	if got, want := Years(), []string{"2026", "2022", "2019"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Years() = %v, want %v", got, want)
	}
	vs := Versions()
	vs[0].Generator = "mutated"
	if Versions()[0].Generator == "mutated" {
		t.Fatal("Versions() exposes the catalog")
	}
	if !IsSupported(DefaultYear) {
		t.Fatalf("DefaultYear %q is not in the catalog", DefaultYear)
	}
}
