package entities

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Leeds", "leeds"},
		{"Boiler Repair", "boiler-repair"},
		{"  Newcastle upon Tyne  ", "newcastle-upon-tyne"},
		{"End-of-Tenancy", "end-of-tenancy"},
		{"A/B_C", "a-b-c"},
		{"!!!", ""},
		{"", ""},
		{"Stoke-on-Trent ", "stoke-on-trent"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSpecialties(t *testing.T) {
	t.Run("filters to vocabulary for known type", func(t *testing.T) {
		got := NormalizeSpecialties("Plumbing", []string{"Boiler Repair", "welding", "Leak Repair"})
		want := []string{"boiler-repair", "leak-repair"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("unknown type keeps all slugified specialties", func(t *testing.T) {
		got := NormalizeSpecialties("chimney sweeping", []string{"Stack Cleaning", "Inspection"})
		want := []string{"stack-cleaning", "inspection"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("drops duplicates and empties", func(t *testing.T) {
		got := NormalizeSpecialties("plumbing", []string{"drainage", "Drainage", "", "  "})
		want := []string{"drainage"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("nil input yields empty slice", func(t *testing.T) {
		if got := NormalizeSpecialties("plumbing", nil); len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
	})
}
