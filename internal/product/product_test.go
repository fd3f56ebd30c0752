package product

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Beef Steak", "beef-steak"},
		{"Dried Fruit & Nuts", "dried-fruit-nuts"},
		{"6 ways to prepare breakfast for 30", "6-ways-to-prepare-breakfast-for-30"},
		{"  spaced  out  ", "spaced-out"},
		{"Ocean Foods", "ocean-foods"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
