package address

import "testing"

func TestNormalizeStateCode(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"PE", "PE", true},
		{"pe", "PE", true},
		{" sp ", "SP", true},
		{"Pernambuco", "PE", true},
		{"são paulo", "SP", true},
		{"Sao Paulo", "SP", true},
		{"Ceará", "CE", true},
		{"ceara", "CE", true},
		{"ZZ", "", false},
		{"Atlantis", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeStateCode(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("NormalizeStateCode(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
