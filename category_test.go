package fintrack

import "testing"

func TestCanonicalCategory(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "Food", want: "food"},
		{in: "Food & Dining", want: "food"},
		{in: "FOODDINING", want: "food"},
		{in: "groceries", want: "food"},
		{in: " dining out ", want: "food"},
		{in: "Transport", want: "transportation"},
		{in: "Rent", want: "housing"},
		{in: "Bills / Utilities", want: "utilities"},
		{in: "Pet Supplies", want: "petsupplies"},
		{in: "", want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := CanonicalCategory(tc.in); got != tc.want {
				t.Errorf("CanonicalCategory(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSameCategory(t *testing.T) {
	testCases := []struct {
		a, b string
		want bool
	}{
		{a: "Food", b: "food & dining", want: true},
		{a: "Groceries", b: "FOOD", want: true},
		{a: "Food", b: "Transportation", want: false},
		{a: "Pet Supplies", b: "petsupplies", want: true},
		{a: "", b: "", want: true},
	}
	for _, tc := range testCases {
		if got := SameCategory(tc.a, tc.b); got != tc.want {
			t.Errorf("SameCategory(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
