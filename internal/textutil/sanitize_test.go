package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"Final Fantasy VII (Disc 1)": "Final Fantasy VII (Disc 1)",
		"  Metal Gear: Solid  ":      "Metal Gear- Solid",
		`What?\Why*`:                 "What-Why-",
		"Tab\tand  spaces":           "Tab and spaces",
		"Ends with dots...":          "Ends with dots",
		"<>|\"":                      "",
	}
	for input, want := range cases {
		if got := SanitizeFileName(input); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", input, got, want)
		}
	}
}
