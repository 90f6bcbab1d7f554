package validation

import "testing"

func TestNormalizeMobile(t *testing.T) {
	cases := map[string]string{
		"9876543210":    "9876543210",
		"98765 43210":   "9876543210",
		"+91-98765432":  "9198765432",
		"(987) 654-321": "987654321",
		"":              "",
	}
	for in, want := range cases {
		if got := NormalizeMobile(in); got != want {
			t.Errorf("NormalizeMobile(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateMobiles(t *testing.T) {
	t.Run("valid primary", func(t *testing.T) {
		m1, m2, err := ValidateMobiles("9876543210", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m1 != "9876543210" || m2 != "" {
			t.Errorf("got %q/%q", m1, m2)
		}
	})

	t.Run("valid secondary only", func(t *testing.T) {
		_, m2, err := ValidateMobiles("", "9123456780")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m2 != "9123456780" {
			t.Errorf("got %q", m2)
		}
	})

	t.Run("too short", func(t *testing.T) {
		if _, _, err := ValidateMobiles("98765", ""); err == nil {
			t.Error("expected failure for short number")
		}
	})

	t.Run("both empty", func(t *testing.T) {
		if _, _, err := ValidateMobiles("", ""); err == nil {
			t.Error("expected failure when no number given")
		}
	})

	t.Run("both present both invalid", func(t *testing.T) {
		if _, _, err := ValidateMobiles("123", "456789"); err == nil {
			t.Error("expected failure, not a silently dropped number")
		}
	})

	t.Run("valid primary invalid secondary", func(t *testing.T) {
		// A typo in the second number is rejected, not dropped.
		if _, _, err := ValidateMobiles("9876543210", "12345"); err == nil {
			t.Error("expected failure for invalid secondary")
		}
	})

	t.Run("formatting stripped", func(t *testing.T) {
		m1, _, err := ValidateMobiles("98765 43210", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m1 != "9876543210" {
			t.Errorf("got %q", m1)
		}
	})
}
