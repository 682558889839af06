package turkish

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Özgür ÖZEL", "OZGUR OZEL"},
		{"OZGUR OZEL", "OZGUR OZEL"},
		{"özgür özel", "OZGUR OZEL"},
		{"  Mustafa   ARSLAN  ", "MUSTAFA ARSLAN"},
		{"Işıl ŞENTÜRK", "ISIL SENTURK"},
		{"İbrahim Çelik", "IBRAHIM CELIK"},
		{"ibrahim çelik", "IBRAHIM CELIK"},
		{"Gülşah Değer", "GULSAH DEGER"},
		{"", ""},
		{"   ", ""},
		{"tek", "TEK"},
	}

	for _, tc := range tests {
		result := NormalizeKey(tc.input)
		if result != tc.expected {
			t.Errorf("NormalizeKey(%q): expected %q, got %q", tc.input, tc.expected, result)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	inputs := []string{
		"Özgür ÖZEL",
		"  Şule  Işık  GÜNGÖR ",
		"numan kurtulmuş",
		"",
		"IıİiĞğÜüŞşÖöÇç",
	}

	for _, input := range inputs {
		once := NormalizeKey(input)
		twice := NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeKeyCollision(t *testing.T) {
	// Distinct display names collapsing to one key is accepted behavior.
	a := NormalizeKey("Ali ÖZTÜRK")
	b := NormalizeKey("ALİ ÖZTÜRK")
	if a != b {
		t.Errorf("expected collision, got %q and %q", a, b)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OZGUR OZEL", "Ozgur Ozel"},
		{"MUSTAFA ARSLAN", "Mustafa Arslan"},
		{"", ""},
	}

	for _, tc := range tests {
		result := DisplayName(tc.input)
		if result != tc.expected {
			t.Errorf("DisplayName(%q): expected %q, got %q", tc.input, tc.expected, result)
		}
	}
}
