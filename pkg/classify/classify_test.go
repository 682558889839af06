package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		summary  string
		expected Class
	}{
		{
			"Türkiye Cumhuriyeti Hükümeti ile Katar Devleti Hükümeti Arasında Anlaşmanın Onaylanmasının Uygun Bulunduğuna Dair Kanun Teklifi",
			Procedural,
		},
		{
			"Ekonomik İşbirliği Anlaşmasının Onaylanması Hakkında",
			Procedural,
		},
		{
			"İkili Hava Ulaştırma Mutabakat Zaptı",
			Procedural,
		},
		{
			"Bazı Kanunlarda Değişiklik Yapılmasına Dair Kanun Teklifi",
			Omnibus,
		},
		{
			"Çeşitli Kanunlarda Değişiklik Öngören Teklif",
			Omnibus,
		},
		{
			"Asgari Ücretin Vergi Dışı Bırakılması Hakkında Kanun Teklifi",
			Substantive,
		},
		{"", Substantive},
	}

	for _, tc := range tests {
		if result := Classify(tc.summary); result != tc.expected {
			t.Errorf("Classify(%q): expected %v, got %v", tc.summary, tc.expected, result)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if Classify("bazı kanunlarda değişiklik yapılması") != Omnibus {
		t.Error("lower-cased omnibus phrase must classify as omnibus")
	}
	if Classify("protokolün onaylanması hakkında") != Procedural {
		t.Error("lower-cased procedural phrase must classify as procedural")
	}
}

func TestClassifyProceduralPrecedesOmnibus(t *testing.T) {
	// A summary matching both keyword sets is procedural.
	summary := "Anlaşmanın Onaylanması ve Bazı Kanunlarda Değişiklik Yapılmasına Dair"
	if result := Classify(summary); result != Procedural {
		t.Errorf("expected Procedural to win over Omnibus, got %v", result)
	}
}

func TestClassifyExclusive(t *testing.T) {
	// Exactly one class for any input, and String is total.
	summaries := []string{
		"Mutabakat Zaptı", "Bazı Kanunlarda Değişiklik", "x", "",
	}
	for _, s := range summaries {
		c := Classify(s)
		if c != Procedural && c != Omnibus && c != Substantive {
			t.Errorf("Classify(%q) returned unknown class %d", s, c)
		}
		if c.String() == "" {
			t.Errorf("Classify(%q).String() empty", s)
		}
	}
}
