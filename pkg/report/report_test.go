package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/meclisdata/vekil/pkg/roster"
	"github.com/meclisdata/vekil/pkg/store"
)

func sampleRecords() []store.LegislatorRecord {
	return []store.LegislatorRecord{
		{ID: "OZGUR OZEL", Name: "Özgür ÖZEL", Party: "CHP", Score: 120.5, Label: "High", Explanation: "Muhalefet vekili, 30 soru ve 5 araştırma önergesi ağırlıklı puanlandı."},
		{ID: "MUSTAFA ARSLAN", Name: "Mustafa ARSLAN", Party: "AKP", Score: 65.0, Label: "Medium"},
		{ID: "ELIF ESEN", Name: "Elif ESEN", Party: "CHP", Score: 0, Label: "Ghost"},
	}
}

func TestRenderRankingTopN(t *testing.T) {
	out := RenderRanking(sampleRecords(), 2)

	if !strings.Contains(out, "Özgür ÖZEL") || !strings.Contains(out, "Mustafa ARSLAN") {
		t.Errorf("top two missing from ranking:\n%s", out)
	}
	if strings.Contains(out, "Elif ESEN") {
		t.Errorf("third row must be cut at n=2:\n%s", out)
	}
	if !strings.Contains(out, "120.5") {
		t.Errorf("score missing from ranking:\n%s", out)
	}
}

func TestRenderRankingAll(t *testing.T) {
	out := RenderRanking(sampleRecords(), 0)
	for _, name := range []string{"Özgür ÖZEL", "Mustafa ARSLAN", "Elif ESEN"} {
		if !strings.Contains(out, name) {
			t.Errorf("%s missing from full ranking:\n%s", name, out)
		}
	}
}

func TestRenderRankingDisplayNameFallback(t *testing.T) {
	records := []store.LegislatorRecord{{ID: "AHMET KAYA", Score: 10, Label: "Low"}}
	out := RenderRanking(records, 0)
	if !strings.Contains(out, "Ahmet Kaya") {
		t.Errorf("expected titled fallback name:\n%s", out)
	}
}

func TestRenderUnmatched(t *testing.T) {
	rep := &roster.Report{
		Unmatched: map[string]int{"HAYALI VEKIL": 3},
		Ambiguities: []roster.Ambiguity{
			{Key: "A ARSLAN", Candidates: []string{"MUSTAFA ARSLAN", "ZEYNEP ARSLAN"}},
		},
	}

	out := RenderUnmatched(rep)
	if !strings.Contains(out, "HAYALI VEKIL") || !strings.Contains(out, "3 kez") {
		t.Errorf("unmatched entry missing:\n%s", out)
	}
	if !strings.Contains(out, "A ARSLAN") || !strings.Contains(out, "MUSTAFA ARSLAN, ZEYNEP ARSLAN") {
		t.Errorf("ambiguity entry missing:\n%s", out)
	}
}

func TestRenderUnmatchedEmpty(t *testing.T) {
	out := RenderUnmatched(&roster.Report{Unmatched: map[string]int{}})
	if !strings.Contains(out, "Eşleşmeyen isim yok") {
		t.Errorf("expected empty-report message:\n%s", out)
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puanlar.xlsx")
	rep := &roster.Report{Unmatched: map[string]int{"HAYALI VEKIL": 2}}

	if err := WriteXLSX(path, sampleRecords(), rep); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	name, err := f.GetCellValue("Puanlar", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Özgür ÖZEL" {
		t.Errorf("expected top scorer in first data row, got %q", name)
	}

	unmatched, err := f.GetCellValue("Eşleşmeyenler", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if unmatched != "HAYALI VEKIL" {
		t.Errorf("expected unmatched name, got %q", unmatched)
	}
}
