// Package report renders scoring results as text rankings and Excel
// workbooks.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/meclisdata/vekil/pkg/roster"
	"github.com/meclisdata/vekil/pkg/store"
	"github.com/meclisdata/vekil/pkg/turkish"
)

// RenderRanking renders the top n legislators as a plain-text table.
// Records are expected pre-sorted by score descending; n <= 0 means all.
func RenderRanking(records []store.LegislatorRecord, n int) string {
	if n <= 0 || n > len(records) {
		n = len(records)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-30s %-10s %-8s %-8s %s\n", "#", "Vekil", "Parti", "Puan", "Etiket", "Açıklama")
	for i, rec := range records[:n] {
		name := rec.Name
		if name == "" {
			name = turkish.DisplayName(rec.ID)
		}
		fmt.Fprintf(&b, "%-4d %-30s %-10s %-8.1f %-8s %s\n", i+1, name, rec.Party, rec.Score, rec.Label, rec.Explanation)
	}
	return b.String()
}

// RenderUnmatched renders the matcher report: names that resolved to no
// roster entry and names that resolved to several.
func RenderUnmatched(rep *roster.Report) string {
	var b strings.Builder

	if len(rep.Unmatched) == 0 && len(rep.Ambiguities) == 0 {
		b.WriteString("Eşleşmeyen isim yok.\n")
		return b.String()
	}

	if len(rep.Unmatched) > 0 {
		fmt.Fprintf(&b, "Eşleşmeyen isimler (%d):\n", len(rep.Unmatched))
		for _, key := range sortedKeys(rep.Unmatched) {
			fmt.Fprintf(&b, "  %-30s %d kez\n", key, rep.Unmatched[key])
		}
	}

	if len(rep.Ambiguities) > 0 {
		fmt.Fprintf(&b, "Belirsiz isimler (%d):\n", len(rep.Ambiguities))
		for _, amb := range rep.Ambiguities {
			fmt.Fprintf(&b, "  %-30s adaylar: %s\n", amb.Key, strings.Join(amb.Candidates, ", "))
		}
	}
	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var scoreHeaders = []string{
	"Vekil", "Parti", "Şehir", "Strateji", "Puan", "Etiket",
	"İlk İmza", "Destek İmza", "Soru", "Araştırma", "Komisyon Puanı",
	"Elenen (Uluslararası)", "Torba Yasa", "Haber Etkisi", "Açıklama",
}

// WriteXLSX writes the full result set and the unmatched-name report to
// an Excel workbook with a Puanlar and an Eşleşmeyenler sheet.
func WriteXLSX(path string, records []store.LegislatorRecord, rep *roster.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	const scoreSheet = "Puanlar"
	if err := f.SetSheetName("Sheet1", scoreSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, header := range scoreHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(scoreSheet, cell, header); err != nil {
			return err
		}
	}

	for row, rec := range records {
		values := []interface{}{
			rec.Name, rec.Party, rec.City, rec.Strategy, rec.Score, rec.Label,
			rec.FirstSignature, rec.SupportSignature, rec.QuestionCount,
			rec.ResearchCount, rec.CommissionBonus, rec.TreatyFiltered,
			rec.OmnibusCount, rec.NewsImpact, rec.Explanation,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(scoreSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const unmatchedSheet = "Eşleşmeyenler"
	if _, err := f.NewSheet(unmatchedSheet); err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}
	if err := f.SetCellValue(unmatchedSheet, "A1", "İsim"); err != nil {
		return err
	}
	if err := f.SetCellValue(unmatchedSheet, "B1", "Görülme"); err != nil {
		return err
	}
	if err := f.SetCellValue(unmatchedSheet, "C1", "Adaylar"); err != nil {
		return err
	}

	row := 2
	for _, key := range sortedKeys(rep.Unmatched) {
		f.SetCellValue(unmatchedSheet, fmt.Sprintf("A%d", row), key)
		f.SetCellValue(unmatchedSheet, fmt.Sprintf("B%d", row), rep.Unmatched[key])
		row++
	}
	for _, amb := range rep.Ambiguities {
		f.SetCellValue(unmatchedSheet, fmt.Sprintf("A%d", row), amb.Key)
		f.SetCellValue(unmatchedSheet, fmt.Sprintf("C%d", row), strings.Join(amb.Candidates, ", "))
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}
	return nil
}
