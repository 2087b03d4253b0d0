package infra

// pdf.go — receipt ("fiş") generation using go-pdf/fpdf.
// Thermal receipt-style layout: header, payment number and timestamp, item
// table, bold total, payment method line. Output goes to
// storagePath/fis_{odeme_no}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ovtnc/Pos-System/internal/model"

	"github.com/go-pdf/fpdf"
)

var odemeTipiEtiket = map[string]string{
	"nakit":   "Nakit",
	"kart":    "Kart",
	"mudavim": "Müdavim",
}

// GenerateFisPDF renders a receipt for a recorded payment. The payment must
// carry its order with lines preloaded. Returns the path of the written file.
func GenerateFisPDF(o *model.Odeme, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("fis_%s.pdf", o.OdemeNo)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "KafePOS", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Satis Fisi", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Fis No: %s", o.OdemeNo), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, o.OdemeTarihi.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // line total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Urun", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Adet", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Tutar", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	if o.Siparis != nil {
		for _, d := range o.Siparis.Detaylar {
			ad := d.UrunAdi
			if len(ad) > 22 {
				ad = ad[:21] + "…"
			}
			pdf.CellFormat(col1, 5, ad, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", d.Adet), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, d.ToplamFiyat.StringFixed(2)+" TL", "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOPLAM:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, o.Tutar.StringFixed(2)+" TL", "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	etiket := odemeTipiEtiket[o.OdemeTipi]
	if etiket == "" {
		etiket = o.OdemeTipi
	}
	pdf.CellFormat(col1+col2, 4, "Odeme ("+etiket+"):", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 4, o.Tutar.StringFixed(2)+" TL", "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Tesekkur ederiz!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
