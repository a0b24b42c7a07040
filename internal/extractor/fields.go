package extractor

import (
	"regexp"

	"github.com/semreerol/Receipt-Scanner/internal/models"
	"github.com/semreerol/Receipt-Scanner/internal/textutils"
)

// Fixed pattern sets, compiled once at process start and shared read-only.
// Each list is ordered: the first matching pattern wins.
var (
	// Labeled "TARİH: dd-mm-yyyy" first, then a bare date standing alone on
	// its own line. Separators: space, hyphen or slash.
	datePatterns = textutils.MustCompileAll(
		`TAR[İI]H\s*[:]?\s*(\d{2}[ -/]\d{2}[ -/]\d{4})`,
		`^\s*(\d{2}[ -/]\d{2}[ -/]\d{4})\s*$`,
	)

	receiptNoPatterns = textutils.MustCompileAll(`F[İI]S NO:\s*(\S+)`)

	// Food receipts number either as a fiş or as an adisyon (table tab).
	orderNoPatterns = textutils.MustCompileAll(
		`F[İI]S NO:\s*(\S+)`,
		`AD[İI]SYON NO:\s*(\S+)`,
	)

	// Turkish license plate: province code, letters, digits.
	platePatterns = textutils.MustCompileAll(`(\d{2}\s?[A-Z]{1,3}\s?\d{2,4})`)

	// Pump volume like "25,410 LT" (OCR often reads LT as IT).
	fuelVolumePatterns = textutils.MustCompileAll(`(\d+,\d{3})\s*(?:IT|LT)`)

	// Totals tolerate a line break after the label and a leading * marker.
	taxTotalPatterns   = textutils.MustCompileAll(`TOPKDV\s*[\n\r]*\*?([\d.,]+)`)
	grandTotalPatterns = textutils.MustCompileAll(`TOPLAM\s*[\n\r]*\*?([\d.,]+)`)

	foodTaxTotalPatterns = textutils.MustCompileAll(
		`TOPKDV\s*[\n\r]*\*?([\d.,]+)`,
		`ARA TOPLAM\s*[\n\r]*\*?([\d.,]+)`,
	)

	bankPatterns = textutils.MustCompileAll(
		`(İ?S\s*BANKASI)`,
		`(GARANTİ)`,
		`(YAPI\s*KREDİ)`,
		`(AKBANK)`,
	)
)

func find(text string, patterns []*regexp.Regexp) string {
	value, _ := textutils.FindPattern(text, patterns)
	return value
}

// extractFuel builds the structured record for a fuel station receipt.
func extractFuel(doc models.RecognizedDocument) *models.ReceiptRecord {
	rec := &models.ReceiptRecord{}
	rec.Set(models.FieldCategory, models.LabelFuelReceipt)
	rec.Set(models.FieldCompanyName, companyNameOrEmpty(doc.Text))
	rec.Set(models.FieldDate, find(doc.Text, datePatterns))
	rec.Set("FişNo", find(doc.Text, receiptNoPatterns))
	rec.Set("Plaka", find(doc.Text, platePatterns))
	rec.Set("Alınan Yakıt Miktarı", find(doc.Text, fuelVolumePatterns))
	rec.Set(models.FieldTaxTotal, find(doc.Text, taxTotalPatterns))
	rec.Set(models.FieldGrandTotal, find(doc.Text, grandTotalPatterns))
	rec.Set("Banka Adı", find(doc.Text, bankPatterns))
	return rec
}

// extractMarket builds the structured record for a grocery receipt,
// including the purchased item listing.
func extractMarket(doc models.RecognizedDocument) *models.ReceiptRecord {
	rec := &models.ReceiptRecord{}
	rec.Set(models.FieldCategory, models.LabelMarketReceipt)
	rec.Set(models.FieldMarketName, companyNameOrEmpty(doc.Text))
	rec.Set(models.FieldDate, find(doc.Text, datePatterns))
	rec.Set("Alınan Ürünler", FormatLineItems(LineItems(doc.Lines)))
	rec.Set(models.FieldTaxTotal, find(doc.Text, taxTotalPatterns))
	rec.Set(models.FieldGrandTotal, find(doc.Text, grandTotalPatterns))
	rec.Set("Banka Adı", find(doc.Text, bankPatterns))
	return rec
}

// extractFood builds the structured record for a restaurant receipt.
func extractFood(doc models.RecognizedDocument) *models.ReceiptRecord {
	rec := &models.ReceiptRecord{}
	rec.Set(models.FieldCategory, models.LabelFoodReceipt)
	rec.Set(models.FieldRestaurant, companyNameOrEmpty(doc.Text))
	rec.Set(models.FieldDate, find(doc.Text, datePatterns))
	rec.Set("Fiş Numarası", find(doc.Text, orderNoPatterns))
	rec.Set("Sipariş Kalemleri", FormatLineItems(LineItems(doc.Lines)))
	rec.Set(models.FieldTaxTotal, find(doc.Text, foodTaxTotalPatterns))
	rec.Set(models.FieldGrandTotal, find(doc.Text, grandTotalPatterns))
	rec.Set("Banka İsmi", find(doc.Text, bankPatterns))
	return rec
}

func companyNameOrEmpty(text string) string {
	name, ok := CompanyName(text)
	if !ok {
		return ""
	}
	return name
}
