package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/semreerol/Receipt-Scanner/internal/models"
)

// NoItemsFound is returned when the body region yielded no line items.
const NoItemsFound = "Ürün listesi çıkarılamadı."

// startKeywords mark the end of the receipt header. The first line containing
// one of them is the header boundary itself and is never parsed as an item.
var startKeywords = []string{"TARİH", "SAAT", "FİŞ NO", "ÜRÜN ADI", "AÇIKLAMA", "ADİSYON"}

// summaryKeywords mark the start of the totals/payment footer. Scanning stops
// permanently at the first of them, even if item-like lines follow.
var summaryKeywords = []string{
	"TOPLAM", "TOPKDV", "ARA TOPLAM", "NAKİT",
	"KREDİ KARTI", "BANKA", "ÖDEME", "FİŞ TOPLAMI",
	"MALİ BİLGİLER",
}

var (
	// description, then a trailing amount optionally preceded by a * or F marker
	itemLinePattern = regexp.MustCompile(`(.+?)\s+[*F]?\s*([\d,.]+)$`)
	// "2 x " style quantity prefix in front of the description
	qtyPrefixPattern = regexp.MustCompile(`^\d+\s*[xX]\s*`)
)

// LineItems scans the receipt body for (description, price) pairs. The body
// starts after the first line containing a start keyword and ends before the
// first line containing a summary keyword. Tax and discount adjustment lines
// that happen to look like items are discarded.
func LineItems(lines []string) []models.LineItem {
	var items []models.LineItem
	inBody := false

	for _, line := range lines {
		upper := strings.ToUpper(strings.TrimSpace(line))

		if !inBody {
			if containsAny(upper, startKeywords) {
				inBody = true
			}
			continue
		}

		if containsAny(upper, summaryKeywords) {
			break
		}

		match := itemLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}

		description := strings.TrimSpace(match[1])
		price := strings.TrimSpace(match[2])
		description = qtyPrefixPattern.ReplaceAllString(description, "")

		if !isLineItemDescription(description) {
			continue
		}
		items = append(items, models.LineItem{Description: description, Price: price})
	}

	return items
}

// FormatLineItems joins items as a display listing in encounter order, or
// returns the empty-listing sentinel.
func FormatLineItems(items []models.LineItem) string {
	if len(items) == 0 {
		return NoItemsFound
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Description+" | Fiyat: "+item.Price)
	}
	return strings.Join(lines, "\n")
}

// isLineItemDescription filters out fragments and summary/adjustment rows
// ("KDV" tax lines, "İNDİRİM" discount lines) that match the item shape but
// are not purchasable goods.
func isLineItemDescription(description string) bool {
	if utf8.RuneCountInString(description) <= 2 {
		return false
	}
	upper := strings.ToUpper(description)
	return !strings.Contains(upper, "KDV") && !strings.Contains(upper, "İNDİRİM")
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
