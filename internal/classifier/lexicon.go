package classifier

import (
	"github.com/semreerol/Receipt-Scanner/internal/models"
)

// Keyword pairs a lexicon entry with its score weight. Keywords are defined
// uppercase; matching is a case-insensitive containment check.
type Keyword struct {
	Word   string `yaml:"word"`
	Weight int    `yaml:"weight"`
}

// Lexicon maps each scored category to its weighted keywords. It is built once
// at process start and shared read-only between requests.
type Lexicon map[models.Category][]Keyword

// DefaultLexicon returns the built-in Turkish receipt rule set. Strong brand
// names carry weight 3, generic domain words 1-2.
func DefaultLexicon() Lexicon {
	return Lexicon{
		models.CategoryFuel: {
			{Word: "PETROL OFİSİ", Weight: 3},
			{Word: "OPET", Weight: 3},
			{Word: "SHELL", Weight: 3},
			{Word: "TOTAL", Weight: 3},
			{Word: "BP", Weight: 3},
			{Word: "AKARYAKIT", Weight: 3},
			{Word: "MOTORİN", Weight: 2},
			{Word: "BENZİN", Weight: 2},
			{Word: "LPG", Weight: 2},
			{Word: "POMPA", Weight: 1},
			{Word: "LİTRE", Weight: 1},
		},
		models.CategoryMarket: {
			{Word: "MİGROS", Weight: 3},
			{Word: "CARREFOUR", Weight: 3},
			{Word: "BİM", Weight: 3},
			{Word: "A101", Weight: 3},
			{Word: "ŞOK", Weight: 3},
			{Word: "MARKET", Weight: 1},
			{Word: "GIDA", Weight: 1},
			{Word: "SEBZE", Weight: 1},
			{Word: "MEYVE", Weight: 1},
			{Word: "KASİYER", Weight: 1},
			{Word: "TOPKDV", Weight: 1},
			{Word: "FİŞ NO", Weight: 1},
		},
		models.CategoryFood: {
			{Word: "RESTAURANT", Weight: 3},
			{Word: "CAFE", Weight: 3},
			{Word: "LOKANTA", Weight: 3},
			{Word: "ADİSYON", Weight: 2},
			{Word: "GARSON", Weight: 1},
			{Word: "YEMEK SEPETİ", Weight: 3},
			{Word: "GETİR YEMEK", Weight: 3},
			{Word: "KEBAP", Weight: 2},
			{Word: "BURGER", Weight: 2},
			{Word: "MENÜ", Weight: 1},
		},
	}
}
