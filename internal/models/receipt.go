// Package models defines the data types shared by the classifier, the field
// extractors and the front-ends.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Category is the receipt type assigned by the classifier.
type Category string

const (
	CategoryFuel   Category = "BENZİN"
	CategoryMarket Category = "MARKET"
	CategoryFood   Category = "YEMEK"
	CategoryOther  Category = "DİĞER"
)

// ScoredCategories lists the categories the classifier scores, in their fixed
// evaluation order. On equal scores the earlier entry wins, so this order is
// part of the classification contract.
var ScoredCategories = []Category{CategoryFuel, CategoryMarket, CategoryFood}

// NotFound is the display value substituted for any field whose extraction
// yielded no value. Final records never carry empty values.
const NotFound = "Bulunamadı"

// Display labels for the Kategori field of a record.
const (
	LabelFuelReceipt   = "Benzin Fişi"
	LabelMarketReceipt = "Market Fişi"
	LabelFoodReceipt   = "Yemek Fişi"
)

// Common record field names.
const (
	FieldCategory    = "Kategori"
	FieldRawText     = "Ham Metin"
	FieldDate        = "Tarih"
	FieldTaxTotal    = "Toplam KDV"
	FieldGrandTotal  = "Toplam Tutar"
	FieldCompanyName = "Firma Adı"
	FieldMarketName  = "Market Adı"
	FieldRestaurant  = "Restoran İsmi"
)

// RecognizedDocument is one page of OCR output: the raw rendered text plus its
// lines in top-to-bottom reading order. It is immutable for the duration of a
// pipeline invocation.
type RecognizedDocument struct {
	Text  string
	Lines []string
}

// NewRecognizedDocument splits the recognized text of one page into lines.
func NewRecognizedDocument(text string) RecognizedDocument {
	return RecognizedDocument{
		Text:  text,
		Lines: strings.Split(strings.TrimSpace(text), "\n"),
	}
}

// LineItem is a single purchased product entry. The price is kept as text:
// receipts mix comma and dot separators and the source text is authoritative.
type LineItem struct {
	Description string
	Price       string
}

// ReceiptField is one named value of a receipt record.
type ReceiptField struct {
	Key   string
	Value string
}

// ReceiptRecord is an ordered mapping from field name to extracted value.
// Field order is the order of insertion and is preserved through JSON
// serialization. Records are built once per document and not mutated after
// FillMissing.
type ReceiptRecord struct {
	fields []ReceiptField
}

// Set appends a field, overwriting the value if the key is already present.
func (r *ReceiptRecord) Set(key, value string) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, ReceiptField{Key: key, Value: value})
}

// Get returns the value for key and whether the key exists.
func (r *ReceiptRecord) Get(key string) (string, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the record's fields in insertion order.
func (r *ReceiptRecord) Fields() []ReceiptField {
	return r.fields
}

// FillMissing replaces every empty value with the given sentinel. The pipeline
// calls this exactly once, at the boundary, before handing the record to a
// front-end.
func (r *ReceiptRecord) FillMissing(sentinel string) {
	for i := range r.fields {
		if r.fields[i].Value == "" {
			r.fields[i].Value = sentinel
		}
	}
}

// MarshalJSON serializes the record as a JSON object whose keys appear in
// insertion order.
func (r ReceiptRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
