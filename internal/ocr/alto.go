package ocr

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/xmlpath.v2"
)

// Tesseract's ALTO output nests word-level String elements inside TextLine
// elements, which preserves the top-to-bottom reading order the extractors
// depend on.
var (
	textLinePath = xmlpath.MustCompile("//TextLine")
	wordPath     = xmlpath.MustCompile("String/@CONTENT")
)

// ParseALTO converts an ALTO XML document into text lines in reading order.
// Lines without recognized words are dropped.
func ParseALTO(r io.Reader) ([]string, error) {
	root, err := xmlpath.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ALTO output: %w", err)
	}

	var lines []string
	iter := textLinePath.Iter(root)
	for iter.Next() {
		var words []string
		wordIter := wordPath.Iter(iter.Node())
		for wordIter.Next() {
			words = append(words, wordIter.Node().String())
		}
		if len(words) > 0 {
			lines = append(lines, strings.Join(words, " "))
		}
	}

	return lines, nil
}
