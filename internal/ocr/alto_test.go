package ocr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const altoSample = `<?xml version="1.0" encoding="UTF-8"?>
<alto xmlns="http://www.loc.gov/standards/alto/ns-v3#">
  <Layout>
    <Page WIDTH="800" HEIGHT="1200">
      <PrintSpace>
        <TextBlock ID="block_1">
          <TextLine ID="line_1">
            <String CONTENT="MİGROS" WC="0.96"/>
            <SP WIDTH="10"/>
            <String CONTENT="TİCARET" WC="0.93"/>
          </TextLine>
          <TextLine ID="line_2">
            <String CONTENT="01-02-2024" WC="0.91"/>
          </TextLine>
          <TextLine ID="line_3">
          </TextLine>
          <TextLine ID="line_4">
            <String CONTENT="TOPLAM" WC="0.95"/>
            <String CONTENT="*12,00" WC="0.88"/>
          </TextLine>
        </TextBlock>
      </PrintSpace>
    </Page>
  </Layout>
</alto>`

func TestParseALTO(t *testing.T) {
	lines, err := ParseALTO(strings.NewReader(altoSample))
	require.NoError(t, err)

	// line_3 has no recognized words and is dropped
	assert.Equal(t, []string{
		"MİGROS TİCARET",
		"01-02-2024",
		"TOPLAM *12,00",
	}, lines)
}

func TestParseALTOEmptyDocument(t *testing.T) {
	lines, err := ParseALTO(strings.NewReader(`<?xml version="1.0"?><alto></alto>`))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseALTOInvalidXML(t *testing.T) {
	_, err := ParseALTO(strings.NewReader("not xml at all <"))
	assert.Error(t, err)
}
