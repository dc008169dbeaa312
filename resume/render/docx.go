package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Style IDs used inside the OOXML package for the registry's style names.
var docxStyleIDs = map[string]string{
	StyleHeading:    "CvHeading",
	StyleSubheading: "CvSubheading",
	StyleBody:       "CvBody",
	StyleBullet:     "CvBullet",
}

// Serialize lowers a document tree into DOCX package bytes. The mapping is
// deterministic: identical trees produce identical bytes (zip entry
// timestamps are pinned, parts are written in fixed order).
func Serialize(doc *Document, reg *Registry) ([]byte, error) {
	documentXML, err := buildDocumentXML(doc)
	if err != nil {
		return nil, err
	}
	stylesXML, err := buildStylesXML(reg)
	if err != nil {
		return nil, err
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	for _, part := range parts {
		header := &zip.FileHeader{Name: part.name, Method: zip.Deflate}
		dst, err := writer.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", part.name, err)
		}
		if _, err := dst.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close docx package: %w", err)
	}

	return output.Bytes(), nil
}

// WriteFile serializes the tree and writes it atomically: the bytes go to a
// temporary file in the destination directory which is renamed into place
// only on success, so a failed write never leaves a half-written document.
func WriteFile(doc *Document, reg *Registry, path string) error {
	data, err := Serialize(doc, reg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".cv-*.docx.tmp")
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Path: path, Err: err}
	}
	return nil
}

func buildDocumentXML(doc *Document) (string, error) {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `"><w:body>`)

	for _, p := range doc.Blocks() {
		if err := writeParagraph(&b, p); err != nil {
			return "", err
		}
	}

	b.WriteString(`<w:sectPr>`)
	b.WriteString(`<w:pgSz w:w="12240" w:h="15840"/>`)
	b.WriteString(fmt.Sprintf(`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		twips(marginTopInches), twips(marginRightInches), twips(marginBottomInches), twips(marginLeftInches)))
	b.WriteString(`</w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String(), nil
}

func writeParagraph(b *strings.Builder, p Paragraph) error {
	styleID, ok := docxStyleIDs[p.Style]
	if !ok {
		return fmt.Errorf("paragraph references unknown style %q", p.Style)
	}

	b.WriteString(`<w:p><w:pPr>`)
	b.WriteString(`<w:pStyle w:val="` + styleID + `"/>`)

	// Property order follows the CT_PPr schema sequence: numPr, pBdr, tabs,
	// spacing, jc.
	if p.Bullet {
		b.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
	}
	if p.BottomBorder {
		b.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr>`)
	}
	if p.DateTab {
		b.WriteString(fmt.Sprintf(`<w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs>`, twips(dateTabStopInches)))
	}
	if p.Compact {
		b.WriteString(`<w:spacing w:before="0" w:after="40" w:line="120" w:lineRule="auto"/>`)
	}
	switch p.Align {
	case AlignCenter:
		b.WriteString(`<w:jc w:val="center"/>`)
	case AlignJustify:
		b.WriteString(`<w:jc w:val="both"/>`)
	}
	b.WriteString(`</w:pPr>`)

	for _, r := range p.Runs {
		b.WriteString(`<w:r>`)
		if r.Bold {
			b.WriteString(`<w:rPr><w:b/></w:rPr>`)
		}
		if r.Tab {
			b.WriteString(`<w:tab/>`)
		} else {
			b.WriteString(`<w:t xml:space="preserve">` + escapeXML(r.Text) + `</w:t>`)
		}
		b.WriteString(`</w:r>`)
	}

	b.WriteString(`</w:p>`)
	return nil
}

func buildStylesXML(reg *Registry) (string, error) {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:styles xmlns:w="` + wmlNamespace + `">`)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	b.WriteString(`<w:rFonts w:ascii="` + fontName + `" w:hAnsi="` + fontName + `"/>`)
	b.WriteString(`<w:sz w:val="20"/>`)
	b.WriteString(`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr>`)
	b.WriteString(`<w:spacing w:before="0" w:after="0" w:line="240" w:lineRule="auto"/>`)
	b.WriteString(`</w:pPr></w:pPrDefault></w:docDefaults>`)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)

	for _, name := range reg.Names() {
		style, err := reg.Get(name)
		if err != nil {
			return "", err
		}
		writeStyleDefinition(&b, docxStyleIDs[name], style)
	}

	b.WriteString(`</w:styles>`)
	return b.String(), nil
}

func writeStyleDefinition(b *strings.Builder, styleID string, style Style) {
	b.WriteString(`<w:style w:type="paragraph" w:styleId="` + styleID + `">`)
	b.WriteString(`<w:name w:val="` + styleID + `"/>`)
	b.WriteString(`<w:basedOn w:val="Normal"/>`)

	b.WriteString(`<w:pPr>`)
	b.WriteString(fmt.Sprintf(`<w:spacing w:before="%d" w:after="%d" w:line="%d" w:lineRule="auto"/>`,
		pointsToTwentieths(style.SpaceBeforePt), pointsToTwentieths(style.SpaceAfterPt), lineSpacingValue(style.LineSpacing)))
	if style.LeftIndentInches != 0 || style.HangingIndentInches != 0 {
		b.WriteString(fmt.Sprintf(`<w:ind w:left="%d" w:hanging="%d"/>`,
			twips(style.LeftIndentInches), twips(style.HangingIndentInches)))
	}
	b.WriteString(`</w:pPr>`)

	b.WriteString(`<w:rPr>`)
	b.WriteString(`<w:rFonts w:ascii="` + style.Font + `" w:hAnsi="` + style.Font + `"/>`)
	if style.Bold {
		b.WriteString(`<w:b/>`)
	}
	b.WriteString(`<w:sz w:val="` + strconv.Itoa(halfPoints(style.SizePt)) + `"/>`)
	b.WriteString(`</w:rPr>`)
	b.WriteString(`</w:style>`)
}

func twips(inches float64) int {
	return int(math.Round(inches * 1440))
}

func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

func pointsToTwentieths(pt float64) int {
	return int(math.Round(pt * 20))
}

func lineSpacingValue(spacing float64) int {
	if spacing <= 0 {
		spacing = 1
	}
	return int(math.Round(spacing * 240))
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

const numberingXML = xml.Header + `<w:numbering xmlns:w="` + wmlNamespace + `">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="&#8226;"/><w:lvlJc w:val="left"/>` +
	`<w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol"/></w:rPr></w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
