package processor

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Mangal"
	fontSize = 13
)

// sectionSummary is one summarized section as written to output artifacts.
type sectionSummary struct {
	Title   string
	Summary string
}

// summaryToDocx writes the section summaries as a styled docx: document
// title, then one bold heading and body paragraph per section.
func summaryToDocx(title string, blocks []sectionSummary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, block := range blocks {
		addStyledRun(doc.AddParagraph(""), block.Title, true, 14)

		body := doc.AddParagraph("")
		body.AddText(block.Summary).Font(fontName).Size(fontSize).Color("000000")

		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
