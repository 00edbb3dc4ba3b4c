// Package document assembles the final meeting report as a DOCX artifact.
package document

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
)

const (
	fontName    = "Calibri"
	fontSize    = 11
	titleSize   = 16
	headingSize = 14

	documentTitle = "Meeting Summary Report"
)

// Assembler renders transcripts, summaries and action items into an
// in-memory DOCX artifact.
type Assembler struct {
	tempDir string
	logger  logger.Logger
}

func NewAssembler(tempDir string, log logger.Logger) *Assembler {
	return &Assembler{
		tempDir: tempDir,
		logger:  log,
	}
}

// Assemble builds the report document and returns it fully materialized in
// memory. The Action Items section is omitted entirely when items is empty.
func (a *Assembler) Assemble(ctx context.Context, transcript, summary string, items []string, now time.Time) (*meeting.Artifact, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, errs.Wrap(errs.KindDocumentAssemblyFailed, err, "failed to create document")
	}

	addStyledRun(doc.AddParagraph(""), documentTitle, true, titleSize)
	addStyledRun(doc.AddParagraph(""), "Generated: "+now.Format("2006-01-02 15:04:05"), false, fontSize)
	addStyledRun(doc.AddParagraph(""), strings.Repeat("─", 50), false, fontSize)

	addStyledRun(doc.AddParagraph(""), "Executive Summary", true, headingSize)
	addBody(doc, summary)

	if len(items) > 0 {
		addStyledRun(doc.AddParagraph(""), "Action Items", true, headingSize)
		for _, item := range items {
			text := strings.TrimLeft(item, "-•* ")
			addStyledRun(doc.AddParagraph(""), "• "+text, false, fontSize)
		}
	}

	addStyledRun(doc.AddParagraph(""), "Full Transcript", true, headingSize)
	addBody(doc, transcript)

	data, err := a.materialize(ctx, doc)
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "Document assembled: %d bytes", len(data))
	return &meeting.Artifact{
		Filename:  meeting.ArtifactFilename(now),
		Data:      data,
		CreatedAt: now,
	}, nil
}

// materialize saves the document through a scoped temporary file and returns
// its bytes. The temporary is removed on every path.
func (a *Assembler) materialize(ctx context.Context, doc *docx.RootDoc) ([]byte, error) {
	f, err := os.CreateTemp(a.tempDir, "report-*.docx")
	if err != nil {
		return nil, errs.Wrap(errs.KindDocumentAssemblyFailed, err, "failed to create document temp file")
	}
	path := f.Name()
	f.Close()
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			a.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
		}
	}()

	if err := doc.SaveTo(path); err != nil {
		return nil, errs.Wrap(errs.KindDocumentAssemblyFailed, err, "failed to save document").WithPath(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindDocumentAssemblyFailed, err, "failed to read document").WithPath(path)
	}
	if len(data) == 0 {
		return nil, errs.New(errs.KindDocumentAssemblyFailed, "document file is empty").WithPath(path)
	}
	return data, nil
}

// addBody writes multi-line text as one paragraph per line.
func addBody(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
