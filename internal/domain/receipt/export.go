package receipt

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"paydesk/internal/domain/payroll"
)

// Exporter writes receipt artifacts under the receipts directory and
// best-effort opens them in the platform file viewer.
type Exporter struct {
	dir       string
	openAfter bool
	now       func() time.Time
	openFile  func(path string) error
}

func NewExporter(dir string, openAfter bool) *Exporter {
	return &Exporter{
		dir:       dir,
		openAfter: openAfter,
		now:       time.Now,
		openFile:  openInViewer,
	}
}

// Result reports where the artifacts landed. Opened is informational
// only: a viewer that could not be launched does not fail the export.
type Result struct {
	TextPath string `json:"textPath"`
	PDFPath  string `json:"pdfPath"`
	Opened   bool   `json:"opened"`
}

// Export renders the joined row in both formats and writes each to a new
// timestamped file. Files are write-once: an existing path is never
// overwritten.
func (e *Exporter) Export(row payroll.ReceiptRow) (Result, error) {
	doc := Build(row)

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create receipts directory: %w", err)
	}

	base := fmt.Sprintf("salary_receipt_%s_%s", row.EmpID, e.now().Format("20060102150405"))
	result := Result{
		TextPath: filepath.Join(e.dir, base+".txt"),
		PDFPath:  filepath.Join(e.dir, base+".pdf"),
	}

	if err := writeOnce(result.TextPath, []byte(RenderText(doc))); err != nil {
		return Result{}, err
	}

	pdfBytes, err := RenderPDF(doc)
	if err != nil {
		return Result{}, fmt.Errorf("render receipt pdf: %w", err)
	}
	if err := writeOnce(result.PDFPath, pdfBytes); err != nil {
		return Result{}, err
	}

	if e.openAfter {
		result.Opened = true
		for _, path := range []string{result.TextPath, result.PDFPath} {
			if err := e.openFile(path); err != nil {
				log.Info().Str("path", path).Err(err).Msg("receipt saved but could not be opened automatically")
				result.Opened = false
			}
		}
	}
	return result, nil
}

func writeOnce(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("export receipt %s: %w", path, err)
	}
	_, writeErr := file.Write(data)
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("export receipt %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("export receipt %s: %w", path, closeErr)
	}
	return nil
}

func openInViewer(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
