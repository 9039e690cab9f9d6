package receipt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestExporter(t *testing.T, openAfter bool) *Exporter {
	t.Helper()
	e := NewExporter(t.TempDir(), openAfter)
	e.now = func() time.Time { return time.Date(2023, 4, 19, 10, 30, 0, 0, time.UTC) }
	e.openFile = func(string) error { return nil }
	return e
}

func TestExportWritesBothFormats(t *testing.T) {
	e := newTestExporter(t, false)

	result, err := e.Export(sampleRow())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if got := filepath.Base(result.TextPath); got != "salary_receipt_EMP001_20230419103000.txt" {
		t.Fatalf("unexpected text file name %q", got)
	}
	if got := filepath.Base(result.PDFPath); got != "salary_receipt_EMP001_20230419103000.pdf" {
		t.Fatalf("unexpected pdf file name %q", got)
	}
	if result.Opened {
		t.Fatal("expected opened=false when auto-open is disabled")
	}

	text, err := os.ReadFile(result.TextPath)
	if err != nil {
		t.Fatalf("read text artifact: %v", err)
	}
	if !strings.Contains(string(text), "Net Salary: 60000.00") {
		t.Fatal("text artifact missing net salary line")
	}

	pdf, err := os.ReadFile(result.PDFPath)
	if err != nil {
		t.Fatalf("read pdf artifact: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Fatal("pdf artifact is not a PDF document")
	}
}

func TestExportNeverOverwrites(t *testing.T) {
	e := newTestExporter(t, false)

	if _, err := e.Export(sampleRow()); err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	// Same clock reading, same target paths.
	if _, err := e.Export(sampleRow()); !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected os.ErrExist on repeat export, got %v", err)
	}
}

func TestExportOpensAfterWrite(t *testing.T) {
	e := newTestExporter(t, true)

	var opened []string
	e.openFile = func(path string) error {
		opened = append(opened, path)
		return nil
	}

	result, err := e.Export(sampleRow())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !result.Opened {
		t.Fatal("expected opened=true")
	}
	if len(opened) != 2 || opened[0] != result.TextPath || opened[1] != result.PDFPath {
		t.Fatalf("unexpected open sequence %v", opened)
	}
}

func TestExportViewerFailureIsNotAnError(t *testing.T) {
	e := newTestExporter(t, true)
	e.openFile = func(string) error { return errors.New("no display") }

	result, err := e.Export(sampleRow())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if result.Opened {
		t.Fatal("expected opened=false when the viewer cannot launch")
	}
	if _, err := os.Stat(result.TextPath); err != nil {
		t.Fatalf("text artifact missing: %v", err)
	}
	if _, err := os.Stat(result.PDFPath); err != nil {
		t.Fatalf("pdf artifact missing: %v", err)
	}
}
