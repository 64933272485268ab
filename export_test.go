package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

var exportTime = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

func TestExportHistoryHTML(t *testing.T) {
	entries := []string{"rgba(255, 0, 0, 1.00)", "rgba(66, 153, 225, 0.50)"}
	var buf bytes.Buffer
	if err := ExportHistoryHTML(&buf, entries, exportTime); err != nil {
		t.Fatalf("ExportHistoryHTML: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"Export Date: 2024-03-09 14:05:00",
		"Total Colors Saved: 2",
		`style="background-color: rgba(255, 0, 0, 1.00);"`,
		`<td class="code">rgba(66, 153, 225, 0.50)</td>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestExportHistoryHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportHistoryHTML(&buf, nil, exportTime); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("error = %v, want ErrNothingToExport", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an empty history", buf.Len())
	}
}

func TestSwatchCSSRejectsUnknownText(t *testing.T) {
	if got := swatchCSS("red; background-image: url(x)"); got != "transparent" {
		t.Errorf("swatchCSS let %q through", got)
	}
	if got := swatchCSS("#ff0000"); got != "#ff0000" {
		t.Errorf("swatchCSS(#ff0000) = %q", got)
	}
}

func TestExportThenImport(t *testing.T) {
	s := NewStore(newMemoryKV(), nil)
	for _, c := range []string{"#ff0000", "#00ff00", "rgba(0, 0, 255, 0.25)"} {
		s.SetManualInput(c)
	}
	before := s.History()

	var buf bytes.Buffer
	if err := ExportHistoryHTML(&buf, before, exportTime); err != nil {
		t.Fatalf("ExportHistoryHTML: %v", err)
	}
	colors, err := ImportHistoryHTML(&buf)
	if err != nil {
		t.Fatalf("ImportHistoryHTML: %v", err)
	}
	if !reflect.DeepEqual(colors, before) {
		t.Fatalf("imported %v, exported %v", colors, before)
	}

	s.ImportHistory(colors)
	if !reflect.DeepEqual(s.History(), before) {
		t.Errorf("re-importing an export changed history to %v", s.History())
	}
}

func TestImportHistoryHTML(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    []string
		wantErr error
	}{
		{
			name: "Skips non rgba rows and header",
			doc: `<table><thead><tr><th class="code">rgba(9, 9, 9, 1.00)</th></tr></thead><tbody>
				<tr><td class="code"> rgba(1, 2, 3, 1.00) </td></tr>
				<tr><td class="code">#ff0000</td></tr>
				<tr><td>rgba(4, 5, 6, 1.00)</td></tr>
				<tr><td class="mono code"><b>rgba(7, 8, 9, 0.50)</b></td></tr>
			</tbody></table>`,
			want: []string{"rgba(1, 2, 3, 1.00)", "rgba(7, 8, 9, 0.50)"},
		},
		{
			name:    "No rows",
			doc:     `<html><body><p>hello</p></body></html>`,
			wantErr: ErrNothingImported,
		},
		{
			name:    "Only invalid rows",
			doc:     `<table><tbody><tr><td class="code">blue</td></tr></tbody></table>`,
			wantErr: ErrNothingImported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportHistoryHTML(strings.NewReader(tt.doc))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImportHistoryHTML: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExportAndImportFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, historyFilename(exportTime))
	if filepath.Base(path) != "ColorHistory_2024-03-09.html" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	entries := []string{"rgba(255, 0, 0, 1.00)"}
	if err := exportHistoryFile(path, entries, exportTime); err != nil {
		t.Fatalf("exportHistoryFile: %v", err)
	}

	s := NewStore(newMemoryKV(), nil)
	n, err := importHistoryFile(s, path)
	if err != nil {
		t.Fatalf("importHistoryFile: %v", err)
	}
	if n != 1 || !reflect.DeepEqual(s.History(), entries) {
		t.Errorf("imported %d, history %v", n, s.History())
	}

	if _, err := importHistoryFile(s, filepath.Join(dir, "missing.html")); err == nil {
		t.Error("importing a missing file succeeded")
	}
}

func TestExportHistoryPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), swatchPNGFilename(exportTime))
	entries := []string{"rgba(255, 0, 0, 1.00)", "rgba(0, 0, 255, 0.25)", "rgba(999, 0, 0, 1.00)", "junk", "#00ff00"}
	if err := ExportHistoryPNG(path, entries); err != nil {
		t.Fatalf("ExportHistoryPNG: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(raw, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	if err := ExportHistoryPNG(path, nil); !errors.Is(err, ErrNothingToExport) {
		t.Errorf("error = %v, want ErrNothingToExport", err)
	}
}

func TestNRGBAClamps(t *testing.T) {
	got := nrgba(RGBA{R: 999, G: -4, B: 10, A: 2})
	if got.R != 255 || got.G != 0 || got.B != 10 || got.A != 255 {
		t.Errorf("nrgba = %+v", got)
	}
}
