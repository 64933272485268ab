package main

import (
	"html/template"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	ErrNothingToExport = errors.New("no color history to export")
	ErrNothingToCopy   = errors.New("nothing to copy")
)

const historyPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Color Picker History - {{.Date}}</title>
    <style>
        body { font-family: sans-serif; padding: 20px; background-color: #f4f4f4; color: #333; }
        h1 { color: #3182ce; border-bottom: 2px solid #ccc; padding-bottom: 10px; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
        th { background-color: #e2e8f0; color: #1a202c; }
        .swatch { width: 30px; height: 30px; border-radius: 4px; border: 1px solid #333; }
        .code { font-family: monospace; font-weight: bold; }
    </style>
</head>
<body>
    <h1>hueforge - Color History</h1>
    <p>Export Date: {{.Date}}</p>
    <p>Total Colors Saved: {{len .Rows}}</p>
    <table>
        <thead>
            <tr>
                <th>#</th>
                <th>Color Swatch</th>
                <th>Color Code (RGBA)</th>
            </tr>
        </thead>
        <tbody>
{{- range .Rows}}
            <tr>
                <td>{{.Index}}</td>
                <td><div class="swatch" style="background-color: {{.Swatch}};"></div></td>
                <td class="code">{{.Code}}</td>
            </tr>
{{- end}}
        </tbody>
    </table>
</body>
</html>
`

var historyTemplate = template.Must(template.New("history").Parse(historyPage))

type historyRow struct {
	Index  int
	Swatch template.CSS
	Code   string
}

// swatchCSS only lets recognized colors into the style attribute.
func swatchCSS(entry string) template.CSS {
	if _, ok := ParseColor(entry); !ok {
		return "transparent"
	}
	return template.CSS(entry)
}

// ExportHistoryHTML writes a standalone page listing entries in order.
func ExportHistoryHTML(w io.Writer, entries []string, now time.Time) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	rows := make([]historyRow, len(entries))
	for i, e := range entries {
		rows[i] = historyRow{Index: i + 1, Swatch: swatchCSS(e), Code: e}
	}
	data := struct {
		Date string
		Rows []historyRow
	}{now.Format("2006-01-02 15:04:05"), rows}
	return errors.Wrap(historyTemplate.Execute(w, data), "render history page")
}

func historyFilename(now time.Time) string {
	return "ColorHistory_" + now.Format("2006-01-02") + ".html"
}

func swatchPNGFilename(now time.Time) string {
	return "ColorHistory_" + now.Format("2006-01-02") + ".png"
}

// exportHistoryFile writes the HTML export to path.
func exportHistoryFile(path string, entries []string, now time.Time) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	defer file.Close()
	return ExportHistoryHTML(file, entries, now)
}

func nrgba(c RGBA) color.NRGBA {
	ch := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(to255(clamp01(c.A)))}
}

// ExportHistoryPNG draws the history as a labelled swatch sheet.
func ExportHistoryPNG(filename string, entries []string) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}

	const (
		columns    = 4
		cellWidth  = 240.0
		cellHeight = 44.0
		swatchSize = 32.0
		padding    = 12.0
	)
	rowCount := (len(entries) + columns - 1) / columns
	imageWidth := int(columns*cellWidth + 2*padding)
	imageHeight := int(float64(rowCount)*cellHeight + 2*padding)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return errors.Wrap(err, "failed to parse font")
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for i, entry := range entries {
		x := padding + float64(i%columns)*cellWidth
		y := padding + float64(i/columns)*cellHeight

		// Checkerboard behind the swatch so alpha is visible.
		half := swatchSize / 2
		for cy := 0; cy < 2; cy++ {
			for cx := 0; cx < 2; cx++ {
				if (cx+cy)%2 == 0 {
					dc.SetRGB(0.85, 0.85, 0.85)
				} else {
					dc.SetRGB(1, 1, 1)
				}
				dc.DrawRectangle(x+float64(cx)*half, y+float64(cy)*half, half, half)
				dc.Fill()
			}
		}

		if p, ok := ParseColor(entry); ok {
			dc.SetColor(nrgba(p.RGBA))
			dc.DrawRoundedRectangle(x, y, swatchSize, swatchSize, 4)
			dc.Fill()
		}
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(x, y, swatchSize, swatchSize, 4)
		dc.Stroke()
		dc.DrawStringAnchored(entry, x+swatchSize+8, y+half, 0, 0.5)
	}

	return errors.Wrap(dc.SavePNG(filename), "save png")
}

func saveTextFile(path, content string) error {
	return errors.Wrap(os.WriteFile(path, []byte(content), 0644), "write "+path)
}
