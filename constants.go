package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeManualInput
	ModeGradientParam
	ModeGradientPos
	ModeFileInput
	ModeConfirm
)

type Tab int

const (
	TabPicker Tab = iota
	TabShadow
)

type FileOperation int

const (
	FileOpExportHTML FileOperation = iota
	FileOpExportPNG
	FileOpImportHTML
	FileOpSaveCSS
)

type ConfirmAction int

const (
	ConfirmClearHistory ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

// Format selects which of the seven outputs is the active one.
type Format int

const (
	FormatHex Format = iota
	FormatHexa
	FormatRGB
	FormatRGBA
	FormatHSL
	FormatHSLA
	FormatHWB
)

var formatNames = [...]string{"hex", "hexa", "rgb", "rgba", "hsl", "hsla", "hwb"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return formatNames[FormatHex]
	}
	return formatNames[f]
}

// ParseFormat maps a persisted name back to a Format. Unknown names fall
// back to hex.
func ParseFormat(s string) Format {
	for i, name := range formatNames {
		if name == s {
			return Format(i)
		}
	}
	return FormatHex
}

func (f Format) Next() Format {
	return Format((int(f) + 1) % len(formatNames))
}

const (
	maxHistory = 500

	defaultSurfaceWidth  = 48
	defaultSurfaceHeight = 16
	minSurfaceWidth      = 8
	minSurfaceHeight     = 4
	hueStripWidth        = 2

	defaultGradientPos1  = "0%"
	defaultGradientPos2  = "100%"
	defaultGradientParam = "90deg"

	alphaStep = 0.05
)

var (
	defaultColor = RGBA{R: 66, G: 153, B: 225, A: 1}
	defaultStop2 = RGBA{R: 255, G: 0, B: 0, A: 1}
)
