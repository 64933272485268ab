package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg.String())
			return m, nil
		}
		switch m.mode {
		case ModeManualInput, ModeGradientParam, ModeGradientPos, ModeFileInput:
			return m.handleTextInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg.String())
		}
		m.errorMessage = ""
		m.successMessage = ""
		if m.tab == TabShadow {
			return m.handleShadowTab(msg.String())
		}
		return m.handlePickerTab(msg.String())
	}
	return m, nil
}

// handleMouse feeds press, motion and release events to the picker. A
// left press that misses both picker areas may select a history swatch.
func (m *model) handleMouse(msg tea.MouseMsg) {
	p := Point{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.tab != TabPicker || m.mode != ModeNormal || m.help {
			return
		}
		if m.picker.Press(p) {
			return
		}
		if idx, ok := m.historyIndexAt(msg.X, msg.Y); ok {
			m.store.SelectHistory(idx)
		}
	case tea.MouseActionMotion:
		m.picker.Move(p)
	case tea.MouseActionRelease:
		m.picker.Release()
	}
}

func (m *model) handleHelpKey(key string) {
	switch key {
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	}
	return m, tea.Quit
}

func (m model) handlePickerTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		return m.quit()
	case "?":
		m.help = true
	case "tab":
		m.tab = TabShadow
	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		m.handleSurfaceKey(key, m.getMoveSpeed(key))
	case "-", "=", "_", "+":
		m.handleHueKey(key)
	case ",", ".":
		m.handleAlphaKey(key)
	case "f":
		m.store.SetFormat(m.store.Format().Next())
	case "i":
		m.startEdit(ModeManualInput, m.store.ManualInput())
	case "v":
		m.pasteColor()
	case "c":
		m.copy(m.live.out.Active, "Copied "+m.live.out.Format.String())
	case "C":
		m.copy(m.live.out.Gradient, "Copied gradient")
	case "1", "2":
		n := 1
		if key == "2" {
			n = 2
		}
		m.store.SetGradientStop(n)
		m.successMessage = fmt.Sprintf("Gradient stop %d set", n)
	case "g":
		m.store.SetGradientKind(m.store.GradientKind().Next())
	case "p":
		m.startEdit(ModeGradientParam, m.store.GradientParam())
	case "P":
		s1, s2 := m.store.GradientStops()
		m.startEdit(ModeGradientPos, s1.Position+" "+s2.Position)
	case "e":
		m.startFileInput(FileOpExportHTML, historyFilename(m.now()))
	case "E":
		m.startFileInput(FileOpExportPNG, swatchPNGFilename(m.now()))
	case "o":
		m.startFileInput(FileOpImportHTML, "")
	case "X":
		if len(m.store.History()) == 0 {
			m.errorMessage = "History is already empty"
			break
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClearHistory
			break
		}
		m.store.ClearHistory()
		m.successMessage = "History cleared"
	}
	return m, nil
}

func (m model) handleShadowTab(key string) (tea.Model, tea.Cmd) {
	hex := m.live.out.Hex
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		return m.quit()
	case "?":
		m.help = true
	case "tab":
		m.tab = TabPicker
	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		m.handleShadowKey(key, m.getMoveSpeed(key))
	case "b":
		m.shadow.BoxColor = hex
	case "s":
		m.shadow.BoxShadowColor = hex
	case "t":
		m.shadow.TextColor = hex
	case "T":
		m.shadow.TextShadowColor = hex
	case "c":
		m.copy(m.shadow.CSS(), "Copied shadow CSS")
	case "w":
		m.startFileInput(FileOpSaveCSS, "shadowcraft.css")
	}
	return m, nil
}

func (m *model) copy(text, success string) {
	if err := copyToClipboard(text); err != nil {
		errorPrint("clipboard:", err)
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = success
}

func (m *model) pasteColor() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = "Clipboard unavailable"
		return
	}
	if !m.store.SetManualInput(cleanClipboardText(text)) {
		m.errorMessage = "Clipboard does not hold a color"
	}
}

func (m *model) startEdit(target Mode, text string) {
	m.mode = target
	m.editTarget = target
	m.editText = text
	m.editCursorPos = len([]rune(text))
}

func (m *model) startFileInput(op FileOperation, name string) {
	m.fileOp = op
	m.startEdit(ModeFileInput, name)
}

// editLine applies a key to a single-line buffer and reports whether the
// text changed.
func editLine(msg tea.KeyMsg, text string, pos int) (string, int, bool) {
	runes := []rune(text)
	if pos > len(runes) {
		pos = len(runes)
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		in := msg.Runes
		if msg.Type == tea.KeySpace {
			in = []rune{' '}
		}
		runes = append(runes[:pos], append(in, runes[pos:]...)...)
		return string(runes), pos + len(in), true
	case tea.KeyBackspace:
		if pos == 0 {
			return text, pos, false
		}
		runes = append(runes[:pos-1], runes[pos:]...)
		return string(runes), pos - 1, true
	case tea.KeyDelete:
		if pos >= len(runes) {
			return text, pos, false
		}
		runes = append(runes[:pos], runes[pos+1:]...)
		return string(runes), pos, true
	case tea.KeyLeft:
		if pos > 0 {
			pos--
		}
	case tea.KeyRight:
		if pos < len(runes) {
			pos++
		}
	case tea.KeyHome, tea.KeyCtrlA:
		pos = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		pos = len(runes)
	}
	return text, pos, false
}

func (m model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = ModeNormal
		return m, nil
	case tea.KeyEnter:
		m.mode = ModeNormal
		return m.commitEdit()
	}

	text, pos, changed := editLine(msg, m.editText, m.editCursorPos)
	m.editText, m.editCursorPos = text, pos
	if changed && m.editTarget == ModeManualInput {
		// Live: every keystroke that forms a color applies it.
		m.store.SetManualInput(m.editText)
	}
	return m, nil
}

func (m model) commitEdit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.editText)
	switch m.editTarget {
	case ModeManualInput:
		if !m.store.SetManualInput(m.editText) && text != "" {
			m.errorMessage = "Not a color: " + text
		}
	case ModeGradientParam:
		if text == "" {
			m.errorMessage = "Gradient parameter cannot be empty"
			break
		}
		m.store.SetGradientParam(text)
	case ModeGradientPos:
		fields := strings.Fields(text)
		if len(fields) != 2 {
			m.errorMessage = "Enter two positions, e.g. 0% 100%"
			break
		}
		m.store.SetGradientPositions(fields[0], fields[1])
	case ModeFileInput:
		if text == "" {
			m.errorMessage = "No filename given"
			break
		}
		if m.fileOp == FileOpImportHTML {
			m.runFileOp(m.config.expandPath(text))
			break
		}
		path := m.config.GetSavePath(text)
		if fileExists(path) && m.config.Confirmations {
			m.pendingPath = path
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOverwriteFile
			break
		}
		m.runFileOp(path)
	}
	return m, nil
}

func (m model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClearHistory:
			m.store.ClearHistory()
			m.successMessage = "History cleared"
		case ConfirmOverwriteFile:
			m.runFileOp(m.pendingPath)
			m.pendingPath = ""
		}
	case "n", "N", "esc", "q":
		m.mode = ModeNormal
		m.pendingPath = ""
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) runFileOp(path string) {
	var err error
	switch m.fileOp {
	case FileOpExportHTML:
		if err = exportHistoryFile(path, m.store.History(), m.now()); err == nil {
			m.successMessage = "Exported history to " + path
		}
	case FileOpExportPNG:
		if err = ExportHistoryPNG(path, m.store.History()); err == nil {
			m.successMessage = "Exported swatches to " + path
		}
	case FileOpImportHTML:
		var n int
		if n, err = importHistoryFile(m.store, path); err == nil {
			m.successMessage = fmt.Sprintf("Successfully imported %d colors", n)
		}
	case FileOpSaveCSS:
		if err = saveTextFile(path, m.shadow.CSS()); err == nil {
			m.successMessage = "Saved " + path
		}
	}
	if err != nil {
		if !errors.Is(err, ErrNothingToExport) && !errors.Is(err, ErrNothingImported) {
			errorPrint("file operation:", err)
		}
		m.errorMessage = err.Error()
	}
}
