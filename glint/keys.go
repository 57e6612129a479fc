package glint

import "log/slog"

//go:generate go tool stringer -type=Key

// Key identifies a keyboard key. The constants are named after the DOM
// KeyboardEvent codes they map to.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
)

// keyFromCode maps a DOM KeyboardEvent code to a Key. Codes without a
// mapping yield KeyUnknown.
func keyFromCode(code string) Key {
	key, ok := codeToKey[code]
	if !ok {
		slog.Warn("Unknown key code", slog.String("code", code))
		return KeyUnknown
	}

	return key
}

var codeToKey = map[string]Key{
	"KeyA":         KeyA,
	"KeyB":         KeyB,
	"KeyC":         KeyC,
	"KeyD":         KeyD,
	"KeyE":         KeyE,
	"KeyF":         KeyF,
	"KeyG":         KeyG,
	"KeyH":         KeyH,
	"KeyI":         KeyI,
	"KeyJ":         KeyJ,
	"KeyK":         KeyK,
	"KeyL":         KeyL,
	"KeyM":         KeyM,
	"KeyN":         KeyN,
	"KeyO":         KeyO,
	"KeyP":         KeyP,
	"KeyQ":         KeyQ,
	"KeyR":         KeyR,
	"KeyS":         KeyS,
	"KeyT":         KeyT,
	"KeyU":         KeyU,
	"KeyV":         KeyV,
	"KeyW":         KeyW,
	"KeyX":         KeyX,
	"KeyY":         KeyY,
	"KeyZ":         KeyZ,
	"Digit0":       Key0,
	"Digit1":       Key1,
	"Digit2":       Key2,
	"Digit3":       Key3,
	"Digit4":       Key4,
	"Digit5":       Key5,
	"Digit6":       Key6,
	"Digit7":       Key7,
	"Digit8":       Key8,
	"Digit9":       Key9,
	"Space":        KeySpace,
	"Enter":        KeyEnter,
	"Escape":       KeyEscape,
	"Tab":          KeyTab,
	"Backspace":    KeyBackspace,
	"ArrowLeft":    KeyArrowLeft,
	"ArrowRight":   KeyArrowRight,
	"ArrowUp":      KeyArrowUp,
	"ArrowDown":    KeyArrowDown,
	"ShiftLeft":    KeyShiftLeft,
	"ShiftRight":   KeyShiftRight,
	"ControlLeft":  KeyControlLeft,
	"ControlRight": KeyControlRight,
	"AltLeft":      KeyAltLeft,
	"AltRight":     KeyAltRight,
}
