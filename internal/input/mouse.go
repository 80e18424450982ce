package input

import "strconv"

// PointerKind tells mouse motion apart from focus changes.
type PointerKind int

const (
	PointerMotion PointerKind = iota
	PointerFocusIn
	PointerFocusOut
)

func (k PointerKind) String() string {
	switch k {
	case PointerMotion:
		return "motion"
	case PointerFocusIn:
		return "focus-in"
	case PointerFocusOut:
		return "focus-out"
	default:
		return "unknown"
	}
}

// Pointer is a decoded mouse or focus report. Col and Row are 0-based cells.
type Pointer struct {
	Kind    PointerKind
	Col     int
	Row     int
	Button  int
	Release bool
}

// parseSGRMouse decodes "ESC [ < b ; x ; y (M|m)" at the start of buf.
// It returns the report, the number of bytes consumed and whether the sequence
// was complete. Malformed sequences come back complete with n == 0.
func parseSGRMouse(buf []byte) (p Pointer, n int, complete bool) {
	const prefix = 3 // ESC [ <
	var fields [3]int
	field := 0
	start := prefix

	for i := prefix; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' || c == 'M' || c == 'm':
			if field >= len(fields) {
				return Pointer{}, 0, true
			}
			v, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return Pointer{}, 0, true
			}
			fields[field] = v
			field++
			start = i + 1
			if c == ';' {
				continue
			}
			if field != len(fields) {
				return Pointer{}, 0, true
			}
			return Pointer{
				Kind:    PointerMotion,
				Button:  fields[0],
				Col:     fields[1] - 1,
				Row:     fields[2] - 1,
				Release: c == 'm',
			}, i + 1, true
		default:
			return Pointer{}, 0, true
		}
	}
	return Pointer{}, 0, false
}
