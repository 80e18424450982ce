// Package input decodes terminal input: keys, SGR mouse reports and focus reports.
package input

import (
	"bufio"
	"io"
)

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Space   bool
	Enter   bool
	Escape  bool
	Closed  bool      // The underlying reader returned an error; no more input will arrive
	Pointer []Pointer // Mouse and focus reports in arrival order
	Pressed []byte    // Raw bytes drained this frame
}

// Any reports whether the frame carried any user input.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence carried into the next frame
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{ch: make(chan byte, 256)}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and decodes them.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil
	fresh := 0

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh++
		default:
			break drain
		}
	}

	in := Input{Closed: s.closed}
	if fresh > 0 {
		in.Pressed = buf[len(buf)-fresh:]
	}
	// A trailing ESC waits one frame for the rest of its sequence; if nothing
	// followed, it is a real Escape key press.
	canWait := !s.closed
	if fresh == 0 && len(buf) == 1 && buf[0] == '\x1b' {
		canWait = false
	}
	s.pending = decode(buf, &in, canWait)
	return in
}

// decode parses buf into in and returns the trailing bytes of an unfinished
// escape sequence when more input may still complete it.
func decode(buf []byte, in *Input, canWait bool) []byte {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 == len(buf) && canWait {
			return append([]byte(nil), buf[i:]...)
		}
		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			if i+2 >= len(buf) {
				if canWait {
					return append([]byte(nil), buf[i:]...)
				}
				in.Escape = true
				return nil
			}
			switch buf[i+2] {
			case '<':
				p, n, complete := parseSGRMouse(buf[i:])
				if !complete {
					if canWait {
						return append([]byte(nil), buf[i:]...)
					}
					return nil
				}
				if n > 0 {
					in.Pointer = append(in.Pointer, p)
				}
				i += max(n, 3) - 1
				continue
			case 'I':
				in.Pointer = append(in.Pointer, Pointer{Kind: PointerFocusIn})
				i += 2
				continue
			case 'O':
				in.Pointer = append(in.Pointer, Pointer{Kind: PointerFocusOut})
				i += 2
				continue
			case 'A', 'B', 'C', 'D':
				// Arrow keys are not bound.
				i += 2
				continue
			}
		}

		applyByte(in, b)
	}
	return nil
}

// applyByte maps a single key byte onto the frame input.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	case '\x1b':
		in.Escape = true
	}
}
