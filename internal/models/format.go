package models

// Format is the result-entry format of an event
type Format string

const (
	Bo1 Format = "Bo1" // best of 1
	Mo3 Format = "Mo3" // mean of 3
	Ao5 Format = "Ao5" // average of 5
)

// DefaultFormat is used for empty or unrecognized format values
const DefaultFormat = Ao5

// Formats lists the supported formats in display order
var Formats = []Format{Bo1, Mo3, Ao5}

// ParseFormat returns the known format spelled exactly as s, or
// DefaultFormat when nothing matches.
func ParseFormat(s string) Format {
	for _, f := range Formats {
		if s == string(f) {
			return f
		}
	}
	return DefaultFormat
}

// Valid reports whether f is one of the known formats
func (f Format) Valid() bool {
	switch f {
	case Bo1, Mo3, Ao5:
		return true
	}
	return false
}

// Normalize returns f if it is valid, otherwise the parsed equivalent
func (f Format) Normalize() Format {
	if f.Valid() {
		return f
	}
	return ParseFormat(string(f))
}

// Attempts returns the number of numbered result rows on a card
func (f Format) Attempts() int {
	switch f.Normalize() {
	case Bo1:
		return 1
	case Mo3:
		return 3
	default:
		return 5
	}
}

// CutoffAfter returns how many attempts precede the cutoff separator.
// Zero means the format has no cutoff line.
func (f Format) CutoffAfter() int {
	switch f.Normalize() {
	case Bo1:
		return 0
	case Mo3:
		return 1
	default:
		return 2
	}
}

func (f Format) String() string {
	return string(f)
}
