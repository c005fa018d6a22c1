package layout

import (
	"fmt"
	"strconv"
)

// MaxTimeLabelSeconds caps cutoff and limit labels at one hour
const MaxTimeLabelSeconds = 3600

// FormatTimeLabel renders a number of seconds as a card caption:
// H:MM:SS from one hour, M:SS from one minute, S.00 below that. Values
// above one hour are clamped. Anything that is not a plain run of ASCII
// digits, including the empty string, is returned unchanged.
func FormatTimeLabel(s string) string {
	if !isDigits(s) {
		return s
	}
	total, err := strconv.Atoi(s)
	if err != nil || total > MaxTimeLabelSeconds {
		// only overflow can fail here; it is well above an hour
		total = MaxTimeLabelSeconds
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d", minutes, seconds)
	default:
		return fmt.Sprintf("%d.00", seconds)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
