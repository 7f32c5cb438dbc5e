package core

// itoa converts an integer to a string without the fmt package, which is
// heavy on embedded targets.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}

// pad2 renders n as exactly two decimal digits; all counter domains fit in
// 0-99.
func pad2(n uint8) string {
	return string([]byte{'0' + n/10%10, '0' + n%10})
}

// FormatLap renders a lap record as "lap N MM:SS.TT", the line format used
// by the host tools. Lap numbers are one-based for display.
func FormatLap(index int, s TimeSample) string {
	return "lap " + itoa(index+1) + " " + pad2(s.Minutes) + ":" + pad2(s.Seconds) + "." + pad2(s.Ticks)
}
