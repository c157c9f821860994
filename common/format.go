package common

import (
	"strconv"
	"strings"
)

// FormatFloatWithComma renders f with the given number of decimals and
// thousands separators in the integer part.
func FormatFloatWithComma(f float64, decimals int) string {
	str := strconv.FormatFloat(f, 'f', decimals, 64)

	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := ""
	if len(parts) > 1 {
		decPart = parts[1]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	nStr := ""
	for i, v := range intPart {
		if i != 0 && (len(intPart)-i)%3 == 0 {
			nStr += ","
		}
		nStr += string(v)
	}
	if neg {
		nStr = "-" + nStr
	}

	if decimals > 0 {
		return nStr + "." + decPart
	}
	return nStr
}

func FormatIntWithComma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	nStr := ""
	for i, v := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			nStr += ","
		}
		nStr += string(v)
	}
	if neg {
		return "-" + nStr
	}
	return nStr
}

// FormatPrice renders a USD price: four decimals below a dollar, two above.
func FormatPrice(p float64) string {
	if p < 1 {
		return "$" + FormatFloatWithComma(p, 4)
	}
	return "$" + FormatFloatWithComma(p, 2)
}

// FormatMillions renders a value already expressed in millions, e.g. "$1,234M".
func FormatMillions(m float64) string {
	return "$" + FormatFloatWithComma(m, 0) + "M"
}
