package barcode

import (
	"regexp"
	"strings"
)

var wellPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// NormalizeWell pads the numeric part of a plate well label to two digits,
// A1 -> A01, AB7 -> AB07, C123 -> C123, A007 -> A07.
// Labels that are not letters followed by digits are returned unchanged.
func NormalizeWell(well string) string {
	var m = wellPattern.FindStringSubmatch(well)
	if m == nil {
		return well
	}
	var number = strings.TrimLeft(m[2], "0")
	switch len(number) {
	case 0:
		number = "00"
	case 1:
		number = "0" + number
	}
	return m[1] + number
}
