package model

import (
	"fmt"
	"math"
)

// UnknownSize is shown when yt-dlp reports neither an exact nor an approximate size
const UnknownSize = "Unknown"

const sizeSuffix = "B"

var sizeUnits = []string{"", "K", "M", "G", "T", "P"}

// HumanSize renders a byte count with binary multiples and one decimal,
// e.g. 1536 -> "1.5KB"
func HumanSize(size *int64) string {
	if size == nil {
		return UnknownSize
	}

	num := float64(*size)
	for _, unit := range sizeUnits {
		if math.Abs(num) < 1024.0 {
			return fmt.Sprintf("%3.1f%s%s", num, unit, sizeSuffix)
		}
		num /= 1024.0
	}
	return fmt.Sprintf("%.1fY%s", num, sizeSuffix)
}
