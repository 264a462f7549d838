package util

import (
	"math"
	"strconv"

	"github.com/sovanrith/geoboard/internal/constant"
)

var coordinateScale = math.Pow10(constant.CoordinatePrecision)

// RoundCoordinate rounds a coordinate to the stored precision of 8
// fractional digits before it is written.
func RoundCoordinate(v float64) float64 {
	return math.Round(v*coordinateScale) / coordinateScale
}

// FormatCoordinate renders a coordinate as a fixed-precision decimal string
// ("40.71280000") so clients never see float drift across the wire.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', constant.CoordinatePrecision, 64)
}
