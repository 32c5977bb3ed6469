package autodiff

import (
	"reflect"
	"strconv"
)

// formatFloat renders v with the shortest representation that round-trips
// at T's precision.
func formatFloat[T Float](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, reflect.TypeFor[T]().Bits())
}
