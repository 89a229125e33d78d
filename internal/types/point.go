// README: Common geographic value object used across modules.
package types

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}
