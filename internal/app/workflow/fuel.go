package workflow

// FuelLevel is the quantized fuel gauge reading. The form offers exactly
// four levels; there is no free-text fuel input.
type FuelLevel int

const (
	FuelQuarter      FuelLevel = 25
	FuelHalf         FuelLevel = 50
	FuelThreeQuarter FuelLevel = 75
	FuelFull         FuelLevel = 100
)

// FuelLevels lists the selectable levels in display order
var FuelLevels = []FuelLevel{FuelQuarter, FuelHalf, FuelThreeQuarter, FuelFull}

// Valid reports whether l is one of the four selectable levels
func (l FuelLevel) Valid() bool {
	switch l {
	case FuelQuarter, FuelHalf, FuelThreeQuarter, FuelFull:
		return true
	}
	return false
}
