package courier

import "github.com/michaelharhay1/EduRoute-Mapper-Application/pathmatrix"

// SubPath is one leg of a materialized courier tour: a start/end
// intersection pair and the segment sequence connecting them
// (SPEC_FULL.md §4.5 "Output").
type SubPath struct {
	Start, End int
	Segments   []int
}

// Materialize converts a Solution's action order into the sub-path sequence
// the courier planner returns: depot -> first action, each action to the
// next, and the last action back to the depot.
func Materialize(m *pathmatrix.Matrix, sol *Solution) []SubPath {
	if len(sol.Actions) == 0 {
		return nil
	}

	stops := make([]int, 0, len(sol.Actions)+2)
	stops = append(stops, sol.Depot)
	for _, a := range sol.Actions {
		stops = append(stops, a.Intersection)
	}
	stops = append(stops, sol.Depot)

	subpaths := make([]SubPath, 0, len(stops)-1)
	for i := 0; i+1 < len(stops); i++ {
		subpaths = append(subpaths, SubPath{
			Start:    stops[i],
			End:      stops[i+1],
			Segments: m.PathByID(stops[i], stops[i+1]),
		})
	}
	return subpaths
}
