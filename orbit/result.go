// Public domain.

package orbit

import "fmt"

// Stage tells whether a Gauss result carries the raw triplet solution
// or the differentially corrected one.
type Stage int

const (
	Preliminary Stage = iota
	Corrected
)

func (s Stage) String() string {
	if s == Corrected {
		return "corrected"
	}
	return "preliminary"
}

// Elements is the closed union over the three element families.  Only
// Keplerian, Equinoctial and Cometary implement it; consumers switch
// over the concrete types exhaustively.
type Elements interface {
	// ElementsType returns the family tag:
	// "keplerian", "equinoctial" or "cometary".
	ElementsType() string
	// Fields returns the element values keyed by field name.
	Fields() map[string]float64

	sealed()
}

func (Keplerian) sealed()   {}
func (Equinoctial) sealed() {}
func (Cometary) sealed()    {}

func (Keplerian) ElementsType() string   { return "keplerian" }
func (Equinoctial) ElementsType() string { return "equinoctial" }
func (Cometary) ElementsType() string    { return "cometary" }

func (k Keplerian) Fields() map[string]float64 {
	return map[string]float64{
		"reference_epoch":          k.ReferenceEpoch,
		"semi_major_axis":          k.SemiMajorAxis,
		"eccentricity":             k.Eccentricity,
		"inclination":              k.Inclination,
		"ascending_node_longitude": k.AscendingNodeLongitude,
		"periapsis_argument":       k.PeriapsisArgument,
		"mean_anomaly":             k.MeanAnomaly,
	}
}

func (q Equinoctial) Fields() map[string]float64 {
	return map[string]float64{
		"reference_epoch":        q.ReferenceEpoch,
		"semi_major_axis":        q.SemiMajorAxis,
		"eccentricity_sin_lon":   q.EccentricitySinLon,
		"eccentricity_cos_lon":   q.EccentricityCosLon,
		"tan_half_incl_sin_node": q.TanHalfInclSinNode,
		"tan_half_incl_cos_node": q.TanHalfInclCosNode,
		"mean_longitude":         q.MeanLongitude,
	}
}

func (c Cometary) Fields() map[string]float64 {
	f := map[string]float64{
		"reference_epoch":            c.ReferenceEpoch,
		"perihelion_distance":        c.PerihelionDistance,
		"eccentricity":               c.Eccentricity,
		"inclination":                c.Inclination,
		"ascending_node_longitude":   c.AscendingNodeLongitude,
		"periapsis_argument":         c.PeriapsisArgument,
		"time_of_perihelion_passage": c.TimeOfPerihelion,
	}
	if nu, err := c.TrueAnomaly(); err == nil {
		f["true_anomaly"] = nu
	}
	return f
}

// GaussResult is the outcome of orbit estimation for one object: an
// element set and the stage it reached.  Immutable once constructed.
type GaussResult struct {
	stage    Stage
	elements Elements
}

// NewResult builds a result.  elements must be one of the three
// element families.
func NewResult(stage Stage, elements Elements) GaussResult {
	return GaussResult{stage: stage, elements: elements}
}

func (g GaussResult) Stage() Stage        { return g.stage }
func (g GaussResult) IsPreliminary() bool { return g.stage == Preliminary }
func (g GaussResult) IsCorrected() bool   { return g.stage == Corrected }

// ElementsType returns the family tag of the carried elements.
func (g GaussResult) ElementsType() string { return g.elements.ElementsType() }

// Elements returns the carried element set.
func (g GaussResult) Elements() Elements { return g.elements }

// Fields returns the element values keyed by field name.
func (g GaussResult) Fields() map[string]float64 { return g.elements.Fields() }

// Keplerian returns the elements if the result carries the Keplerian
// family.
func (g GaussResult) Keplerian() (Keplerian, bool) {
	k, ok := g.elements.(Keplerian)
	return k, ok
}

// Equinoctial returns the elements if the result carries the
// Equinoctial family.
func (g GaussResult) Equinoctial() (Equinoctial, bool) {
	q, ok := g.elements.(Equinoctial)
	return q, ok
}

// Cometary returns the elements if the result carries the Cometary
// family.
func (g GaussResult) Cometary() (Cometary, bool) {
	c, ok := g.elements.(Cometary)
	return c, ok
}

func (g GaussResult) String() string {
	return fmt.Sprintf("%s %s orbit: %v", g.stage, g.ElementsType(), g.elements)
}
