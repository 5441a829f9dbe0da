// Public domain.

package outfit

import (
	"strings"

	"github.com/soniakeys/unit"
)

// ErrorModel selects the astrometric error model supplying a default
// 1-sigma accuracy for observations that carry none.
type ErrorModel int

const (
	// FCCT14 is the Farnocchia, Chesley, Chamberlin, Tholen 2014
	// star catalog debiasing model.
	FCCT14 ErrorModel = iota
	// VFCC17 is the Vereš, Farnocchia, Chesley, Chamberlin 2017
	// per-survey weighting model.
	VFCC17
)

// ParseErrorModel maps a model name to an ErrorModel.  Unrecognized
// names fall back to FCCT14.
func ParseErrorModel(name string) ErrorModel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "VFCC17":
		return VFCC17
	}
	return FCCT14
}

func (m ErrorModel) String() string {
	if m == VFCC17 {
		return "VFCC17"
	}
	return "FCCT14"
}

// SigmaFloor returns the model's nominal 1-sigma accuracy, used for
// observations whose own sigma is unset.
func (m ErrorModel) SigmaFloor() unit.Angle {
	if m == VFCC17 {
		return unit.AngleFromSec(.3)
	}
	return unit.AngleFromSec(.5)
}
