package flightplan

import (
	"github.com/golang/geo/r2"
)

// Parameters is the set of flight parameters. A nil field has not been given or computed yet.
type Parameters struct {
	HeightM           *float64
	GSDCM             *float64
	ForwardOverlapPct *float64
	SideOverlapPct    *float64

	PhotoScale   *float64
	SwathM       *r2.Point
	BaseLengthM  *float64
	StripOffsetM *float64
	GroundAreaM2 *float64
}

// Keys used by AsMap.
const (
	KeyHeightM           = "height_m"
	KeyGSDCM             = "gsd_cm"
	KeyForwardOverlapPct = "forward_overlap_pct"
	KeySideOverlapPct    = "side_overlap_pct"
	KeyPhotoScale        = "photo_scale"
	KeySwathM            = "swath_m"
	KeyBaseLengthM       = "base_length_m"
	KeyStripOffsetM      = "strip_offset_m"
	KeyGroundAreaM2      = "ground_area_m2"
)

// AsMap returns the set parameters keyed by name. The swath is a two element []float64 of the
// ground extent along the sensor x and y axes.
func (p Parameters) AsMap() map[string]interface{} {
	out := map[string]interface{}{}
	for key, v := range map[string]*float64{
		KeyHeightM:           p.HeightM,
		KeyGSDCM:             p.GSDCM,
		KeyForwardOverlapPct: p.ForwardOverlapPct,
		KeySideOverlapPct:    p.SideOverlapPct,
		KeyPhotoScale:        p.PhotoScale,
		KeyBaseLengthM:       p.BaseLengthM,
		KeyStripOffsetM:      p.StripOffsetM,
		KeyGroundAreaM2:      p.GroundAreaM2,
	} {
		if v != nil {
			out[key] = *v
		}
	}
	if p.SwathM != nil {
		out[KeySwathM] = []float64{p.SwathM.X, p.SwathM.Y}
	}
	return out
}

// clone returns a deep copy so that callers never share pointers with the planner.
func (p *Parameters) clone() Parameters {
	return Parameters{
		HeightM:           copyFloat(p.HeightM),
		GSDCM:             copyFloat(p.GSDCM),
		ForwardOverlapPct: copyFloat(p.ForwardOverlapPct),
		SideOverlapPct:    copyFloat(p.SideOverlapPct),
		PhotoScale:        copyFloat(p.PhotoScale),
		SwathM:            copyPoint(p.SwathM),
		BaseLengthM:       copyFloat(p.BaseLengthM),
		StripOffsetM:      copyFloat(p.StripOffsetM),
		GroundAreaM2:      copyFloat(p.GroundAreaM2),
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyPoint(v *r2.Point) *r2.Point {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
