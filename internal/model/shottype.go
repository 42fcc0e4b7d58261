package model

// ShotType identifies one of the seven categorized ways a korfball goal or
// attempt can occur. The values are the stable ids stored inside match
// documents.
type ShotType string

const (
	ShotDistance   ShotType = "distance"
	ShotClose      ShotType = "close"
	ShotPenalty    ShotType = "penalty"
	ShotFreeball   ShotType = "freeball"
	ShotRunthrough ShotType = "runthrough"
	// ShotOutstart was added later; legacy documents miss the key and its
	// absence always reads as a zero ShotStat.
	ShotOutstart ShotType = "outstart"
	ShotOther    ShotType = "other"
)

// shotTypeOrder is the canonical enumeration order. Tie-breaks such as
// "best shot type" resolve to the first entry here, so the order is part
// of the contract and must not be reshuffled.
var shotTypeOrder = []ShotType{
	ShotDistance,
	ShotClose,
	ShotPenalty,
	ShotFreeball,
	ShotRunthrough,
	ShotOutstart,
	ShotOther,
}

var shotTypeLabels = map[ShotType]string{
	ShotDistance:   "Afstandsschot",
	ShotClose:      "Korte kans",
	ShotPenalty:    "Strafworp",
	ShotFreeball:   "Vrije bal",
	ShotRunthrough: "Doorloopbal",
	ShotOutstart:   "Uitstart",
	ShotOther:      "Overig",
}

var shotTypeCodes = map[ShotType]string{
	ShotDistance:   "AFS",
	ShotClose:      "KK",
	ShotPenalty:    "SW",
	ShotFreeball:   "VB",
	ShotRunthrough: "DLB",
	ShotOutstart:   "UIT",
	ShotOther:      "OV",
}

// ShotTypes returns the seven shot types in canonical order. The slice is a
// copy; callers may reorder it freely.
func ShotTypes() []ShotType {
	out := make([]ShotType, len(shotTypeOrder))
	copy(out, shotTypeOrder)
	return out
}

// Label returns the display label, falling back to the raw id for unknown
// values coming out of old documents.
func (t ShotType) Label() string {
	if l, ok := shotTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Code returns the short code used in compact table views.
func (t ShotType) Code() string {
	if c, ok := shotTypeCodes[t]; ok {
		return c
	}
	return string(t)
}
