package ledger

// Unit is the unit-of-measure tag on a calculator line.
// Bill lines carry no unit; calculator lines default to UnitPiece.
type Unit string

const (
	UnitNone  Unit = ""
	UnitPiece Unit = "piece"
	UnitKg    Unit = "kg"
	UnitMeter Unit = "meter"
	UnitFeet  Unit = "feet"
	UnitLiter Unit = "liter"
	UnitBag   Unit = "bag"
	UnitBox   Unit = "box"
)

// Units lists every selectable unit, in display order.
func Units() []Unit {
	return []Unit{UnitPiece, UnitKg, UnitMeter, UnitFeet, UnitLiter, UnitBag, UnitBox}
}

// IsValid reports whether u is a known unit. UnitNone is valid for bill lines.
func (u Unit) IsValid() bool {
	switch u {
	case UnitNone, UnitPiece, UnitKg, UnitMeter, UnitFeet, UnitLiter, UnitBag, UnitBox:
		return true
	}
	return false
}
