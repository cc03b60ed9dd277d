package geom

import "strings"

// RectPart is a bit-set of rectangle sides and corners.
type RectPart uint16

const (
	PartNone RectPart = 0

	Left   RectPart = 1 << 0
	Top    RectPart = 1 << 1
	Right  RectPart = 1 << 2
	Bottom RectPart = 1 << 3

	TopLeft     RectPart = 1 << 4
	TopRight    RectPart = 1 << 5
	BottomLeft  RectPart = 1 << 6
	BottomRight RectPart = 1 << 7

	AllSides   = Left | Top | Right | Bottom
	AllCorners = TopLeft | TopRight | BottomLeft | BottomRight
)

// Has reports whether every bit of part is set.
func (p RectPart) Has(part RectPart) bool {
	return part != PartNone && p&part == part
}

var partNames = []struct {
	part RectPart
	name string
}{
	{Left, "L"},
	{Top, "T"},
	{Right, "R"},
	{Bottom, "B"},
	{TopLeft, "TL"},
	{TopRight, "TR"},
	{BottomLeft, "BL"},
	{BottomRight, "BR"},
}

func (p RectPart) String() string {
	if p == PartNone {
		return "-"
	}
	names := make([]string, 0, len(partNames))
	for _, n := range partNames {
		if p&n.part != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// CornersFromSides marks a corner whenever both sides meeting at it are set.
func CornersFromSides(sides RectPart) RectPart {
	corner := func(a, b, c RectPart) RectPart {
		if sides&a != 0 && sides&b != 0 {
			return c
		}
		return PartNone
	}
	return corner(Top, Left, TopLeft) |
		corner(Top, Right, TopRight) |
		corner(Bottom, Left, BottomLeft) |
		corner(Bottom, Right, BottomRight)
}
