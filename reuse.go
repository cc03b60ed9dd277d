package grouped

// Decision is the outcome of comparing a group's members with a new
// candidate list.
type Decision int

const (
	// Rebuild means the members must be recreated.
	Rebuild Decision = iota
	// Reuse means the current members already match the candidates.
	Reuse
)

func (d Decision) String() string {
	if d == Reuse {
		return "reuse"
	}
	return "rebuild"
}

// Diff returns Reuse when candidate names exactly the records of current, in
// the same order.
func Diff(current, candidate []RecordID) Decision {
	if len(current) != len(candidate) {
		return Rebuild
	}
	for i, id := range candidate {
		if current[i] != id {
			return Rebuild
		}
	}
	return Reuse
}
