package media

import (
	"fmt"

	"github.com/agiangrant/grouped"
)

// Action is what a Link does when clicked.
type Action int

const (
	ActionOpen Action = iota
	ActionToggleSelection
)

// Link is the click handler exposed by the delegates in this package.
type Link struct {
	Action Action
	Record grouped.RecordID
	name   string
}

func (l *Link) Label() string {
	switch l.Action {
	case ActionToggleSelection:
		return fmt.Sprintf("select %s", l.name)
	}
	return fmt.Sprintf("open %s", l.name)
}
