package grouped

// ToggleSelectionByHandlerClick reports whether any member treats h as a
// selection toggle.
func (g *Group) ToggleSelectionByHandlerClick(h ClickHandler) bool {
	for _, part := range g.parts {
		if part.content.ToggleSelectionByHandlerClick(h) {
			return true
		}
	}
	return false
}

// DragItemByHandler reports whether any member starts a drag from h.
func (g *Group) DragItemByHandler(h ClickHandler) bool {
	for _, part := range g.parts {
		if part.content.DragItemByHandler(h) {
			return true
		}
	}
	return false
}

func (g *Group) ClickHandlerActiveChanged(h ClickHandler, active bool) {
	for _, part := range g.parts {
		part.content.ClickHandlerActiveChanged(h, active)
	}
}

func (g *Group) ClickHandlerPressedChanged(h ClickHandler, pressed bool) {
	for _, part := range g.parts {
		part.content.ClickHandlerPressedChanged(h, pressed)
	}
}

func (g *Group) StopAnimation() {
	for _, part := range g.parts {
		part.content.StopAnimation()
	}
}

func (g *Group) CheckAnimation() {
	for _, part := range g.parts {
		part.content.CheckAnimation()
	}
}

// HasHeavyPart reports whether any member holds decoded media.
func (g *Group) HasHeavyPart() bool {
	for _, part := range g.parts {
		if part.content.HasHeavyPart() {
			return true
		}
	}
	return false
}

func (g *Group) UnloadHeavyPart() {
	for _, part := range g.parts {
		part.content.UnloadHeavyPart()
	}
}

// RefreshParentID re-binds every delegate to its member record.
func (g *Group) RefreshParentID() {
	for _, part := range g.parts {
		part.content.RefreshParentID(part.record)
	}
}

// Caption returns the caption of the representative (last) member.
func (g *Group) Caption() string { return g.main().Caption() }

// Photo returns the photo of the representative member.
func (g *Group) Photo() *Photo { return g.main().Photo() }

// Document returns the document of the representative member.
func (g *Group) Document() *Document { return g.main().Document() }

// SharedMediaTypes returns the shared-media sections of the representative member.
func (g *Group) SharedMediaTypes() SharedMediaTypes { return g.main().SharedMediaTypes() }
