package figma

func (n *Node) HasBoundingBox() bool {
	return n.AbsoluteBoundingBox != nil
}

func (n *Node) HasChildren() bool {
	return n.Children != nil
}

func (n *Node) HasBackgroundColor() bool {
	return n.BackgroundColor != nil
}

func (n *Node) HasPadding() bool {
	return n.PaddingTop != nil && n.PaddingRight != nil &&
		n.PaddingBottom != nil && n.PaddingLeft != nil
}

// HasLegacyPadding reports the deprecated horizontal/vertical padding pair.
func (n *Node) HasLegacyPadding() bool {
	return n.HorizontalPadding != nil && n.VerticalPadding != nil
}

func (n *Node) HasTypeStyle() bool {
	return n.Style != nil
}

func (n *Node) HasCharacters() bool {
	return n.Characters != nil
}

func (n *Node) HasStroke() bool {
	switch n.StrokeAlign {
	case "INSIDE", "OUTSIDE", "CENTER":
	default:
		return false
	}
	return n.StrokeWeight != nil && n.Strokes != nil && allValid(n.Strokes)
}

func (n *Node) HasFills() bool {
	return n.Fills != nil && allValid(n.Fills)
}

func (n *Node) HasEffects() bool {
	if n.Effects == nil {
		return false
	}
	for _, e := range n.Effects {
		if e.Type == "" {
			return false
		}
	}
	return true
}

func (n *Node) HasRadius() bool {
	return n.CornerRadius != nil
}

// HasRadii reports per-corner radii in top-left, top-right, bottom-right,
// bottom-left order.
func (n *Node) HasRadii() bool {
	return len(n.RectangleCornerRadii) == 4
}

func allValid(paints []Paint) bool {
	for _, p := range paints {
		if !p.Valid() {
			return false
		}
	}
	return true
}
