package indev

// findTarget performs the depth-first, children-first search described in
// §4.2: a widget qualifies only if the point falls in its bounds, none of
// its descendants qualify first, it is clickable, and neither it nor any
// ancestor is hidden. Children are visited in scene order and the first
// qualifying descendant wins, so paint order and hit order agree.
//
// A hidden widget short-circuits immediately without visiting its
// children, which is what gives hidden its ancestor-inherited meaning:
// nothing under a hidden subtree can ever be hit.
func findTarget(root Widget, x, y float64) Widget {
	if root == nil || root.Hidden() {
		return nil
	}
	for _, child := range root.Children() {
		if hit := findTarget(child, x, y); hit != nil {
			return hit
		}
	}
	if root.Clickable() && root.Bounds().Contains(x, y) {
		return root
	}
	return nil
}

// FindTarget is the hit-tester's public entry point. It searches, in
// order, the system layer, the top layer, and the active screen,
// returning the first qualifying widget found, or nil if the point hits
// nothing (§4.2 "Callers search three roots in order").
func FindTarget(display Display, x, y float64) Widget {
	if display == nil {
		return nil
	}
	if w := findTarget(display.SystemLayer(), x, y); w != nil {
		return w
	}
	if w := findTarget(display.TopLayer(), x, y); w != nil {
		return w
	}
	return findTarget(display.ActiveScreen(), x, y)
}

// effectiveDragTarget walks the "drag-parent" chain (§4.3): while the
// widget has DragParent set, continue to its Parent(), stopping at the
// first widget that doesn't redirect, or at the root.
func effectiveDragTarget(w Widget) Widget {
	for w != nil && w.DragParent() {
		p := w.Parent()
		if p == nil {
			break
		}
		w = p
	}
	return w
}
