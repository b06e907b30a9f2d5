package detect

import "github.com/a632079/desktoggle/internal/platform"

// HitTester answers which list item sits under a screen point on a list
// surface, restricted to the item area so headers and group labels do not
// count as items.
type HitTester interface {
	HitTestItem(list platform.Window, pt platform.Point) int
}

// IsBlankAt reports whether the point lands on empty desktop space on the
// given icon surface. Any reported item index, including labels and
// selection rectangles, counts as non-blank.
func IsBlankAt(ht HitTester, surface platform.Window, pt platform.Point) bool {
	return ht.HitTestItem(surface, pt) < 0
}
