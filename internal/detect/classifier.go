package detect

import "github.com/a632079/desktoggle/internal/platform"

// Shell window class names. The icon grid is a SysListView32 hosted in a
// SHELLDLL_DefView container, which hangs off Progman or, when the wallpaper
// host has been re-parented, off one of the WorkerW windows.
const (
	ClassProgman   = "Progman"
	ClassWorkerW   = "WorkerW"
	ClassShellView = "SHELLDLL_DefView"
	ClassIconList  = "SysListView32"
)

// maxParentDepth bounds the ownership-chain walk so a malformed parent cycle
// cannot loop forever.
const maxParentDepth = 10

// WindowTree is the subset of platform.Desktop used to navigate the shell
// window hierarchy.
type WindowTree interface {
	WindowAt(pt platform.Point) (platform.Window, bool)
	ClassName(w platform.Window) string
	Parent(w platform.Window) (platform.Window, bool)
	FindWindow(class string) (platform.Window, bool)
	FindChild(parent, after platform.Window, class string) (platform.Window, bool)
}

// Classifier resolves the desktop icon-list surface for a screen point.
// It never caches the resolved window: Explorer can be restarted at any
// time, recreating the whole hierarchy, so every call resolves fresh.
type Classifier struct {
	tree WindowTree
}

// NewClassifier returns a classifier over the given window tree.
func NewClassifier(tree WindowTree) *Classifier {
	return &Classifier{tree: tree}
}

// SurfaceAt returns the desktop icon-list window for a screen point.
// Strategies are tried in order; the first hit wins. When both fail the
// caller must treat the point as unclassifiable and not toggle.
func (c *Classifier) SurfaceAt(pt platform.Point) (platform.Window, bool) {
	strategies := []func(platform.Point) (platform.Window, bool){
		c.fromCursor,
		c.fromShellHierarchy,
	}
	for _, resolve := range strategies {
		if w, ok := resolve(pt); ok {
			return w, true
		}
	}
	return 0, false
}

// Surface resolves the icon-list window without a cursor position, using
// only the structural shell walk. Used for visibility probing.
func (c *Classifier) Surface() (platform.Window, bool) {
	return c.fromShellHierarchy(platform.Point{})
}

// fromCursor starts at the topmost window under the point and walks the
// parent chain looking for the icon-list class.
func (c *Classifier) fromCursor(pt platform.Point) (platform.Window, bool) {
	w, ok := c.tree.WindowAt(pt)
	if !ok {
		return 0, false
	}
	for depth := 0; depth < maxParentDepth; depth++ {
		if c.tree.ClassName(w) == ClassIconList {
			return w, true
		}
		parent, ok := c.tree.Parent(w)
		if !ok {
			return 0, false
		}
		w = parent
	}
	return 0, false
}

// fromShellHierarchy locates the icon list structurally: Progman's
// SHELLDLL_DefView child when present, otherwise the first WorkerW that
// hosts one. Explorer moves the container between the two depending on
// wallpaper configuration.
func (c *Classifier) fromShellHierarchy(platform.Point) (platform.Window, bool) {
	container, ok := c.shellViewContainer()
	if !ok {
		return 0, false
	}
	return c.tree.FindChild(container, 0, ClassIconList)
}

// shellViewContainer returns the SHELLDLL_DefView window hosting the icon
// list.
func (c *Classifier) shellViewContainer() (platform.Window, bool) {
	if progman, ok := c.tree.FindWindow(ClassProgman); ok {
		if view, ok := c.tree.FindChild(progman, 0, ClassShellView); ok {
			return view, true
		}
	}
	var worker platform.Window
	for {
		next, ok := c.tree.FindChild(0, worker, ClassWorkerW)
		if !ok {
			return 0, false
		}
		worker = next
		if view, ok := c.tree.FindChild(worker, 0, ClassShellView); ok {
			return view, true
		}
	}
}
