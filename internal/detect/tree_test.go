package detect

import (
	"github.com/a632079/desktoggle/internal/platform"
)

// fakeTree is an in-memory window hierarchy for classifier, toggler and
// detector tests.
type fakeTree struct {
	class    map[platform.Window]string
	parent   map[platform.Window]platform.Window
	topLevel []platform.Window
	children map[platform.Window][]platform.Window
	at       map[platform.Point]platform.Window
	atFunc   func(platform.Point) (platform.Window, bool)
	visible  map[platform.Window]bool
	hitIndex map[platform.Window]int
	sent     []sentCommand
	sendErr  error
}

type sentCommand struct {
	window  platform.Window
	command uint16
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		class:    make(map[platform.Window]string),
		parent:   make(map[platform.Window]platform.Window),
		children: make(map[platform.Window][]platform.Window),
		at:       make(map[platform.Point]platform.Window),
		visible:  make(map[platform.Window]bool),
		hitIndex: make(map[platform.Window]int),
	}
}

// add registers a window. A zero parent makes it top-level; creation order
// follows call order.
func (f *fakeTree) add(id platform.Window, class string, parent platform.Window) {
	f.class[id] = class
	if parent == 0 {
		f.topLevel = append(f.topLevel, id)
	} else {
		f.parent[id] = parent
		f.children[parent] = append(f.children[parent], id)
	}
	f.visible[id] = true
}

func (f *fakeTree) WindowAt(pt platform.Point) (platform.Window, bool) {
	if f.atFunc != nil {
		return f.atFunc(pt)
	}
	w, ok := f.at[pt]
	return w, ok
}

func (f *fakeTree) ClassName(w platform.Window) string {
	return f.class[w]
}

func (f *fakeTree) Parent(w platform.Window) (platform.Window, bool) {
	p, ok := f.parent[w]
	return p, ok
}

func (f *fakeTree) FindWindow(class string) (platform.Window, bool) {
	return f.findIn(f.topLevel, 0, class)
}

func (f *fakeTree) FindChild(parent, after platform.Window, class string) (platform.Window, bool) {
	list := f.topLevel
	if parent != 0 {
		list = f.children[parent]
	}
	return f.findIn(list, after, class)
}

func (f *fakeTree) findIn(list []platform.Window, after platform.Window, class string) (platform.Window, bool) {
	started := after == 0
	for _, w := range list {
		if !started {
			if w == after {
				started = true
			}
			continue
		}
		if f.class[w] == class {
			return w, true
		}
	}
	return 0, false
}

func (f *fakeTree) IsVisible(w platform.Window) bool {
	return f.visible[w]
}

func (f *fakeTree) HitTestItem(list platform.Window, pt platform.Point) int {
	if idx, ok := f.hitIndex[list]; ok {
		return idx
	}
	return -1
}

func (f *fakeTree) SendCommand(w platform.Window, command uint16) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentCommand{window: w, command: command})
	return nil
}
