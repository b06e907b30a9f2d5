package detect

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToggler_SendsToProgman(t *testing.T) {
	tree := newFakeTree()
	tree.add(100, ClassProgman, 0)

	NewToggler(tree, tree, discardLogger()).Toggle()

	if len(tree.sent) != 1 {
		t.Fatalf("expected 1 command, got %d", len(tree.sent))
	}
	if tree.sent[0].window != 100 || tree.sent[0].command != toggleIconsCommand {
		t.Fatalf("unexpected command %+v", tree.sent[0])
	}
}

func TestToggler_FallsBackToContainerParent(t *testing.T) {
	tree := newFakeTree()
	tree.add(200, ClassWorkerW, 0)
	tree.add(201, ClassShellView, 200)
	tree.add(202, ClassIconList, 201)

	NewToggler(tree, tree, discardLogger()).Toggle()

	if len(tree.sent) != 1 {
		t.Fatalf("expected 1 command, got %d", len(tree.sent))
	}
	if tree.sent[0].window != 200 {
		t.Fatalf("expected command sent to worker 200, got %v", tree.sent[0].window)
	}
}

func TestToggler_NoTargetIsSilentNoop(t *testing.T) {
	tree := newFakeTree()

	NewToggler(tree, tree, discardLogger()).Toggle()

	if len(tree.sent) != 0 {
		t.Fatalf("expected no commands, got %d", len(tree.sent))
	}
}

func TestToggler_SendFailureIsSwallowed(t *testing.T) {
	tree := newFakeTree()
	tree.add(100, ClassProgman, 0)
	tree.sendErr = errors.New("explorer not responding")

	// Must not panic; the next trigger retries from scratch.
	NewToggler(tree, tree, discardLogger()).Toggle()
}

func TestIconsVisible(t *testing.T) {
	tree := newFakeTree()
	tree.add(100, ClassProgman, 0)
	tree.add(101, ClassShellView, 100)
	tree.add(102, ClassIconList, 101)

	if !IconsVisible(tree, tree) {
		t.Fatalf("expected visible icons")
	}

	tree.visible[102] = false
	if IconsVisible(tree, tree) {
		t.Fatalf("expected hidden icons")
	}
}

func TestIconsVisible_UnresolvedSurfaceAssumesVisible(t *testing.T) {
	tree := newFakeTree()
	if !IconsVisible(tree, tree) {
		t.Fatalf("expected visible when the surface cannot be resolved")
	}
}
