package registry_test

import (
	"testing"

	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

type stubGame struct{}

func (stubGame) ID() string { return "stub" }
func (stubGame) Title() string { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	registry.Register(registry.GameInfo{ID: "stub", Title: "Stub"}, func() registry.Game { return stubGame{} })

	if !registry.Exists("stub") {
		t.Fatal("Exists(stub) = false after Register")
	}

	g, err := registry.Create("stub")
	if err != nil {
		t.Fatalf("Create(stub) error = %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q, expected Stub", g.Title())
	}
	if _, ok := g.(registry.GestureGame); ok {
		t.Error("stub should not be a GestureGame")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registry.Register(registry.GameInfo{ID: "dup", Title: "Dup"}, func() registry.Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("second Register(dup) did not panic")
		}
	}()
	registry.Register(registry.GameInfo{ID: "dup", Title: "Dup"}, func() registry.Game { return stubGame{} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("missing"); err == nil {
		t.Error("Create(missing) expected error")
	}
	if registry.Exists("missing") {
		t.Error("Exists(missing) = true")
	}
}

func TestSlicerRegistration(t *testing.T) {
	high := slicer.NewHighScore()
	slicer.Register(high)

	g, err := registry.Create(slicer.GameID)
	if err != nil {
		t.Fatalf("Create(%s) error = %v", slicer.GameID, err)
	}
	if _, ok := g.(registry.GestureGame); !ok {
		t.Errorf("%T does not implement GestureGame", g)
	}

	found := false
	for _, info := range registry.List() {
		if info.ID == slicer.GameID && info.Title == slicer.GameTitle {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %v, expected slicer entry", registry.List())
	}
}

func TestListSorted(t *testing.T) {
	games := registry.List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
