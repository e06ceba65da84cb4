package assets_test

import (
	"testing"

	"github.com/minelaunch/minelaunch/internal/assets"
	"github.com/minelaunch/minelaunch/internal/store"
)

func TestPlan_Vanilla(t *testing.T) {
	s := store.New("/game")
	idx := &assets.Index{
		Objects: map[string]assets.Object{
			"icons/icon_16x16.png": {Hash: "abcdef0123456789", Size: 10},
		},
	}

	tasks := assets.Plan(s, "17", idx)
	if len(tasks) != 1 {
		t.Fatalf("Plan() = %d tasks, want 1 (non-virtual, non-resources index)", len(tasks))
	}
	task := tasks[0]
	if task.Kind != assets.Download {
		t.Errorf("Kind = %v, want Download", task.Kind)
	}
	if task.ExpectedSha1 != "abcdef0123456789" {
		t.Errorf("ExpectedSha1 = %q", task.ExpectedSha1)
	}
}

func TestPlan_Virtual(t *testing.T) {
	s := store.New("/game")
	idx := &assets.Index{
		Virtual: true,
		Objects: map[string]assets.Object{
			"sound/click.ogg": {Hash: "deadbeef00112233", Size: 42},
		},
	}

	tasks := assets.Plan(s, "legacy", idx)
	if len(tasks) != 2 {
		t.Fatalf("Plan() = %d tasks, want 2 (download + virtual copy)", len(tasks))
	}

	kinds := map[assets.TaskKind]int{}
	for _, task := range tasks {
		kinds[task.Kind]++
	}
	if kinds[assets.Download] != 1 || kinds[assets.Copy] != 1 {
		t.Errorf("task kinds = %v, want one Download and one Copy", kinds)
	}
}
