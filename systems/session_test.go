package systems

import (
	"testing"

	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func TestSessionEndsWhenCampfireDies(t *testing.T) {
	e := newTestWorld(t)
	fire := factory.CreateCampfire(e, 320, 240)
	factory.CreatePlayer(e, 100, 100, factory.DefaultInputConfig(0))

	UpdateSession(e)
	if testSession(e).GameOver {
		t.Fatal("game over while everything is alive")
	}

	components.Health.Get(fire).Current = 0
	UpdateSession(e)
	s := testSession(e)
	if !s.GameOver || s.RestartTimer != restartDelay {
		t.Errorf("game over %v timer %v", s.GameOver, s.RestartTimer)
	}
}

func TestSessionEndsWhenAllPlayersDown(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateCampfire(e, 320, 240)
	p1 := factory.CreatePlayer(e, 100, 100, factory.DefaultInputConfig(0))
	p2 := factory.CreatePlayer(e, 200, 100, factory.DefaultInputConfig(1))

	components.Health.Get(p1).Current = 0
	UpdateSession(e)
	if testSession(e).GameOver {
		t.Fatal("game over with a player still standing")
	}

	components.Health.Get(p2).Current = 0
	UpdateSession(e)
	if !testSession(e).GameOver {
		t.Error("no game over with every player down")
	}
}

func TestRestartDue(t *testing.T) {
	e := newTestWorld(t)
	s := testSession(e)
	s.GameOver = true
	s.RestartTimer = 2 * step

	if RestartDue(e) {
		t.Fatal("restart due before the delay")
	}
	UpdateSession(e)
	UpdateSession(e)
	if !RestartDue(e) {
		t.Errorf("restart not due, timer %v", s.RestartTimer)
	}
}

func TestWithGameplayChecks(t *testing.T) {
	e := newTestWorld(t)
	calls := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { calls++ })

	sys(e)
	testSession(e).GameOver = true
	sys(e)
	if calls != 1 {
		t.Errorf("system ran %d times, want 1", calls)
	}
}

func TestMergeRecords(t *testing.T) {
	r := SavedRecords{BestWave: 5, BestScore: 400, Runs: 2}

	r = MergeRecords(r, 3, 900)
	if r.BestWave != 5 || r.BestScore != 900 || r.Runs != 3 {
		t.Errorf("MergeRecords = %+v", r)
	}
	r = MergeRecords(r, 7, 100)
	if r.BestWave != 7 || r.BestScore != 900 || r.Runs != 4 {
		t.Errorf("MergeRecords = %+v", r)
	}
}

func TestRecordRunWithoutPersistence(t *testing.T) {
	s := &components.SessionData{Score: 250}
	recordRun(s, 4)
	if s.BestWave != 4 || s.BestScore != 250 {
		t.Errorf("bests = %d/%d, want 4/250", s.BestWave, s.BestScore)
	}
}
