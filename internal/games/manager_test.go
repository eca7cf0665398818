package games

import "testing"

// scripted is a session whose outcome the test controls directly.
type scripted struct {
	name      string
	done, won bool
	steps     int
	keys      []string
}

func (s *scripted) Name() string   { return s.name }
func (s *scripted) Prompt() string { return "scripted" }
func (s *scripted) Step()          { s.steps++ }
func (s *scripted) HandleKey(key string) {
	s.keys = append(s.keys, key)
}
func (s *scripted) Finished() bool { return s.done }
func (s *scripted) Won() bool      { return s.won }

type result struct {
	won, lost bool
	name      string
}

func recordingManager(factories ...Factory) (*Manager, *[]result) {
	m := NewManager(factories...)
	var results []result
	m.SetResultFunc(func(won, lost bool, name string) {
		results = append(results, result{won, lost, name})
	})
	return m, &results
}

func TestLaunchWithEmptyRegistry(t *testing.T) {
	m, results := recordingManager()
	if s := m.Launch(); s != nil {
		t.Fatalf("empty registry launched %v", s)
	}
	if m.Running() {
		t.Fatal("manager claims a session is running")
	}
	if len(*results) != 0 {
		t.Fatalf("unexpected results %v", *results)
	}
}

func TestOutcomeReportedExactlyOnce(t *testing.T) {
	s := &scripted{name: "fake"}
	m, results := recordingManager(func() Session { return s })

	m.Launch()
	if !m.Running() {
		t.Fatal("session not running after launch")
	}

	m.Update()
	if len(*results) != 0 {
		t.Fatalf("reported before the session finished: %v", *results)
	}

	s.done, s.won = true, true
	m.Update()
	m.Update()
	m.Update()

	if len(*results) != 1 {
		t.Fatalf("got %d reports, want 1", len(*results))
	}
	r := (*results)[0]
	if !r.won || r.lost || r.name != "fake" {
		t.Fatalf("report = %+v", r)
	}
	if m.Running() {
		t.Fatal("finished session still reported as running")
	}
}

func TestRelaunchAbandonsWithoutVerdict(t *testing.T) {
	m, results := recordingManager(func() Session { return &scripted{name: "fake"} })

	m.Launch()
	m.Launch()

	if len(*results) != 1 {
		t.Fatalf("got %d reports, want 1", len(*results))
	}
	r := (*results)[0]
	if r.won || r.lost {
		t.Fatalf("abandonment must carry no verdict, got %+v", r)
	}
	if !m.Running() {
		t.Fatal("replacement session should be live")
	}
}

func TestHandleKeyRouting(t *testing.T) {
	s := &scripted{name: "fake"}
	m, _ := recordingManager(func() Session { return s })

	if m.HandleKey("x") {
		t.Fatal("consumed a key with no session")
	}

	m.Launch()
	if !m.HandleKey("x") {
		t.Fatal("live session refused the key")
	}
	if len(s.keys) != 1 || s.keys[0] != "x" {
		t.Fatalf("session saw keys %v", s.keys)
	}
}

func TestUpdateStepsTheSession(t *testing.T) {
	s := &scripted{name: "fake"}
	m, _ := recordingManager(func() Session { return s })

	m.Launch()
	for i := 0; i < 5; i++ {
		m.Update()
	}
	if s.steps != 5 {
		t.Fatalf("session stepped %d times, want 5", s.steps)
	}
}
