package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
	_ "github.com/gogpu/drawing/recording/backends/tree" // replay target
	"github.com/gogpu/drawing/verify"
)

// ErrUnknownScenario is returned by Lookup and Run for names that were
// never registered.
var ErrUnknownScenario = errors.New("scenario: unknown scenario")

// Target selects what a scenario's recorder draws into.
type Target uint8

const (
	// TargetVisual records through a DrawingVisual's RenderOpen context.
	TargetVisual Target = iota

	// TargetGroup records through a DrawingGroup's Open context and may
	// reopen it with Open or Append.
	TargetGroup
)

func (t Target) String() string {
	switch t {
	case TargetVisual:
		return "visual"
	case TargetGroup:
		return "group"
	}
	return fmt.Sprintf("Target(%d)", t)
}

// Scenario is a named sequence of recorder calls.
type Scenario struct {
	Name        string
	Description string
	Target      Target

	// Record issues the drawing calls. The recorder is finished by Run.
	Record func(rec *recording.Recorder) error
}

// Result is the outcome of running one scenario.
type Result struct {
	Name      string
	Recording *recording.Recording

	// Mismatches found in the recorded tree.
	Mismatches []verify.Mismatch

	// ReplayMismatches found in the tree rebuilt by playback. Empty
	// unless the scenario ran WithReplay.
	ReplayMismatches []verify.Mismatch
}

// Passed reports whether no mismatch was found.
func (r Result) Passed() bool {
	return len(r.Mismatches) == 0 && len(r.ReplayMismatches) == 0
}

var (
	mu        sync.RWMutex
	scenarios = make(map[string]Scenario)
)

// Register makes a scenario available by name.
// If Register is called twice with the same name or if Record is nil,
// it panics.
func Register(name string, s Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if s.Record == nil {
		panic("scenario: Register scenario is nil")
	}
	if _, dup := scenarios[name]; dup {
		panic("scenario: Register called twice for scenario " + name)
	}
	s.Name = name
	scenarios[name] = s
}

// Lookup returns the scenario registered under name.
func Lookup(name string) (Scenario, error) {
	mu.RLock()
	s, ok := scenarios[name]
	mu.RUnlock()

	if !ok {
		return Scenario{}, fmt.Errorf("%w %q", ErrUnknownScenario, name)
	}
	return s, nil
}

// Names returns a sorted list of the registered scenario names.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered scenarios sorted by name.
func All() []Scenario {
	names := Names()

	mu.RLock()
	defer mu.RUnlock()

	all := make([]Scenario, 0, len(names))
	for _, name := range names {
		all = append(all, scenarios[name])
	}
	return all
}

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	replay   bool
	reporter verify.Reporter
	logger   *slog.Logger
}

// WithReplay also plays the recording back onto the "tree" backend and
// verifies the rebuilt tree against the same commands.
func WithReplay() RunOption {
	return func(c *runConfig) {
		c.replay = true
	}
}

// WithReporter passes r to the verifier.
func WithReporter(r verify.Reporter) RunOption {
	return func(c *runConfig) {
		c.reporter = r
	}
}

// WithLogger sets the logger used for the scenario, its recorder and the
// verifier.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run looks up the named scenario and runs it.
func Run(name string, opts ...RunOption) (Result, error) {
	s, err := Lookup(name)
	if err != nil {
		return Result{Name: name}, err
	}
	return s.Run(opts...)
}

// Run records the scenario, finishes the recorder and verifies the tree
// against the commands.
func (s Scenario) Run(opts ...RunOption) (Result, error) {
	cfg := runConfig{logger: drawing.Logger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With("scenario", s.Name)
	res := Result{Name: s.Name}

	log.Info("scenario: start", "target", s.Target)

	var rec *recording.Recorder
	switch s.Target {
	case TargetGroup:
		rec = recording.NewGroupRecorder(drawing.NewDrawingGroup(), recording.WithLogger(cfg.logger))
	default:
		rec = recording.NewVisualRecorder(drawing.NewDrawingVisual(), recording.WithLogger(cfg.logger))
	}
	if err := s.Record(rec); err != nil {
		return res, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	r, err := rec.Finish()
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	res.Recording = r

	v := verify.New(verify.WithLogger(cfg.logger), verify.WithReporter(cfg.reporter))
	res.Mismatches, err = v.Verify(r.Root(), r.Commands())
	if err != nil {
		return res, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	if cfg.replay {
		root, err := replay(r)
		if err != nil {
			return res, fmt.Errorf("scenario %s: replay: %w", s.Name, err)
		}
		res.ReplayMismatches, err = v.Verify(root, r.Commands())
		if err != nil {
			return res, fmt.Errorf("scenario %s: replay: %w", s.Name, err)
		}
	}

	log.Info("scenario: done",
		"commands", r.Len(),
		"mismatches", len(res.Mismatches),
		"replay_mismatches", len(res.ReplayMismatches),
		"passed", res.Passed())
	return res, nil
}

func replay(r *recording.Recording) (*drawing.DrawingGroup, error) {
	b, err := recording.NewBackend("tree")
	if err != nil {
		return nil, err
	}
	db, ok := b.(recording.DrawingBackend)
	if !ok {
		return nil, fmt.Errorf("backend %T does not produce a drawing", b)
	}
	if err := r.Playback(db); err != nil {
		return nil, err
	}
	return db.Drawing(), nil
}
