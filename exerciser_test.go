package mutables

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/leanovate/gopter/gen"
)

// The exerciser drives a Store with random Sets and Gets over a fixed
// set of same-depth paths, so no write clobbers another, and checks
// values and hook firings against a plain map.

var exercisedPaths = []interface{}{
	"x.a", "x.b", `x.c\.d`,
	"y.0", "y.1", `y.e\.f`,
	`z\.w.a`, `z\.w.0`, "0.0",
}

var exerciserFires int

type expected struct {
	values map[string]int
	hooked map[string]bool
}

func (e *expected) copy() *expected {
	out := &expected{
		values: make(map[string]int, len(e.values)),
		hooked: make(map[string]bool, len(e.hooked)),
	}
	for k, v := range e.values {
		out.values[k] = v
	}
	for k, v := range e.hooked {
		out.hooked[k] = v
	}
	return out
}

type system struct {
	s     *Store
	fires map[string]int
}

type getResult struct {
	value interface{}
	found bool
	fired int
	err   error
}

type setResult struct {
	fired int
	err   error
}

type setCommand struct {
	path  string
	value int
	hook  bool
}

func (c setCommand) Run(sut commands.SystemUnderTest) commands.Result {
	sys := sut.(*system)
	before := sys.fires[c.path]
	err := sys.s.Set(c.path, c.value, c.hook, c.path)
	return setResult{sys.fires[c.path] - before, err}
}

func (c setCommand) NextState(state commands.State) commands.State {
	next := state.(*expected).copy()
	next.values[c.path] = c.value
	next.hooked[c.path] = c.hook
	return next
}

func (c setCommand) PreCondition(state commands.State) bool { return true }

func (c setCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	r := result.(setResult)
	want := 0
	if c.hook {
		want = 1
	}
	if r.err != nil || r.fired != want {
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (c setCommand) String() string {
	return fmt.Sprintf("Set(%q, %d, %v)", c.path, c.value, c.hook)
}

type getCommand string

func (c getCommand) Run(sut commands.SystemUnderTest) commands.Result {
	sys := sut.(*system)
	path := string(c)
	before := sys.fires[path]
	v, found, err := sys.s.Get(path, path)
	return getResult{v, found, sys.fires[path] - before, err}
}

func (c getCommand) NextState(state commands.State) commands.State { return state }

func (c getCommand) PreCondition(state commands.State) bool { return true }

func (c getCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	e := state.(*expected)
	r := result.(getResult)
	want, present := e.values[string(c)]
	wantFired := 0
	if e.hooked[string(c)] {
		wantFired = 1
	}
	if r.err != nil || r.found != present || r.fired != wantFired {
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	if present && r.value != want {
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	return &gopter.PropResult{Status: gopter.PropTrue}
}

func (c getCommand) String() string {
	return fmt.Sprintf("Get(%q)", string(c))
}

var genSet = gopter.CombineGens(
	gen.OneConstOf(exercisedPaths...),
	gen.IntRange(0, 99_999),
	gen.Bool(),
).Map(func(values []interface{}) commands.Command {
	return setCommand{values[0].(string), values[1].(int), values[2].(bool)}
})

var genGet = gen.OneConstOf(exercisedPaths...).Map(func(path string) commands.Command {
	return getCommand(path)
})

var storeCommands = &commands.ProtoCommands{
	NewSystemUnderTestFunc: func(initialState commands.State) commands.SystemUnderTest {
		sys := &system{s: New("exerciser", nil, nil), fires: map[string]int{}}
		for _, p := range exercisedPaths {
			path := p.(string)
			sys.s.On(path, func(_ *Store, args ...interface{}) error {
				if len(args) != 1 || args[0] != path {
					return fmt.Errorf("handler for %q got args %v", path, args)
				}
				sys.fires[path]++
				return nil
			})
		}
		return sys
	},
	DestroySystemUnderTestFunc: func(sut commands.SystemUnderTest) {
		for _, n := range sut.(*system).fires {
			exerciserFires += n
		}
	},
	InitialStateGen: gen.Const(&expected{values: map[string]int{}, hooked: map[string]bool{}}),
	InitialPreConditionFunc: func(state commands.State) bool {
		_ = state.(*expected)
		return true
	},
	GenCommandFunc: func(state commands.State) gopter.Gen {
		return gen.Weighted(
			[]gen.WeightedGen{
				{Weight: 100, Gen: genSet},
				{Weight: 100, Gen: genGet},
			},
		)
	},
}

func TestExerciser(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	if !testing.Short() {
		parameters.MaxSize = 512
	}
	properties := gopter.NewProperties(parameters)
	properties.Property("store exerciser", commands.Prop(storeCommands))
	properties.TestingRun(t)
	if !t.Failed() {
		t.Logf("hook firings: %d", exerciserFires)
	}
}
