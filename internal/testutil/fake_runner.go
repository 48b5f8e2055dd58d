package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Call records one invocation handed to a FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner is an execx.Runner that records every invocation and fails any
// command whose rendered form matches a configured failure substring.
type FakeRunner struct {
	mu       sync.Mutex
	calls    []Call
	failures []string
	outputs  map[string][]byte
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{outputs: map[string][]byte{}}
}

// FailOn makes any command whose command line contains the given substring
// return an error.
func (f *FakeRunner) FailOn(substrings ...string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, substrings...)
	return f
}

// RespondWith sets the Output result for commands containing the substring.
func (f *FakeRunner) RespondWith(substring string, output []byte) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[substring] = output
	return f
}

func (f *FakeRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	call := Call{Dir: dir, Name: name, Args: args}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)

	for _, substring := range f.failures {
		if strings.Contains(call.String(), substring) {
			return fmt.Errorf("command failed: %s", call)
		}
	}
	return nil
}

func (f *FakeRunner) Output(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	if err := f.Run(ctx, dir, name, args...); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	line := Call{Dir: dir, Name: name, Args: args}.String()
	for substring, output := range f.outputs {
		if strings.Contains(line, substring) {
			return output, nil
		}
	}
	return nil, nil
}

// Calls returns a copy of the recorded invocations.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CommandLines renders each recorded call as "name arg arg".
func (f *FakeRunner) CommandLines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}
