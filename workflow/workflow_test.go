// workflow_test.go -- test harness for the workflow runner
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.
package workflow

import (
	"errors"
	"strings"
	"testing"
)

func recordStage(trace *[]string, nm string, err error) Stage {
	return func(_, _ string, _ Nodes) error {
		*trace = append(*trace, nm)
		return err
	}
}

func TestRunChainOrder(t *testing.T) {
	assert := newAsserter(t)

	var trace []string
	second := &Workflow{
		Setup:    recordStage(&trace, "setup2", nil),
		Execute:  recordStage(&trace, "exec2", nil),
		Teardown: recordStage(&trace, "down2", nil),
	}
	first := &Workflow{
		Setup:    recordStage(&trace, "setup1", nil),
		Execute:  recordStage(&trace, "exec1", nil),
		Teardown: recordStage(&trace, "down1", nil),
		Next:     second,
	}

	err := Run(first, "primary", "L1", Nodes{})
	assert(err == nil, "run: %s", err)

	want := "setup1 setup2 exec1 exec2 down1 down2"
	have := strings.Join(trace, " ")
	assert(have == want, "order: have %q, want %q", have, want)
}

func TestRunAborts(t *testing.T) {
	assert := newAsserter(t)

	bad := errors.New("stage failed")
	var trace []string
	second := &Workflow{
		Execute: recordStage(&trace, "exec2", nil),
	}
	first := &Workflow{
		Execute: recordStage(&trace, "exec1", bad),
		Next:    second,
	}

	err := Run(first, "primary", "L1", Nodes{})
	assert(errors.Is(err, bad), "run: %s", err)
	assert(len(trace) == 1, "later stages ran after abort: %v", trace)
}

func TestNodes(t *testing.T) {
	assert := newAsserter(t)

	n := Nodes{}
	n.Put(NodeLabel, "L1")
	n.Put(NodeBackup, 42)

	assert(n.GetString(NodeLabel) == "L1", "getstring: %q", n.GetString(NodeLabel))
	assert(n.GetString(NodeBackup) == "", "getstring on non-string: %q", n.GetString(NodeBackup))
	assert(n.Get(NodeBackup) == any(42), "get: %v", n.Get(NodeBackup))

	n.Remove(NodeBackup)
	assert(n.Get(NodeBackup) == nil, "remove left value")
}
