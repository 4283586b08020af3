// workflow.go - three-stage workflow runner
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

// Package workflow coordinates multi-step backup maintenance
// operations. A workflow is a setup/execute/teardown triple; chains
// of workflows share a node map carrying the paths and records the
// stages hand to each other. The package also owns the per-server
// exclusion flags that keep backup and delete from overlapping.
package workflow

// Stage is one phase function of a workflow. A non-nil error aborts
// the chain.
type Stage func(server, identifier string, nodes Nodes) error

// Workflow is a three-stage unit of a maintenance operation. Only
// Execute usually carries behavior; Setup and Teardown log. Next
// chains further workflows behind this one.
type Workflow struct {
	Setup    Stage
	Execute  Stage
	Teardown Stage
	Next     *Workflow
}

// Run drives the chain starting at 'wf': all Setup stages in chain
// order, then all Execute stages, then all Teardown stages. The first
// failing stage aborts the run.
func Run(wf *Workflow, server, identifier string, nodes Nodes) error {
	for w := wf; w != nil; w = w.Next {
		if err := call(w.Setup, server, identifier, nodes); err != nil {
			return err
		}
	}

	for w := wf; w != nil; w = w.Next {
		if err := call(w.Execute, server, identifier, nodes); err != nil {
			return err
		}
	}

	for w := wf; w != nil; w = w.Next {
		if err := call(w.Teardown, server, identifier, nodes); err != nil {
			return err
		}
	}
	return nil
}

func call(s Stage, server, identifier string, nodes Nodes) error {
	if s == nil {
		return nil
	}
	return s(server, identifier, nodes)
}
