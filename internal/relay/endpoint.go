// Package relay resolves upstream run endpoints and dispatches run-creation
// calls to the agent/workflow execution service.
package relay

import "strings"

// WorkflowPrefix marks identifiers that target the workflows collection.
const WorkflowPrefix = "wf_"

// RunsURL maps a configured agent or workflow identifier to its run-creation
// URL. Identifiers with the wf_ prefix target the workflows collection;
// everything else, including unknown prefixes, falls through to the agents
// collection and is left for the upstream to reject. Total over all inputs.
func RunsURL(base, identifier string) string {
	base = strings.TrimSuffix(base, "/")
	if strings.HasPrefix(identifier, WorkflowPrefix) {
		return base + "/workflows/" + identifier + "/runs"
	}
	return base + "/agents/" + identifier + "/runs"
}

// TargetCollection names the upstream collection an identifier resolves to.
// Used as a metric label.
func TargetCollection(identifier string) string {
	if strings.HasPrefix(identifier, WorkflowPrefix) {
		return "workflows"
	}
	return "agents"
}
