// Package crew implements the sequential task pipeline. A Task binds
// instructions and a success rubric to one agent; a Crew executes its tasks
// strictly in order, threading each task's output into the next task's
// prompt and returning the final task's output.
//
// Failure anywhere aborts the whole run: the first task error is wrapped in
// an *AbortError carrying the zero-based task position and returned without
// executing later tasks. There is no partial-success result, no retry and
// no rollback; tasks have no externally visible side effects besides their
// returned text and progress logging.
package crew
