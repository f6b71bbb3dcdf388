// Package verify checks that a drawing tree is exactly the tree described
// by a flat command list.
//
// The command list is read as a pre-order linearization: each leaf node
// consumes one Draw command, and each pushed group consumes one Push
// command, its children, and one Pop. DrawDrawing stands for a whole
// subtree, which is compared by value instead of being matched further.
//
// # Usage
//
//	r, _ := rec.Finish()
//	mismatches, err := verify.Verify(r.Root(), r.Commands())
//	for _, m := range mismatches {
//	    fmt.Println(m)
//	}
//
// A Reporter receives mismatches as they are found:
//
//	var c verify.Collector
//	v := verify.New(verify.WithReporter(&c), verify.WithLogger(logger))
//	v.Verify(root, cmds)
//
// # Recovery
//
// Verification does not stop at the first mismatch. When a node meets a
// command it cannot consume, the command is skipped (a whole bracket for
// a Push, nothing for a Pop) and the next node is tried. A group whose
// content is followed by something other than Pop reports it once and
// skips to the balancing Pop.
//
// Matching never backtracks, so one misplaced node can be reported more
// than once. A sibling recorded inside a bracket instead of after it
// yields "expected Pop(), got ..." for the group, then "got end of
// commands" for the sibling whose command was skipped with the bracket.
package verify
