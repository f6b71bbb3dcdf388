// Package scenario holds a catalog of recording scenarios and runs them
// through the verifier.
//
// Each scenario issues a fixed series of recorder calls against a fresh
// DrawingVisual or DrawingGroup. Run finishes the recorder and checks the
// resulting tree against the recorded commands:
//
//	res, err := scenario.Run("structure/05", scenario.WithReplay())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range res.Mismatches {
//	    fmt.Println(m)
//	}
//
// The "structure/NN" scenarios cover every draw and push operation, nested
// and unbalanced brackets, animation clocks, nil payloads, and reopening a
// group with Open and Append.
package scenario
