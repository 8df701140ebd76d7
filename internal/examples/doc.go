// Package examples holds runnable usage checks for every lodash operation and
// a [Runner] that executes them.
//
// Each [Example] exercises one operation the way a caller would and returns
// an error describing the first expectation that did not hold. The catalogue
// doubles as living documentation and as a smoke test for the CLI in
// cmd/lodash-examples.
package examples
