// Package sourcefile reads KEY=value environment files.
//
// One assignment per line, split on the first '='. Blank lines are dropped and
// lines without '=' are skipped. No comments, quoting or interpolation is
// interpreted here; values are returned raw.
//
// Example:
//
//	file, err := sourcefile.Read(".env", sourcefile.Options{})
//	for _, a := range file.Assignments {
//	    fmt.Println(a.Line, a.Key, a.Value)
//	}
package sourcefile
