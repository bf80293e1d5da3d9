// Package dotenv loads KEY=value files into the process environment with type inference.
//
// Quick Start:
//
//	store := dotenv.New(sourceenv.OS())
//	if err := store.Load(".env"); err != nil {
//	    log.Fatal(err)
//	}
//
//	port := store.Get("port").IntOr(8080)
//	debug := store.Get("DEBUG").BoolOr(false)
//
// Values are cast by CastValue: "" is null, "quoted" is a string without the
// quotes, true/false are bools, numbers are ints or floats, anything else is a
// string. Keys are upper-cased. Existing values are kept unless WithOverwrite
// is passed.
//
// See example_test.go for detailed usage.
package dotenv
