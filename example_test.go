package dotenv_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/osaru07m/dotenv"
	"github.com/osaru07m/dotenv/sourceenv"
)

// writeExampleFile writes content to a temporary .env file and returns its path.
func writeExampleFile(content string) (string, func()) {
	dir, err := os.MkdirTemp("", "dotenv-example")
	if err != nil {
		log.Fatal(err)
	}
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		log.Fatal(err)
	}
	return path, func() { os.RemoveAll(dir) }
}

// Example demonstrates loading a file and reading typed values.
func Example() {
	path, cleanup := writeExampleFile(`APP_NAME="demo service"
PORT=8080
DEBUG=true
RATIO=0.75
`)
	defer cleanup()

	// An in-memory environment keeps the example away from the real process env.
	store := dotenv.New(sourceenv.NewMap(nil))
	if err := store.Load(path); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("App: %s\n", store.Get("app_name").TextOr("unknown"))
	fmt.Printf("Port: %d\n", store.Get("PORT").IntOr(80))
	fmt.Printf("Debug: %v\n", store.Get("DEBUG").BoolOr(false))
	fmt.Printf("Ratio: %.2f\n", store.Get("RATIO").FloatOr(1))

	// Output:
	// App: demo service
	// Port: 8080
	// Debug: true
	// Ratio: 0.75
}

// ExampleStore_Load_overwrite shows that existing values win unless WithOverwrite is passed.
func ExampleStore_Load_overwrite() {
	path, cleanup := writeExampleFile("PORT=8080\n")
	defer cleanup()

	env := sourceenv.NewMap(map[string]string{"PORT": "9000"})
	store := dotenv.New(env)

	_ = store.Load(path)
	fmt.Println("default:", store.Get("PORT"))

	_ = store.Load(path, dotenv.WithOverwrite())
	fmt.Println("overwrite:", store.Get("PORT"))

	// Output:
	// default: 9000
	// overwrite: 8080
}

// ExampleStore_Load_missingFile shows the single error kind Load reports.
func ExampleStore_Load_missingFile() {
	store := dotenv.New(sourceenv.NewMap(nil))

	err := store.Load("/nonexistent/path/.env")
	var notFound *dotenv.FileNotFoundError
	if errors.As(err, &notFound) {
		fmt.Println("missing:", notFound.Path)
	}

	// Output:
	// missing: /nonexistent/path/.env
}

// ExampleCastValue shows the inferred kind for common inputs.
func ExampleCastValue() {
	for _, raw := range []string{"", `"42"`, "TRUE", "42", "3.14", "hello world"} {
		v := dotenv.CastValue(raw)
		fmt.Printf("%-13q %-6s %v\n", raw, v.Kind(), v.Any())
	}

	// Output:
	// ""            null   <nil>
	// "\"42\""      string 42
	// "TRUE"        bool   true
	// "42"          int    42
	// "3.14"        float  3.14
	// "hello world" string hello world
}

// ExampleDump shows writing loaded values with their sources.
func ExampleDump() {
	path, cleanup := writeExampleFile("HOST=localhost\nPASSWORD=hunter2\n")
	defer cleanup()

	store := dotenv.New(sourceenv.NewMap(nil))
	if err := store.Load(path); err != nil {
		log.Fatal(err)
	}
	_ = store.Set("workers", dotenv.IntValue(4))

	if err := dotenv.Dump(os.Stdout, store, dotenv.WithSources(), dotenv.WithRedact("password")); err != nil {
		log.Fatal(err)
	}

	// Output:
	// HOST=localhost (source: file:.env:1)
	// PASSWORD=***redacted*** (source: file:.env:2)
	// WORKERS=4 (source: set)
}
