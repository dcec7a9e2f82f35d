package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fieldgate/fieldgate/internal/eventbus"
	"github.com/fieldgate/fieldgate/internal/executor"
	"github.com/fieldgate/fieldgate/internal/language"
	"github.com/fieldgate/fieldgate/internal/lint"
	"github.com/fieldgate/fieldgate/internal/otel"
	"github.com/fieldgate/fieldgate/internal/schema"
	"github.com/fieldgate/fieldgate/internal/server"
)

const rootUsage = `fieldgate — schema-directive middleware & tools

USAGE:
  fieldgate <command> [flags]

COMMANDS:
  serve   Serve a GraphQL schema over HTTP with map-backed resolvers
  lint    Check that fields of target types carry required directives
  help    Show help for any command
`

const serveUsage = `serve FLAGS:
  -schema <file>             GraphQL SDL file (required)
  -data <file>               JSON document used as the root value
  -addr <addr>               HTTP listen address (default: :8080)
  -pretty                    Pretty-print JSON responses
  -timeout <duration>        Per-request timeout, e.g. 10s (default: 10s)
  -cors <origin>             Allowed CORS origin. Repeatable
  -otel.endpoint <addr>      OTLP collector endpoint
  -otel.service <name>       OpenTelemetry service name (default: fieldgate)
`

const lintUsage = `lint FLAGS:
  -schema <file>   GraphQL SDL file. Repeatable
  -require <name>  Required directive name (without @). Repeatable
  -type <name>     Target object type name. Repeatable (default: Query, Mutation)
  (Exits non-zero when any field of a target type lacks all required directives)
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "serve":
		return serveCmd(args[1:])
	case "lint":
		return lintCmd(args[1:], out)
	case "help", "-h", "--help":
		helpCmd(args[1:])
		return nil
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func helpCmd(args []string) {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return
	}
	switch args[0] {
	case "serve":
		fmt.Print(serveUsage)
	case "lint":
		fmt.Print(lintUsage)
	default:
		fmt.Print(rootUsage)
	}
}

// stringList collects repeatable string flags.
type stringList []string

func (l *stringList) String() string { return fmt.Sprint([]string(*l)) }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func serveCmd(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	schemaPath := fs.String("schema", "", "")
	dataPath := fs.String("data", "", "")
	addr := fs.String("addr", ":8080", "")
	pretty := fs.Bool("pretty", false, "")
	timeout := fs.Duration("timeout", 10*time.Second, "")
	var cors stringList
	fs.Var(&cors, "cors", "")
	otelEndpoint := fs.String("otel.endpoint", "", "")
	otelService := fs.String("otel.service", "fieldgate", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}
	if *schemaPath == "" {
		fmt.Fprint(os.Stderr, serveUsage)
		return fmt.Errorf("-schema is required")
	}

	sdl, err := os.ReadFile(*schemaPath)
	if err != nil {
		return err
	}
	sch, err := schema.BuildFromSDL(string(sdl))
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}

	var root any
	if *dataPath != "" {
		raw, err := os.ReadFile(*dataPath)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &root); err != nil {
			return fmt.Errorf("parse root data: %w", err)
		}
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(*otelEndpoint, *otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	exec := executor.NewExecutor(executor.NewSourceRuntime(), sch)
	opts := []server.Option{
		server.WithTimeout(*timeout),
		server.WithRootValue(root),
	}
	if *pretty {
		opts = append(opts, server.WithPretty())
	}
	if len(cors) > 0 {
		opts = append(opts, server.WithCORS(cors...))
	}

	log.Printf("listening on %s", *addr)
	return http.ListenAndServe(*addr, server.New(exec, opts...))
}

func lintCmd(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	var schemas, required, types stringList
	fs.Var(&schemas, "schema", "")
	fs.Var(&required, "require", "")
	fs.Var(&types, "type", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, lintUsage)
		return err
	}
	if len(schemas) == 0 {
		fmt.Fprint(os.Stderr, lintUsage)
		return fmt.Errorf("at least one -schema is required")
	}
	if len(required) == 0 {
		fmt.Fprint(os.Stderr, lintUsage)
		return fmt.Errorf("at least one -require is required")
	}
	if len(types) == 0 {
		types = stringList{"Query", "Mutation"}
	}

	total := 0
	for _, path := range schemas {
		sdl, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := language.ParseSchema(path, string(sdl))
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		for _, v := range lint.RequireDirectives(doc, required, types) {
			if v.Position != nil && v.Position.Src != nil {
				fmt.Fprintf(out, "%s %s:%d:%d\n", v, v.Position.Src.Name, v.Position.Line, v.Position.Column)
			} else {
				fmt.Fprintln(out, v)
			}
			total++
		}
	}
	if total > 0 {
		return fmt.Errorf("%d field(s) missing a required directive", total)
	}
	return nil
}
