package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"molpredict/internal/config"
)

// Applies the schema migrations for the molecules dataset tables.
//
//	go run ./cmd/migrate [-dir db/migrations] up|down|steps N|force V|version
func main() {
	dir := flag.String("dir", "db/migrations", "migrations directory")
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		log.Fatal("missing command: up|down|steps N|force V|version")
	}

	if err := run(*dir, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(dir string, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := migrate.New("file://"+dir, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("open migrations at %s: %w", dir, err)
	}
	defer m.Close()

	switch cmd := args[0]; cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		log.Println("migrations applied")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		log.Println("migrations reverted")

	case "steps":
		n, err := intArg(args, "steps")
		if err != nil {
			return err
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate %d steps: %w", n, err)
		}
		log.Printf("applied %d migration steps", n)

	case "force":
		v, err := intArg(args, "force")
		if err != nil {
			return err
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force version %d: %w", v, err)
		}
		log.Printf("forced schema version %d", v)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("no migrations applied yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		log.Printf("schema version %d (dirty: %v)", version, dirty)

	default:
		return fmt.Errorf("unknown command %q, want up|down|steps N|force V|version", cmd)
	}
	return nil
}

func intArg(args []string, cmd string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s requires a number argument", cmd)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%s argument %q is not a number", cmd, args[1])
	}
	return n, nil
}
