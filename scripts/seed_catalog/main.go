// Command seed_catalog loads a department course catalog document into the
// record store. Catalogs are maintained outside the API, so this is the
// supported way to install or replace one:
//
//	go run ./scripts/seed_catalog -collection csc_first_semester -file catalog.json
//
// The input file must hold either a {"courses": {"<level>": [...]}} map or a
// flat course list, matching what the catalog endpoint serves.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/campusware/portal-api/pkg/config"
	"github.com/campusware/portal-api/pkg/recordstore"
)

func main() {
	collection := flag.String("collection", "", "catalog collection name, e.g. csc_first_semester")
	file := flag.String("file", "", "path to the catalog JSON document")
	flag.Parse()

	if *collection == "" || *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*collection, *file); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	fmt.Printf("seeded %s from %s\n", *collection, *file)
}

func run(collection, file string) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var doc json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var store recordstore.Store
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pg, err := recordstore.NewPostgres(cfg.Database)
		if err != nil {
			return err
		}
		defer pg.Close() //nolint:errcheck
		store = pg
	default:
		fs, err := recordstore.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return err
		}
		store = fs
	}

	return store.Write(context.Background(), collection, doc)
}
