// Command import bulk-loads legacy approved names from a YAML file into
// the directory. Imported rows share one batch id and are searched
// exactly like workflow approvals.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/linskybing/naming-go/config"
	"github.com/linskybing/naming-go/db"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/services"
	"gopkg.in/yaml.v2"
)

func main() {
	file := flag.String("file", "", "path to the YAML file of legacy approved names")
	flag.Parse()

	if *file == "" {
		log.Fatal("usage: import -file legacy_names.yaml")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	var entries []services.LegacyEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}
	if len(entries) == 0 {
		log.Fatal("no entries to import")
	}

	config.LoadConfig()
	db.Init()

	svc := services.NewApprovedNameService(repositories.New())
	batchID, count, err := svc.ImportLegacy(entries)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("imported %d approved names (batch %s)", count, batchID)
}
