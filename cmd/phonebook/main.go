package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/phonebook-dev/phonebook"
	"github.com/phonebook-dev/phonebook/config"
	"github.com/phonebook-dev/phonebook/shell"
)

func main() {
	buckets := flag.Int("buckets", 0, "bucket count of the table (0 picks the default of 100)")
	flag.Parse()

	cfg := config.Default()
	if *buckets != 0 {
		cfg.Buckets = *buckets
	}

	store, err := phonebook.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("can't create the phonebook")
	}

	if err := shell.New(store, cfg, os.Stdin, os.Stdout).Run(); err != nil {
		log.WithError(err).Fatal("session aborted")
	}
}
