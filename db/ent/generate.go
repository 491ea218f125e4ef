package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/simdocs-io/report-reconciler/gen/ent",
			Schema:  "ent/schema",
			Features: []gen.Feature{
				gen.FeatureUpsert,
				gen.FeatureLock,
			},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
