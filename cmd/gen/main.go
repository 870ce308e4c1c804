// Command gen regenerates the type-safe query package used by the postgres
// repositories. Run it from the repository root after changing a model.
package main

import (
	"insulink/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
