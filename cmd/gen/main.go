package main

import (
	"atlas/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.BusinessProfileModel{},
		model.CategoryModel{},
		model.UserFollowModel{},
		model.SocialNetworkModel{},
		model.NotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
