package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/zacharvey88/teatime-collective-sub000/model"
)

// GenerateUniqueCakeSlug builds a URL slug from the cake name, suffixing a
// counter until it is unique in the cakes table.
func GenerateUniqueCakeSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Cake{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
