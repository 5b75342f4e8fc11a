package jobposting

import (
	"fmt"
	"strconv"
)

// Field bounds for job posting input.
const (
	MaxJobTitleLength       = 200
	MinJobTitleLength       = 2
	MaxDescriptionLength    = 20000
	MaxDepartmentLength     = 100
	MaxLocationLength       = 200
	MaxEmploymentTypeLength = 50
	MaxSkills               = 50
	MaxSkillLength          = 100

	MaxNameLength        = 100
	MaxImageLength       = 2048
	MaxCategoryLength    = 100
	MaxQuestionLength    = 500
	MaxRoleLength        = 100
	MaxAvatarColorLength = 32
)

func asObject(input any) (map[string]any, bool) {
	obj, ok := input.(map[string]any)
	return obj, ok && obj != nil
}

func indexed(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}

func nested(parent, field string) string {
	return fmt.Sprintf("%s.%s", parent, field)
}
