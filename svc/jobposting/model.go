package jobposting

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserRef identifies the author of a posting. Every field is optional and
// nil when absent from the input.
type UserRef struct {
	Name  *string `json:"name,omitempty" bson:"name,omitempty"`
	Email *string `json:"email,omitempty" bson:"email,omitempty"`
	Image *string `json:"image,omitempty" bson:"image,omitempty"`
}

// Question is a screening question group shown to applicants.
type Question struct {
	ID                 int      `json:"id" bson:"id"`
	Category           string   `json:"category" bson:"category"`
	QuestionCountToAsk *int     `json:"questionCountToAsk" bson:"question_count_to_ask"`
	Questions          []string `json:"questions" bson:"questions"`
}

// TeamMember is a member of the hiring team.
type TeamMember struct {
	ID            int    `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name"`
	Email         string `json:"email" bson:"email"`
	Role          string `json:"role" bson:"role"`
	Avatar        string `json:"avatar" bson:"avatar"`
	AvatarColor   string `json:"avatarColor" bson:"avatar_color"`
	IsCurrentUser bool   `json:"isCurrentUser" bson:"is_current_user"`
}

// JobPosting is the sanitized, fully typed record produced by
// ValidateJobPosting. Description may contain the rich text allow-list;
// every other string is plain text.
type JobPosting struct {
	ID              bson.ObjectID `json:"id,omitzero" bson:"_id,omitempty"`
	JobTitle        string        `json:"jobTitle" bson:"job_title"`
	Description     string        `json:"description" bson:"description"`
	DescriptionText string        `json:"descriptionText" bson:"description_text"`
	Department      string        `json:"department" bson:"department"`
	Location        string        `json:"location" bson:"location"`
	EmploymentType  string        `json:"employmentType" bson:"employment_type"`
	Remote          bool          `json:"remote" bson:"remote"`
	MinimumSalary   *float64      `json:"minimumSalary" bson:"minimum_salary"`
	MaximumSalary   *float64      `json:"maximumSalary" bson:"maximum_salary"`
	Skills          []string      `json:"skills" bson:"skills"`
	OrgID           bson.ObjectID `json:"orgID" bson:"org_id"`
	CreatedBy       *UserRef      `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	Questions       []Question    `json:"questions" bson:"questions"`
	TeamMembers     []TeamMember  `json:"teamMembers" bson:"team_members"`
	CreatedAt       time.Time     `json:"createdAt,omitzero" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt,omitzero" bson:"updated_at"`
}
