package models

type QuestionSet struct {
	ID        string  `bson:"_id,omitempty" json:"id"`
	Criteria  []any   `bson:"criteria" json:"criteria"`
	From      string  `bson:"from" json:"from"`
	To        string  `bson:"to" json:"to"`
	Weight    float64 `bson:"weight" json:"weight"`
	CreatedAt string  `bson:"created_at" json:"created_at"`
	UpdatedAt string  `bson:"updated_at" json:"updated_at"`
}

type CreateQuestionSetInput struct {
	Criteria []any    `json:"criteria" validate:"required,min=1"`
	From     string   `json:"from" validate:"required"`
	To       string   `json:"to" validate:"required"`
	Weight   *float64 `json:"weight"`
}

// UpdateQuestionSetInput: nil means "not sent"; an explicit weight of 0 is applied.
type UpdateQuestionSetInput struct {
	Criteria []any    `json:"criteria"`
	From     *string  `json:"from"`
	To       *string  `json:"to"`
	Weight   *float64 `json:"weight"`
}

type QuestionSetFilter struct {
	From string
	To   string
}
