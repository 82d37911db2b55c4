package models

type Feedback struct {
	ID           string         `bson:"_id,omitempty" json:"id"`
	Answers      map[string]any `bson:"answers" json:"answers"`
	FromUser     string         `bson:"from_user" json:"from_user"`
	ToUser       string         `bson:"to_user" json:"to_user"`
	OpenFeedback string         `bson:"open_feedback" json:"open_feedback"`
	Tags         []string       `bson:"tags" json:"tags"`
	CreatedAt    string         `bson:"created_at" json:"created_at"`
	UpdatedAt    string         `bson:"updated_at" json:"updated_at"`
}

type CreateFeedbackInput struct {
	Answers      map[string]any `json:"answers" validate:"required,min=1"`
	FromUser     string         `json:"from_user" validate:"required"`
	ToUser       string         `json:"to_user" validate:"required"`
	OpenFeedback string         `json:"open_feedback"`
	Tags         []string       `json:"tags"`
}

// UpdateFeedbackInput: a nil field was not sent. Tags sent as [] clears the tags.
type UpdateFeedbackInput struct {
	Answers      map[string]any `json:"answers"`
	OpenFeedback *string        `json:"open_feedback"`
	Tags         []string       `json:"tags"`
}

type FeedbackFilter struct {
	FromUser string
	ToUser   string
}
