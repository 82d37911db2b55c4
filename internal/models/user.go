package models

// User is keyed by the Google account uid. Position and Seniority stay nil
// until the user completes onboarding.
type User struct {
	GoogleUID string  `bson:"_id,omitempty" json:"googleUid"`
	Name      string  `bson:"name" json:"name"`
	Email     string  `bson:"email" json:"email"`
	Picture   *string `bson:"picture" json:"picture"`
	Position  *string `bson:"position" json:"position"`
	Seniority *string `bson:"seniority" json:"seniority"`
	IsAdmin   bool    `bson:"isAdmin" json:"isAdmin"`
	CreatedAt int64   `bson:"createdAt" json:"createdAt"`
}

// OnboardingPending reports whether position or seniority is still unset.
func (u *User) OnboardingPending() bool {
	return u.Position == nil || u.Seniority == nil
}

// UserView is the public projection returned by the login and profile endpoints.
type UserView struct {
	GoogleUID string  `json:"googleUid"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Picture   *string `json:"picture"`
	Position  *string `json:"position"`
	Seniority *string `json:"seniority"`
	IsAdmin   bool    `json:"isAdmin"`
}

func (u *User) View() UserView {
	return UserView{
		GoogleUID: u.GoogleUID,
		Name:      u.Name,
		Email:     u.Email,
		Picture:   u.Picture,
		Position:  u.Position,
		Seniority: u.Seniority,
		IsAdmin:   u.IsAdmin,
	}
}

type UpsertUserInput struct {
	GoogleUID string  `json:"googleUid" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Picture   *string `json:"picture"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// UpdateProfileInput holds the fields of PUT /users/{googleUid}; nil means "not sent".
// Picture is nullable, so an explicit null clears it.
type UpdateProfileInput struct {
	Name    *string          `json:"name"`
	Email   *string          `json:"email"`
	Picture Optional[string] `json:"picture"`
	IsAdmin *bool            `json:"isAdmin"`
}

type UpdatePositionSeniorityInput struct {
	Position  string `json:"position"`
	Seniority string `json:"seniority"`
}
