package validation

import (
	"testing"

	"feedback-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
)

type input struct {
	Items []string `json:"items" validate:"required,min=1"`
	Owner string   `json:"owner" validate:"required"`
	Kind  string   `json:"kind" validate:"required"`
}

var msgs = Messages{
	"items": "items is required and must be a non-empty array",
	"owner": "owner is required",
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name string
		in   input
		want string
	}{
		{"MissingItems", input{Owner: "a", Kind: "b"}, "items is required and must be a non-empty array"},
		{"EmptyItems", input{Items: []string{}, Owner: "a", Kind: "b"}, "items is required and must be a non-empty array"},
		{"FirstFailureWins", input{Items: []string{"x"}}, "owner is required"},
		{"NoMessageRegistered", input{Items: []string{"x"}, Owner: "a"}, "kind is invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in, msgs)
			assert.True(t, apperr.IsCode(err, apperr.CodeInvalid))
			assert.Equal(t, tc.want, apperr.MessageOf(err))
		})
	}

	assert.NoError(t, Struct(input{Items: []string{"x"}, Owner: "a", Kind: "b"}, msgs))
}
