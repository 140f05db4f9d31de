package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "Depth chart not found", ErrDepthChartNotFound.Error())
		assert.Equal(t, "Player not found", ErrPlayerNotFound.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "Position"}
		assert.True(t, errors.Is(err1, ErrPositionNotFound))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		sentinels := []error{ErrDepthChartNotFound, ErrPositionNotFound, ErrPlayerNotFound, ErrAssignmentNotFound}
		for i, a := range sentinels {
			for j, b := range sentinels {
				assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
			}
		}
	})

	t.Run("wrapped errors keep their identity", func(t *testing.T) {
		wrapped := fmt.Errorf("get depth chart: %w", ErrDepthChartNotFound)
		assert.True(t, errors.Is(wrapped, ErrDepthChartNotFound))
		assert.False(t, errors.Is(wrapped, ErrAssignmentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAssignmentNotFound))
		assert.False(t, IsNotFound(ErrPlayerAlreadyAssigned))
		assert.False(t, IsNotFound(errors.New("boom")))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "Player is already assigned to this position", ErrPlayerAlreadyAssigned.Error())
	})

	t.Run("errors.Is compares messages", func(t *testing.T) {
		same := &ConflictError{Message: "Player is already assigned to this position"}
		assert.True(t, errors.Is(same, ErrPlayerAlreadyAssigned))
		assert.False(t, errors.Is(ErrPositionAtCapacity, ErrPlayerAlreadyAssigned))
		assert.False(t, errors.Is(ErrDefaultChartConflict, ErrDepthChartNotFound))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(fmt.Errorf("assign: %w", ErrPositionAtCapacity)))
		assert.False(t, IsConflict(ErrPositionNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := NewValidationError("position_code", "must not be blank")
		assert.Equal(t, "validation error: position_code - must not be blank", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "request validation failed"}
		assert.Equal(t, "validation error: request validation failed", err.Error())
		assert.Nil(t, err.Details())
	})

	t.Run("Details with a single field", func(t *testing.T) {
		var validationErr *ValidationError
		require.ErrorAs(t, NewValidationError("name", "is required"), &validationErr)
		assert.Equal(t, []FieldError{{Field: "name", Message: "is required"}}, validationErr.Details())
	})

	t.Run("Details with multiple fields", func(t *testing.T) {
		err := &ValidationError{
			Message: "request validation failed",
			Fields: []FieldError{
				{Field: "name", Message: "is required"},
				{Field: "color", Message: "must be a hex color like #RRGGBB"},
			},
		}
		assert.Len(t, err.Details(), 2)
		assert.Equal(t, "color", err.Details()[1].Field)
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrMissingCaller))
	assert.False(t, IsAuthentication(ErrInsufficientScope))
	assert.True(t, IsAuthorization(fmt.Errorf("check: %w", ErrInsufficientScope)))
	assert.False(t, IsAuthorization(ErrMissingCaller))
	assert.Equal(t, "You do not have permission to perform this action", ErrInsufficientScope.Error())
}

func TestFromValidator(t *testing.T) {
	v := validator.New()

	testCases := []struct {
		name    string
		value   interface{}
		field   string
		message string
	}{
		{"required", struct {
			Name string `validate:"required"`
		}{}, "Name", "is required"},
		{"min on string", struct {
			Code string `validate:"min=2"`
		}{Code: "a"}, "Code", "must be at least 2 characters"},
		{"max on string", struct {
			Code string `validate:"max=3"`
		}{Code: "ABCD"}, "Code", "must be at most 3 characters"},
		{"min on int", struct {
			MaxPlayers int `validate:"min=1"`
		}{}, "MaxPlayers", "must be at least 1"},
		{"max on int", struct {
			DepthOrder int `validate:"max=9"`
		}{DepthOrder: 10}, "DepthOrder", "must be at most 9"},
		{"len", struct {
			Color string `validate:"len=7"`
		}{Color: "#fff"}, "Color", "must be exactly 7 characters"},
		{"gte", struct {
			SortOrder int `validate:"gte=0"`
		}{SortOrder: -1}, "SortOrder", "must be greater than or equal to 0"},
		{"datetime", struct {
			EffectiveDate string `validate:"datetime=2006-01-02"`
		}{EffectiveDate: "03/01/2026"}, "EffectiveDate", "must be a date in YYYY-MM-DD format"},
		{"hexcolor", struct {
			Color string `validate:"hexcolor"`
		}{Color: "#12345G"}, "Color", "must be a hex color like #RRGGBB"},
		{"unlisted tag", struct {
			Contact string `validate:"email"`
		}{Contact: "nope"}, "Contact", "failed email validation"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := FromValidator(v.Struct(tc.value))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "request validation failed", validationErr.Message)
			assert.Equal(t, []FieldError{{Field: tc.field, Message: tc.message}}, validationErr.Details())
		})
	}

	t.Run("one entry per failing field", func(t *testing.T) {
		err := FromValidator(v.Struct(struct {
			Name  string `validate:"required"`
			Color string `validate:"omitempty,hexcolor"`
			Notes string `validate:"max=5"`
		}{Color: "red", Notes: "long notes"}))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []FieldError{
			{Field: "Name", Message: "is required"},
			{Field: "Color", Message: "must be a hex color like #RRGGBB"},
			{Field: "Notes", Message: "must be at most 5 characters"},
		}, validationErr.Details())
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FromValidator(nil))
	})

	t.Run("non-validator error keeps its message", func(t *testing.T) {
		err := FromValidator(errors.New("validator: (nil *struct {})"))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "validator: (nil *struct {})", validationErr.Message)
		assert.Empty(t, validationErr.Details())
	})
}
