package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("level", "must be between 1 and 20")
	ve.AddFieldError("campaign_id", "is required")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: campaign_id: is required; level: must be between 1 and 20; name: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("player_id").
		InvalidField("subclass_id", "unknown subclass")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "subclass_id: is invalid: unknown subclass")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Vex", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Vex  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().Error(err)
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 20, false},
		{"below", 0, true},
		{"above", 21, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("level", tc.value, 1, 20, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().Error(err)
				s.Assert().Contains(err.Error(), "level: must be between 1 and 20")
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("player_id", 0, vb)
	errors.ValidatePositive("max_players", 4, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "player_id: is required")
	s.Assert().NotContains(err.Error(), "max_players")
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("time_zone", "America/Los_Angeles", 8, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be no more than 8 characters")
}
