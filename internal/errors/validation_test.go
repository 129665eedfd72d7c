package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	v := errors.NewValidationError()
	s.False(v.HasErrors())
	s.Nil(v.ToError())
	s.Equal("validation failed", v.Error())

	v.AddFieldError("Registry", "is required")
	v.AddFieldError("Engine", "is required")
	v.AddFieldError("Engine", "is nil")

	s.True(v.HasErrors())
	s.Equal("validation failed: Engine: is required, is nil; Registry: is required", v.Error())

	err := v.ToError()
	s.True(errors.IsInvalidArgument(err))
	s.Equal(v.Fields, err.Meta[errors.MetaValidation])
}

func (s *ValidationTestSuite) TestBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("Client").
		Fieldf("Overrides", "rule for %s cannot be nil", "witch").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Client: is required")
	s.Contains(err.Error(), "Overrides: rule for witch cannot be nil")
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"set", "catalogs", false},
		{"empty", "", true},
		{"blank", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("Dir", tc.value, vb)
			if tc.wantErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("lp-max", 0, vb)
	errors.ValidateNonNegative("total-ep", 1000, vb)
	s.NoError(vb.Build())

	errors.ValidateNonNegative("total-ep", -5, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "total-ep: cannot be negative, got -5")
}
