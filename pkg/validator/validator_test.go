package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	PatientName string `json:"patientName" validate:"required"`
	IsActive    *bool  `json:"isActive" validate:"required"`
	Note        string `json:"note,omitempty" validate:"max=5"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&samplePayload{Note: "too long"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "patientName is required", errs["patientName"])
	assert.Equal(t, "isActive is required", errs["isActive"])
	assert.Equal(t, "note must be at most 5 characters", errs["note"])
}

func TestValidateAcceptsFalsePointer(t *testing.T) {
	v := NewValidator()
	inactive := false

	assert.NoError(t, v.Validate(&samplePayload{PatientName: "A", IsActive: &inactive}))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
