package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleIntAcceptsNumericForms(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{body: `{"experienceYears":5}`, want: 5},
		{body: `{"experienceYears":"5"}`, want: 5},
		{body: `{"experienceYears":" 12 "}`, want: 12},
		{body: `{"experienceYears":7.0}`, want: 7},
		{body: `{"experienceYears":"-3"}`, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req DoctorRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.NotNil(t, req.ExperienceYears)
			assert.Equal(t, tt.want, *req.ExperienceYears.IntPtr())
		})
	}
}

func TestFlexibleIntNullAndMissing(t *testing.T) {
	var req DoctorRequest
	require.NoError(t, json.Unmarshal([]byte(`{"experienceYears":null}`), &req))
	assert.Nil(t, req.ExperienceYears)
	assert.Nil(t, req.ExperienceYears.IntPtr())

	req = DoctorRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.ExperienceYears)
}

func TestFlexibleIntRejectsNonNumeric(t *testing.T) {
	for _, body := range []string{`{"rating":"ten"}`, `{"rating":4.5}`, `{"rating":true}`} {
		t.Run(body, func(t *testing.T) {
			var req ReviewRequest
			err := json.Unmarshal([]byte(body), &req)

			var typeErr *json.UnmarshalTypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, "rating", typeErr.Field)
		})
	}
}

func TestRequiredStringsAcceptEmptyValue(t *testing.T) {
	var req CreateCallbackRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"","phone":"1"}`), &req))
	require.NotNil(t, req.Name)
	assert.Equal(t, "", *req.Name)
	assert.Equal(t, "1", *req.Phone)
}
