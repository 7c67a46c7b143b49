package errors

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestMarkedErrorsMatchSentinels(t *testing.T) {
	err := NewError("Data not found").
		WithHint("Data not found").
		Mark(ErrNotFound)

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, http.StatusNotFound, HTTPStatusFromErr(err))
}

func TestHTTPStatusFromErr(t *testing.T) {
	cases := []struct {
		sentinel error
		want     int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrValidation, http.StatusBadRequest},
		{ErrInvalidOperation, http.StatusBadRequest},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrPresentation, http.StatusUnprocessableEntity},
		{ErrSystem, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := NewError("boom").Mark(tc.sentinel)
		assert.Equal(t, tc.want, HTTPStatusFromErr(err))
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromErr(errors.New("unmarked")))
}

func TestHintsSurviveWrapping(t *testing.T) {
	inner := NewError("typst compilation failed").
		WithHint("Failed to render the PDF. The generated work orders are kept; retry the export.").
		Mark(ErrPresentation)

	outer := WithError(inner).
		WithMessage("render batch failed").
		Mark(ErrPresentation)

	hints := errors.GetAllHints(outer)
	assert.NotEmpty(t, hints)
	assert.True(t, IsPresentation(outer))
}

func TestWithReportableDetails(t *testing.T) {
	err := NewError("invalid record kind").
		WithHint("Invalid type: meteran").
		WithReportableDetails(map[string]any{"type": "meteran"}).
		Mark(ErrValidation)

	found := false
	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if len(payload) > 9 && payload[:9] == "__json__:" {
				found = true
			}
		}
	}
	assert.True(t, found)
}
