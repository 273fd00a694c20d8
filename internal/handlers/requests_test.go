package handlers

import (
	"testing"

	"github.com/nfrund/landing/internal/inquiry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&inquiry.Request{Name: "", Email: "nope"})
	require.Error(t, err)

	errs := fieldErrors(err)
	assert.Equal(t, map[string]string{
		"name":  "Please tell me your name.",
		"email": "Enter a valid email address.",
	}, errs)

	assert.NoError(t, v.Validate(&inquiry.Request{Name: "Ada", Email: "ada@example.com"}))
	assert.Nil(t, fieldErrors(assert.AnError))
}
