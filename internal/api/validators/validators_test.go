package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Days      int      `binding:"required,min=1,max=7"`
	Budget    int      `binding:"required,min=1000,budgetstep"`
	Interests []string `binding:"required,min=1,dive,interest"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, Register(v))
	return v
}

func TestRules(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(form{Days: 3, Budget: 5000, Interests: []string{"food", " Nature "}}))

	err := v.Struct(form{Days: 3, Budget: 5250, Interests: []string{"food"}})
	require.Error(t, err)
	assert.Equal(t, "budget must be a multiple of 500", Describe(err))

	err = v.Struct(form{Days: 3, Budget: 5000, Interests: []string{"skiing"}})
	require.Error(t, err)
	assert.Equal(t, `unknown interest "skiing"`, Describe(err))

	err = v.Struct(form{Days: 8, Budget: 5000, Interests: []string{"food"}})
	require.Error(t, err)
	assert.Equal(t, "days must be at most 7", Describe(err))

	err = v.Struct(form{Days: 3, Budget: 500, Interests: []string{"food"}})
	require.Error(t, err)
	assert.Equal(t, "budget must be at least 1000", Describe(err))

	err = v.Struct(form{Days: 2, Budget: 5000})
	require.Error(t, err)
	assert.Equal(t, "select at least one interest", Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "Invalid request format", Describe(assert.AnError))
}
