package settings_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/settings"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaxServings(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"default", settings.DefaultMaxServings, false},
		{"upper bound", settings.UpperMaxServings, false},
		{"zero", 0, true},
		{"negative", -5, true},
		{"above upper bound", settings.UpperMaxServings + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := settings.NewMaxServings(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, m.Int())
		})
	}
}

func TestParseMaxServings(t *testing.T) {
	m, err := settings.ParseMaxServings("150")
	require.NoError(t, err)
	assert.Equal(t, 150, m.Int())
	assert.Equal(t, "150", m.String())

	_, err = settings.ParseMaxServings("many")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = settings.ParseMaxServings("0")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDefaultMaxServingsValue(t *testing.T) {
	assert.Equal(t, 200, settings.DefaultMaxServingsValue().Int())
}
