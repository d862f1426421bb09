package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSituation(t *testing.T) {
	tests := []struct {
		in      string
		want    Situation
		wantErr bool
	}{
		{in: "pending", want: SituationPending},
		{in: "running", want: SituationRunning},
		{in: "finished", want: SituationFinished},
		{in: "Pending", wantErr: true},
		{in: "", wantErr: true},
		{in: "archived", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSituation(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestSituation_JSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b, err := json.Marshal(SituationRunning)
		require.NoError(t, err)
		assert.Equal(t, `"running"`, string(b))

		var s Situation
		require.NoError(t, json.Unmarshal(b, &s))
		assert.Equal(t, SituationRunning, s)
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		var s Situation
		assert.Error(t, json.Unmarshal([]byte(`"archived"`), &s))
	})

	t.Run("illegal state cannot be marshaled", func(t *testing.T) {
		_, err := json.Marshal(Situation(42))
		assert.Error(t, err)
	})
}

func TestFormatRegisterNumber(t *testing.T) {
	assert.Equal(t, "000042/2026", FormatRegisterNumber(42, 2026))
	assert.Equal(t, "000001/2027", FormatRegisterNumber(1, 2027))
	assert.Equal(t, "1000000/2026", FormatRegisterNumber(1000000, 2026))
}
