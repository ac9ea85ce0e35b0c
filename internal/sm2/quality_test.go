package sm2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityValues(t *testing.T) {
	tests := []struct {
		q    Quality
		want int
	}{
		{Blackout, 0},
		{Incorrect, 1},
		{IncorrectEasy, 2},
		{Hard, 3},
		{Good, 4},
		{Perfect, 5},
	}
	for _, tt := range tests {
		if int(tt.q) != tt.want {
			t.Errorf("%s = %d, want %d", tt.q, int(tt.q), tt.want)
		}
	}
}

func TestQualityForgotAndRepeat(t *testing.T) {
	tests := []struct {
		q          Quality
		wantForgot bool
		wantRepeat bool
	}{
		{Blackout, true, true},
		{Incorrect, true, true},
		{IncorrectEasy, true, true},
		{Hard, false, true},
		{Good, false, false},
		{Perfect, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.q.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantForgot, tt.q.Forgot(), "Forgot")
			assert.Equal(t, tt.wantRepeat, tt.q.Repeat(), "Repeat")
		})
	}
}

func TestQualityForgotImpliesRepeat(t *testing.T) {
	for _, q := range Qualities() {
		if q.Forgot() && !q.Repeat() {
			t.Errorf("%s forgot but not repeated", q)
		}
	}
}

func TestQualities(t *testing.T) {
	qs := Qualities()
	require.Len(t, qs, 6)
	for i, q := range qs {
		assert.Equal(t, Quality(i), q)
		assert.True(t, q.IsValid())
	}
	assert.False(t, Quality(-1).IsValid())
	assert.False(t, Quality(6).IsValid())
}

func TestQualityString(t *testing.T) {
	assert.Equal(t, "incorrect-easy", IncorrectEasy.String())
	assert.Equal(t, "perfect", Perfect.String())
	assert.Equal(t, "Quality(9)", Quality(9).String())
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Quality
		wantErr bool
	}{
		{"name", "good", Good, false},
		{"upper case", "PERFECT", Perfect, false},
		{"hyphenated", "incorrect-easy", IncorrectEasy, false},
		{"underscored", "incorrect_easy", IncorrectEasy, false},
		{"padded", "  hard ", Hard, false},
		{"digit zero", "0", Blackout, false},
		{"digit five", "5", Perfect, false},
		{"digit out of range", "6", 0, true},
		{"negative", "-1", 0, true},
		{"unknown name", "easy", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuality(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidQuality)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQualityJSON(t *testing.T) {
	b, err := json.Marshal(IncorrectEasy)
	require.NoError(t, err)
	assert.JSONEq(t, `"incorrect-easy"`, string(b))

	var q Quality
	require.NoError(t, json.Unmarshal([]byte(`"good"`), &q))
	assert.Equal(t, Good, q)

	require.NoError(t, json.Unmarshal([]byte(`3`), &q))
	assert.Equal(t, Hard, q)

	assert.ErrorIs(t, json.Unmarshal([]byte(`7`), &q), ErrInvalidQuality)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"meh"`), &q), ErrInvalidQuality)

	_, err = json.Marshal(Quality(42))
	assert.ErrorIs(t, err, ErrInvalidQuality)
}
