package phonotactics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	v := Default()

	tests := []struct {
		word    string
		valid   bool
		matched []string
	}{
		{"trano", true, nil},
		{"", true, nil},
		{"   ", true, nil},
		{"amkary", false, []string{"mk"}},
		{"anbo", false, []string{"nb"}},
		{"NBMK", false, []string{"nb", "mk"}},
		{"nkoto", false, []string{"^nk"}},
		{"ankoto", true, nil},
		{"dtbpsz", false, []string{"dt", "bp", "sz"}},
		{"sznbdt", false, []string{"nb", "dt", "sz"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			res := v.Validate(tt.word)
			assert.Equal(t, tt.valid, res.Valid)
			want := []string{}
			for _, p := range tt.matched {
				want = append(want, Describe(p))
			}
			assert.Equal(t, want, res.Errors)
		})
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New([]string{"nb", "("})
	require.Error(t, err)
}

func TestValidateIsIdempotent(t *testing.T) {
	v := Default()
	assert.Equal(t, v.Validate("Mkanbo"), v.Validate("Mkanbo"))
}
