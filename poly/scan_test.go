package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyops/univar/utils"
)

func TestSplitSignedTerms(t *testing.T) {
	for _, tc := range []struct {
		name        string
		s           string
		defaultSign byte
		want        []SignedTerm
	}{
		{"Empty", "", 0, nil},
		{"SpacesOnly", " ", 0, nil},
		{"ExplicitSign", "+ x", 0, []SignedTerm{{'+', "x"}}},
		{"DefaultSign", "x", '+', []SignedTerm{{'+', "x"}}},
		{"ExplicitMinus", "- x", 0, []SignedTerm{{'-', "x"}}},
		{"MinusOverridesDefault", "- x", '+', []SignedTerm{{'-', "x"}}},
		{"AllExplicit", "+ x + y + z", 0, []SignedTerm{{'+', "x"}, {'+', "y"}, {'+', "z"}}},
		{"FirstDefaulted", "x + y + z", '+', []SignedTerm{{'+', "x"}, {'+', "y"}, {'+', "z"}}},
		{"MixedSigns", "+ x - y - z", '+', []SignedTerm{{'+', "x"}, {'-', "y"}, {'-', "z"}}},
		{"LeadingMinus", "- x + y - z", '+', []SignedTerm{{'-', "x"}, {'+', "y"}, {'-', "z"}}},
		{"NoSignNoDefault", "x y", 0, nil},
		{"EmptyWithDefault", "", '+', []SignedTerm{{'+', ""}}},
		{"InnerSpaces", "2 * X ^ 2 + 1", '+', []SignedTerm{{'+', "2*X^2"}, {'+', "1"}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSignedTerms(tc.s, "+-", tc.defaultSign)
			require.True(t, utils.EqualSlice(got, tc.want), "got %v, want %v", got, tc.want)
		})
	}
}
