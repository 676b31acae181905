// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want List
	}{
		{"1", List{{0, 1}}},
		{"01", List{{0, 1}}},
		{"007", List{{6, 7}}},
		{"1,3", List{{0, 1}, {2, 3}}},
		{"001,0003", List{{0, 1}, {2, 3}}},
		{"1-3", List{{0, 3}}},
		{"0001-0003", List{{0, 3}}},
		{"1,7,3-5", List{{0, 1}, {6, 7}, {2, 5}}},
		{"15,19-20", List{{14, 15}, {18, 20}}},
		{"1,1", List{{0, 1}, {0, 1}}},
		{"1-3,2-4", List{{0, 3}, {1, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr  string
		token string
	}{
		{"", ""},
		{",", ""},
		{"1,", ""},
		{"-", "-"},
		{"0", "0"},
		{"00", "00"},
		{"+1", "+1"},
		{"a", "a"},
		{"1,a", "a"},
		{"1-a", "1-a"},
		{"a-1", "a-1"},
		{"+1-2", "+1-2"},
		{"1-+2", "1-+2"},
		{"1-1-1", "1-1-1"},
		{"1-1-a", "1-1-a"},
		{"-1", ""},
		{"1-", ""},
		{"0-1", "0"},
		{"1-0", "0"},
		{"1-00", "0"},
		{"1 ,2", "1 "},
		{"99999999999999999999", "99999999999999999999"},
		{"1-99999999999999999999", "99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.expr), func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.expr)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidToken)

			var tokenErr *InvalidTokenError
			require.ErrorAs(t, err, &tokenErr)
			assert.Equal(t, tt.token, tokenErr.Token)
			assert.Equal(t, `illegal list value: `+strconv.Quote(tt.token), err.Error())
		})
	}
}

func TestParse_InvalidRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr          string
		first, second int
	}{
		{"1-1", 1, 1},
		{"2-1", 2, 1},
		{"5-03", 5, 3},
		{"1,7-7", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.expr)
			require.ErrorIs(t, err, ErrInvalidRange)

			var rangeErr *InvalidRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.first, rangeErr.First)
			assert.Equal(t, tt.second, rangeErr.Second)
		})
	}
}

func TestParse_RangeMessage(t *testing.T) {
	t.Parallel()

	_, err := Parse("1-1")
	require.EqualError(t, err, "First number in range (1) must be lower than second number (1)")
}

func TestParse_FailFast(t *testing.T) {
	t.Parallel()

	// The first bad token wins even when a later one is also bad.
	_, err := Parse("1,3-2,a")
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.False(t, errors.Is(err, ErrInvalidToken))

	_, err = Parse("a,3-2")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_SinglePositionProperty(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 200; n++ {
		got, err := Parse(strconv.Itoa(n))
		require.NoError(t, err)
		assert.Equal(t, List{{n - 1, n}}, got)
	}
}

func TestParse_RangeProperty(t *testing.T) {
	t.Parallel()

	for a := 1; a <= 20; a++ {
		for b := 1; b <= 20; b++ {
			expr := strconv.Itoa(a) + "-" + strconv.Itoa(b)
			got, err := Parse(expr)
			if a >= b {
				var rangeErr *InvalidRangeError
				require.ErrorAs(t, err, &rangeErr, expr)
				assert.Equal(t, InvalidRangeError{First: a, Second: b}, *rangeErr)
				continue
			}
			require.NoError(t, err, expr)
			assert.Equal(t, List{{a - 1, b}}, got)
		}
	}
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, List{{0, 2}}, MustParse("1-2"))
	assert.Panics(t, func() { MustParse("0") })
}

func TestRange_Clamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		r          Range
		n          int
		start, end int
		ok         bool
	}{
		{"inside", Range{1, 3}, 5, 1, 3, true},
		{"past end", Range{3, 10}, 5, 3, 5, true},
		{"beyond", Range{5, 6}, 5, 0, 0, false},
		{"empty input", Range{0, 1}, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end, ok := tt.r.Clamp(tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestList_String(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"1", "1,7,3-5", "15,19-20", "2,2"} {
		list := MustParse(expr)
		assert.Equal(t, expr, list.String())

		again, err := Parse(list.String())
		require.NoError(t, err)
		assert.Equal(t, list, again)
	}

	assert.Equal(t, "1,3", MustParse("001,0003").String())
}
