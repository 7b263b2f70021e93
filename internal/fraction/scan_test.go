package fraction_test

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fracpoint/internal/domain"
	"fracpoint/internal/fraction"
)

func ExampleParse() {
	f, err := fraction.Parse("5 4")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	//output:
	//5/4
}

func Example_scan() {
	var a, b fraction.Fraction
	if _, err := fmt.Sscan("5 4\n10 8", &a, &b); err != nil {
		panic(err)
	}
	fmt.Println(a, "+", b, "=", a.Add(b))
	//output:
	//5/4 + 10/8 = 80/32
}

func TestParse_OK(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"5 4", "5/4"},
		{"  -3\t7 ", "-3/7"},
		{"0 -1", "0/-1"},
		{"2\n4", "2/4"},
	} {
		f, err := fraction.Parse(tc.in)
		require.NoError(t, err, "%q", tc.in)
		assert.Equal(t, tc.want, f.String(), "%q", tc.in)
	}
}

func TestParse_ZeroDenominator(t *testing.T) {
	_, err := fraction.Parse("3 0")
	require.ErrorIs(t, err, domain.ErrInvalidDenominator)

	var pe *domain.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, domain.FractionInput, pe.Kind)
	assert.Equal(t, 1, pe.Token)
}

func TestParse_Malformed(t *testing.T) {
	for _, tc := range []struct {
		in    string
		token int
		cause error
	}{
		{"", 0, io.ErrUnexpectedEOF},
		{"7", 1, io.ErrUnexpectedEOF},
		{"a 2", 0, strconv.ErrSyntax},
		{"1 2.5", 1, strconv.ErrSyntax},
		{"1 2 3", 2, domain.ErrTrailingInput},
	} {
		_, err := fraction.Parse(tc.in)
		var pe *domain.ParseError
		require.ErrorAs(t, err, &pe, "%q", tc.in)
		assert.Equal(t, tc.token, pe.Token, "%q", tc.in)
		assert.True(t, errors.Is(err, tc.cause), "%q: %v", tc.in, err)
	}
}

func TestScan_LeavesValueOnError(t *testing.T) {
	f := mustNew(t, 1, 2)
	_, err := fmt.Sscan("4 0", &f)
	require.ErrorIs(t, err, domain.ErrInvalidDenominator)
	assert.Equal(t, "1/2", f.String())
}

func TestScan_TokenStream(t *testing.T) {
	r := strings.NewReader("1 2 3 4\n-5 6")
	var got []string
	for {
		var f fraction.Fraction
		if _, err := fmt.Fscan(r, &f); err != nil {
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
			break
		}
		got = append(got, f.String())
	}
	assert.Equal(t, []string{"1/2", "3/4", "-5/6"}, got)
}

func TestParse_RoundTripsRawPair(t *testing.T) {
	for _, f := range []fraction.Fraction{
		mustNew(t, 5, 4),
		mustNew(t, -10, 8),
		mustNew(t, 0, -3),
		fraction.Zero(),
	} {
		got, err := fraction.Parse(fmt.Sprintf("%d %d", f.Num(), f.Den()))
		require.NoError(t, err)
		assert.True(t, got.Equal(f), "%v != %v", got, f)
		assert.Equal(t, f, got)
	}
}
