package integer

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	type TC struct {
		name   string
		digits Digits
	}

	tcs := []TC{
		{
			name:   "0",
			digits: Digits{},
		},
		{
			name:   "0",
			digits: Digits{0, 0},
		},
		{
			name:   "1",
			digits: Digits{1},
		},
		{
			name:   "4294967295",
			digits: Digits{0xffff_ffff},
		},
		{
			name:   "4294967296",
			digits: Digits{1, 0},
		},
		{
			name:   "4294967296",
			digits: Digits{0, 1, 0},
		},
		{
			name:   "18446744082299486211",
			digits: Digits{1, 2, 3},
		},
		{
			name:   "340282366920938463463374607431768211455",
			digits: Digits{0xffff_ffff, 0xffff_ffff, 0xffff_ffff, 0xffff_ffff},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			expected := new(big.Int)
			err := expected.UnmarshalText([]byte(tc.name))
			require.NoError(t, err)

			require.Equal(t, 0, expected.Cmp(tc.digits.Int()))
			require.Equal(t, expected.Sign() == 0, tc.digits.IsZero())

			t.Run("from", func(t *testing.T) {
				ds, err := FromInt(expected)
				require.NoError(t, err)
				require.Equal(t, tc.digits.TrimLeading(), ds)
			})
		})
	}
}

func TestFromIntNegative(t *testing.T) {
	_, err := FromInt(big.NewInt(-1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "negative magnitude")
}

func TestFromIntRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 0; n < 256; n++ {
		ds := make(Digits, 1+rng.Intn(8))
		for i := range ds {
			ds[i] = rng.Uint32()
		}

		back, err := FromInt(ds.Int())
		require.NoError(t, err)
		require.Equal(t, ds.TrimLeading(), back)
	}
}

func TestTrimLeading(t *testing.T) {
	require.Equal(t, Digits{}, Digits{0, 0}.TrimLeading())
	require.Equal(t, Digits{1, 0}, Digits{0, 1, 0}.TrimLeading())
	require.Equal(t, Digits{7}, Digits{7}.TrimLeading())
}

func TestClone(t *testing.T) {
	require.Nil(t, Digits(nil).Clone())

	ds := Digits{1, 2, 3}
	c := ds.Clone()
	require.Equal(t, ds, c)

	c[0] = 9
	require.Equal(t, Digit(1), ds[0])
}

func TestCompareDigit(t *testing.T) {
	require.Equal(t, -1, CompareDigit(1, 2))
	require.Equal(t, 0, CompareDigit(2, 2))
	require.Equal(t, 1, CompareDigit(0xffff_ffff, 0))
}
