package hrid_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/dmitrymomot/hrid"
)

func TestSum256(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		a := hrid.MustParse("my-service").Sum256()
		b := hrid.MustParse("my-service").Sum256()
		assert.Equal(t, a, b)
	})

	t.Run("distinct identifiers digest differently", func(t *testing.T) {
		t.Parallel()

		a := hrid.MustParse("my-service").Sum256()
		b := hrid.MustParse("my-service2").Sum256()
		assert.NotEqual(t, a, b)
	})

	t.Run("matches HashInto with sha256", func(t *testing.T) {
		t.Parallel()

		id := hrid.MustParse("日本語")

		h := sha256.New()
		id.HashInto(h)

		sum := id.Sum256()
		assert.Equal(t, h.Sum(nil), sum[:])
	})
}

func TestHashInto(t *testing.T) {
	t.Parallel()

	t.Run("framing disambiguates concatenation", func(t *testing.T) {
		t.Parallel()

		// Without length prefixes, ("ab","c") and ("a","bc") would feed the
		// same bytes into the accumulator.
		sum := func(texts ...string) []byte {
			h := sha256.New()
			for _, s := range texts {
				hrid.MustParse(s).HashInto(h)
			}
			return h.Sum(nil)
		}

		assert.NotEqual(t, sum("ab", "c"), sum("a", "bc"))
	})

	t.Run("works with blake2b", func(t *testing.T) {
		t.Parallel()

		h1, err := blake2b.New256(nil)
		require.NoError(t, err)
		h2, err := blake2b.New256(nil)
		require.NoError(t, err)

		hrid.MustParse("content-addressed").HashInto(h1)
		hrid.MustParse("content-addressed").HashInto(h2)
		assert.Equal(t, h1.Sum(nil), h2.Sum(nil))

		h3, err := blake2b.New256(nil)
		require.NoError(t, err)
		hrid.MustParse("content-addressed2").HashInto(h3)
		assert.NotEqual(t, h1.Sum(nil), h3.Sum(nil))
	})
}
