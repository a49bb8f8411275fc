package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtures(t *testing.T) {
	fixtures := Fixtures()
	require.NotEmpty(t, fixtures)

	featured := 0
	for _, p := range fixtures {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Brand)
		assert.NotEmpty(t, p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		if p.OriginalPrice != 0 {
			assert.GreaterOrEqual(t, p.OriginalPrice, p.Price, "%s: sale price above original", p.Name)
		}
		assert.NotEmpty(t, p.Notes.Top, "%s has no top notes", p.Name)
		if p.Featured {
			featured++
		}
	}
	assert.Greater(t, featured, 0, "the front page needs featured products")
}

func TestFixtureDefaults(t *testing.T) {
	fixtures := Fixtures()
	for i := range fixtures {
		fixtures[i].ApplyDefaults()
		assert.NotZero(t, fixtures[i].Rating)
		assert.NotEmpty(t, fixtures[i].Size)
		require.NotNil(t, fixtures[i].InStock, "%s: inStock unset after defaults", fixtures[i].Name)
	}

	for _, p := range fixtures {
		if p.Name == "Velvet Santal" {
			assert.False(t, *p.InStock, "the sold-out fixture must stay out of stock")
		} else {
			assert.True(t, *p.InStock)
		}
	}
}
