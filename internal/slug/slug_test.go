package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Food", "food"},
		{"Eating Out", "eating-out"},
		{"  Eating   Out  ", "eating-out"},
		{"Café", "cafe"},
		{"Rent & Utilities", "rent-and-utilities"},
		{"savings", "savings"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.name), "Make(%q)", tc.name)
	}
}

// Category creation and transaction category resolution both key on this
// function, so it must be strictly deterministic.
func TestMakeIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, "groceries-and-gas", Make("Groceries & Gas"))
	}
}
