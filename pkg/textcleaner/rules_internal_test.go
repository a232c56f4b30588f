package textcleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPunctuationClass(t *testing.T) {
	t.Parallel()

	for _, r := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" + "¿¡«»—…‘’“”" {
		assert.True(t, punctuationRe.MatchString(string(r)), string(r))
	}

	for _, r := range "aZ09 \t\nñé€\ufffd" {
		assert.False(t, punctuationRe.MatchString(string(r)), string(r))
	}
}

func TestAccentTablePairs(t *testing.T) {
	t.Parallel()

	assert.Zero(t, len(accentTable)%2)

	table := append(append([]string{}, accentTable...), combiningTable...)
	assert.Zero(t, len(combiningTable)%2)

	seen := make(map[string]struct{}, len(table)/2)
	for i := 0; i < len(table); i += 2 {
		from := table[i]
		_, dup := seen[from]
		assert.False(t, dup, from)
		seen[from] = struct{}{}

		for _, r := range table[i+1] {
			assert.Less(t, r, rune(128), from)
		}
	}
}

func TestRegistryMatchesCatalogue(t *testing.T) {
	t.Parallel()

	assert.Len(t, registry, len(catalogue))

	for _, step := range catalogue {
		assert.Equal(t, step.Key, registry[step.Key].Key)
	}
}

func TestLowercaseEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", lowercase(""))
	assert.Equal(t, "", removePunctuation(""))
	assert.Equal(t, "", removeDigits(""))
}
