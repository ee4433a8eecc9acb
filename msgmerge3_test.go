package msgmerge3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePureCopyThroughPublicAPI(t *testing.T) {
	catalog := func(translation string) *Catalog {
		return &Catalog{Domains: []*Domain{
			{Messages: []*Message{{ID: "hello", Translation: []byte(translation)}}},
		}}
	}

	result, err := Merge(catalog("bonjour"), catalog("bonjour"), catalog("bonjour"), "a.po", "b.po")
	require.NoError(t, err)
	assert.False(t, result.HasMerges)
	assert.Equal(t, "bonjour", string(result.Catalog.Domains[0].Messages[0].Translation))
}
