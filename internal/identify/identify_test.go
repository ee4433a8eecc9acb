package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/potools/msgmerge3/internal/catalog"
)

func header(translation string) []*catalog.Message {
	return []*catalog.Message{{ID: "", Translation: []byte(translation)}}
}

func TestLabelNoProjectFirstDomain(t *testing.T) {
	assert.Equal(t, "a.po", Label("/tmp/a.po", 0, "", nil))
}

func TestLabelNoProjectLaterDomain(t *testing.T) {
	assert.Equal(t, "a.po:extra", Label("/tmp/a.po", 1, "extra", nil))
}

func TestLabelWithProjectFirstDomain(t *testing.T) {
	msgs := header("Project-Id-Version: myproj 1.0\n")
	assert.Equal(t, "a.po (myproj 1.0)", Label("/tmp/a.po", 0, "", msgs))
}

func TestLabelWithProjectLaterDomain(t *testing.T) {
	msgs := header("Project-Id-Version: myproj 1.0\n")
	assert.Equal(t, "a.po:extra (myproj 1.0)", Label("/tmp/a.po", 1, "extra", msgs))
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "#-#-#-#-#  a.po  #-#-#-#-#", Marker("a.po"))
}

func TestCatalogLabels(t *testing.T) {
	cat := &catalog.Catalog{Domains: []*catalog.Domain{
		{Name: "", Messages: header("Project-Id-Version: p 1\n")},
		{Name: "extra"},
	}}
	labels := Catalog("/tmp/b.po", cat)
	assert.Equal(t, []string{"b.po (p 1)", "b.po:extra"}, labels)
}
