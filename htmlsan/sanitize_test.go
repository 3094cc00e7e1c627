package htmlsan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brindlecrest/inkwell/htmlast"
)

func buildDiv() *htmlast.Element {
	div := htmlast.NewElement("div")
	div.SetAttr("onclick", "x()")
	div.Append("hi")

	script := htmlast.NewElement("script")
	script.Append("bad()")
	div.Append(script)

	return div
}

func TestSanitizeDropsDisallowedAndBadAttrs(t *testing.T) {
	div := buildDiv()

	out := Sanitize(div, nil, nil)

	require.Equal(t, "<div>hi</div>", htmlast.Serialize(out))
}

func TestSanitizeIsIdempotent(t *testing.T) {
	div := buildDiv()

	once := Sanitize(div, nil, nil)
	twice := Sanitize(once, nil, nil)

	require.Equal(t, htmlast.Serialize(once), htmlast.Serialize(twice))
}

func TestSanitizeLeavesAllowedElementUntouched(t *testing.T) {
	p := htmlast.NewElement("p")
	p.SetAttr("id", "intro")
	p.Append("hello")

	out := Sanitize(p, nil, nil)

	require.Equal(t, htmlast.Serialize(p), htmlast.Serialize(out))
}

func TestSanitizeCustomPolicyAllowsExtraAttr(t *testing.T) {
	img := htmlast.NewElement("img")
	img.SetAttr("src", "a.png")
	img.SetAttr("loading", "lazy")

	policy := AttrPolicy{
		"img": {"src": true, "alt": true, "loading": true},
	}

	out := Sanitize(img, DefaultDisallowedTags(), policy)

	require.Contains(t, htmlast.Serialize(out), `loading="lazy"`)
}
