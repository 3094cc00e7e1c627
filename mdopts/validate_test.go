package mdopts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidSkinTone(t *testing.T) {
	for n := 1; n <= 5; n++ {
		require.True(t, ValidSkinTone(n), "digit %d should be valid", n)
	}
	require.False(t, ValidSkinTone(0))
	require.False(t, ValidSkinTone(6))
	require.False(t, ValidSkinTone(-3))
}

func TestMergeRenderOptionsRejectsDisabledPropertyWithoutEnable(t *testing.T) {
	_, err := MergeRenderOptions(map[string]any{
		"checkbox": map[string]any{
			"enable":            false,
			"disabled_property": true,
		},
	}, Callbacks{}, nil)
	require.Error(t, err)
}

func TestMergeRenderOptionsAllowsDisabledPropertyWithEnable(t *testing.T) {
	opts, err := MergeRenderOptions(map[string]any{
		"checkbox": map[string]any{
			"enable":            true,
			"disabled_property": true,
		},
	}, Callbacks{}, nil)
	require.NoError(t, err)
	require.True(t, opts.Data.Checkbox.DisabledProperty)
}

func TestMergeRenderOptionsDefaultsValidate(t *testing.T) {
	_, err := MergeRenderOptions(nil, Callbacks{}, nil)
	require.NoError(t, err)
}
