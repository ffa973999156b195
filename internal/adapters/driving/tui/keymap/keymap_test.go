package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_NextBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Next.Keys()
	assert.Contains(t, keys, "right")
	assert.Contains(t, keys, " ")
	assert.Contains(t, keys, "l")
}

func TestDefaultKeyMap_PrevBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Prev.Keys()
	assert.Contains(t, keys, "left")
	assert.Contains(t, keys, "h")
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_FullscreenBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Fullscreen.Keys(), "f")
	assert.Contains(t, km.Fullscreen.Keys(), "F")
}

func TestDefaultKeyMap_TimerBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Timer.Keys(), "t")
	assert.Contains(t, km.Timer.Keys(), "T")
}

func TestDefaultKeyMap_SubmitBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Submit.Keys(), "ctrl+s")
}

func TestDefaultKeyMap_NoOverlapBetweenNavAndSlideKeys(t *testing.T) {
	km := DefaultKeyMap()

	nav := append(km.Next.Keys(), km.Prev.Keys()...)
	for _, k := range []string{"e", "n", "i", "g", "t", "f"} {
		assert.NotContains(t, nav, k)
	}
}
