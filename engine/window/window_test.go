package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderOptions(t *testing.T) {
	w := &engineWindow{title: "Orrery", width: 1280, height: 720}
	for _, opt := range []WindowBuilderOption{
		WithTitle("Solar"),
		WithSize(640, 480),
		WithMinSize(200, 100),
	} {
		opt(w)
	}
	assert.Equal(t, "Solar", w.title)
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 480, w.Height())
	assert.Equal(t, 200, w.minWidth)
	assert.Equal(t, 100, w.minHeight)
}

func TestBuilderIgnoresEmptyValues(t *testing.T) {
	w := &engineWindow{title: "Orrery", width: 1280, height: 720}
	WithTitle("")(w)
	WithSize(0, 480)(w)
	assert.Equal(t, "Orrery", w.title)
	assert.Equal(t, 1280, w.width)
	assert.Equal(t, 720, w.height)
}

func TestSetTitleIsAppliedOnce(t *testing.T) {
	w := &engineWindow{}
	_, ok := w.takeTitle()
	assert.False(t, ok)

	w.SetTitle("first")
	w.SetTitle("Score 3")
	got, ok := w.takeTitle()
	assert.True(t, ok)
	assert.Equal(t, "Score 3", got)

	_, ok = w.takeTitle()
	assert.False(t, ok)
}

func TestUninitializedWindowIsNotRunning(t *testing.T) {
	w := &engineWindow{}
	assert.False(t, w.IsRunning())
	assert.Error(t, w.Close())
}
