package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.c3pb.de/farhaven/solarsystem/camera"
	"git.c3pb.de/farhaven/solarsystem/orrery"
	"git.c3pb.de/farhaven/solarsystem/vector"
)

func setup(t *testing.T) (*camera.Controller, *orrery.Orrery) {
	o, err := orrery.New(orrery.Planets)
	require.NoError(t, err)
	return camera.New(camera.DefaultConfig()), o
}

func TestDigitsSelectBodies(t *testing.T) {
	for k := Key1; k <= Key7; k++ {
		cmd := Lookup(k)
		assert.Equal(t, IntentFollow, cmd.Intent, k.String())
		assert.Equal(t, int(k-Key1), cmd.Body, k.String())
	}

	assert.Equal(t, IntentNone, Lookup(Key8).Intent)
	assert.Equal(t, IntentNone, Lookup(Key9).Intent)
	assert.Equal(t, IntentNone, Lookup(KeyUnknown).Intent)
}

func TestReleaseKeys(t *testing.T) {
	assert.Equal(t, IntentRelease, Lookup(Key0).Intent)
	assert.Equal(t, IntentRelease, Lookup(KeyQ).Intent)
}

func TestMoveKeys(t *testing.T) {
	cases := map[Key]vector.V3{
		KeyLeft:     {X: -0.5},
		KeyRight:    {X: 0.5},
		KeyUp:       {Y: -0.5},
		KeyDown:     {Y: 0.5},
		KeyPageUp:   {Z: -1},
		KeyPageDown: {Z: 1},
	}
	for k, d := range cases {
		cmd := Lookup(k)
		assert.Equal(t, IntentMove, cmd.Intent, k.String())
		assert.Equal(t, d, cmd.Delta, k.String())
	}
}

func TestApplyFollowAndRelease(t *testing.T) {
	cam, o := setup(t)

	assert.True(t, Apply(Lookup(Key5), cam, o))
	i, ok := cam.Followed()
	assert.True(t, ok)
	assert.Equal(t, 4, i)

	assert.False(t, Apply(Lookup(KeyLeft), cam, o), "moves are ignored while following")

	assert.True(t, Apply(Lookup(Key0), cam, o))
	assert.Equal(t, camera.FREE, cam.Mode())
	assert.True(t, cam.Transitioning())

	assert.False(t, Apply(Lookup(KeyQ), cam, o), "release is a no-op in free mode")
}

func TestApplyMove(t *testing.T) {
	cam, o := setup(t)
	start := cam.Position

	require.True(t, Apply(Lookup(KeyRight), cam, o))
	require.True(t, Apply(Lookup(KeyDown), cam, o))
	require.True(t, Apply(Lookup(KeyPageDown), cam, o))

	assert.Equal(t, start.Add(vector.V3{X: 0.5, Y: 0.5, Z: 1}), cam.Position)
}

func TestZoomClampedOverLongSequences(t *testing.T) {
	cam, o := setup(t)
	cfg := cam.Config()

	seq := []Key{KeyPageDown, KeyPageDown, KeyPageDown, KeyPageUp}
	for n := 0; n < 500; n++ {
		Apply(Lookup(seq[n%len(seq)]), cam, o)
		require.GreaterOrEqual(t, cam.Position.Z, cfg.MinZoom)
		require.LessOrEqual(t, cam.Position.Z, cfg.MaxZoom)
	}
	assert.InDelta(t, cfg.MaxZoom, cam.Position.Z, 2)

	for n := 0; n < 500; n++ {
		Apply(Lookup(KeyPageUp), cam, o)
		require.GreaterOrEqual(t, cam.Position.Z, cfg.MinZoom)
	}
	assert.Equal(t, cfg.MinZoom, cam.Position.Z)
}

func TestApplyNonCameraCommand(t *testing.T) {
	cam, o := setup(t)
	before := *cam

	assert.False(t, Apply(Lookup(KeyF), cam, o))
	assert.False(t, Apply(Lookup(KeyUnknown), cam, o))
	assert.Equal(t, before, *cam)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "PageUp", KeyPageUp.String())
	assert.Equal(t, "Unknown", Key(999).String())
	assert.Equal(t, "follow 2", Lookup(Key3).String())
	assert.Equal(t, "release", Lookup(Key0).String())
	assert.Equal(t, "move (-0.50, 0.00, 0.00)", Lookup(KeyLeft).String())
	assert.Equal(t, "intent(42)", Intent(42).String())
}
