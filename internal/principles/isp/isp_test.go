package isp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ FlyingBird = (*Parrot)(nil)
	_ Bird       = (*Penguin)(nil)
	_ LegacyBird = (*LegacyParrot)(nil)
	_ LegacyBird = (*LegacyPenguin)(nil)
)

type recordingBird struct {
	calls []string
}

func (b *recordingBird) SetLocalization(longitude, latitude float64) {
	b.calls = append(b.calls, "SetLocalization")
}

func (b *recordingBird) Render() string {
	b.calls = append(b.calls, "Render")
	return "recorded"
}

func TestPenguin_IsNotAFlyingBird(t *testing.T) {
	var b Bird = &Penguin{}
	_, flies := b.(FlyingBird)
	assert.False(t, flies, "Penguin must satisfy the narrow contract without SetAltitude")

	b = &Parrot{}
	_, flies = b.(FlyingBird)
	assert.True(t, flies)
}

func TestBirdView_Show(t *testing.T) {
	assert.Equal(t, "penguin at (1.00, 2.00)", NewBirdView(&Penguin{}).Show(1, 2))
	assert.Equal(t, "parrot at (1.00, 2.00) altitude 0.0", NewBirdView(&Parrot{}).Show(1, 2))
}

func TestBirdView_SubstitutionKeepsCallSequence(t *testing.T) {
	a, b := &recordingBird{}, &recordingBird{}
	NewBirdView(a).Show(1, 2)
	NewBirdView(b).Show(3, 4)
	assert.Equal(t, []string{"SetLocalization", "Render"}, a.calls)
	assert.Equal(t, a.calls, b.calls)
}

func TestFlightController_Climb(t *testing.T) {
	p := &Parrot{}
	p.SetLocalization(5, 6)
	assert.Equal(t, "parrot at (5.00, 6.00) altitude 300.0", NewFlightController(p).Climb(300))
}

func TestLegacyPenguin_IgnoresAltitude(t *testing.T) {
	p := &LegacyPenguin{}
	p.SetLocalization(1, 1)
	p.SetAltitude(500)
	assert.Equal(t, "penguin at (1.00, 1.00)", p.Render())

	lp := &LegacyParrot{}
	lp.SetAltitude(10)
	assert.Contains(t, lp.Render(), "altitude 10.0")
}

func TestDemonstrate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demonstrate(&buf))
	assert.Equal(t,
		"parrot at (-46.63, -23.55) altitude 0.0\n"+
			"penguin at (-68.30, -54.80)\n"+
			"parrot at (-46.63, -23.55) altitude 120.0\n",
		buf.String())
}
