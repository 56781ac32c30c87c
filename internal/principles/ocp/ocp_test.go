package ocp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRemunerable struct {
	calls []float64
	rate  float64
}

func (r *recordingRemunerable) Remuneration(salary float64) float64 {
	r.calls = append(r.calls, salary)
	return salary * r.rate
}

func TestPayroll_Calculate(t *testing.T) {
	tests := []struct {
		name   string
		r      Remunerable
		salary float64
		want   float64
	}{
		{name: "clt", r: CLTContract{}, salary: 1500, want: 150},
		{name: "trainee", r: Trainee{}, salary: 1200, want: 960},
		{name: "contractor", r: Contractor{}, salary: 1000, want: 1000},
		{name: "zero salary", r: Trainee{}, salary: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewPayroll(tt.r).Calculate(tt.salary), 1e-9)
		})
	}
}

func TestPayroll_SubstitutionKeepsCallSequence(t *testing.T) {
	ten := &recordingRemunerable{rate: 0.10}
	eighty := &recordingRemunerable{rate: 0.8}

	a := NewPayroll(ten).Calculate(1500)
	b := NewPayroll(eighty).Calculate(1500)

	assert.Equal(t, []float64{1500}, ten.calls)
	assert.Equal(t, ten.calls, eighty.calls)
	assert.NotEqual(t, a, b)
}

func TestLegacyPayroll_AgreesOnKnownKinds(t *testing.T) {
	var legacy LegacyPayroll
	assert.InDelta(t, NewPayroll(CLTContract{}).Calculate(1500), legacy.Calculate(LegacyCLTContract{}, 1500), 1e-9)
	assert.InDelta(t, NewPayroll(Trainee{}).Calculate(1200), legacy.Calculate(LegacyTrainee{}, 1200), 1e-9)
}

func TestLegacyPayroll_UnknownKindPaysNothing(t *testing.T) {
	// A new kind of employee is invisible until the switch is edited.
	var legacy LegacyPayroll
	assert.Zero(t, legacy.Calculate(Contractor{}, 1000))
	assert.Zero(t, legacy.Calculate(nil, 1000))
}

func TestDemonstrate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demonstrate(&buf))
	out := buf.String()
	assert.Contains(t, out, "1500.00 ->   150.00")
	assert.Contains(t, out, "1200.00 ->   960.00")
}
