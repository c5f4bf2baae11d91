package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/crclogic/go-crchdl/crcalg"
)

func TestNewEquation(t *testing.T) {
	tests := []struct {
		name string
		vars []Var
		want []Var
	}{
		{
			name: "empty",
			vars: nil,
			want: []Var{},
		},
		{
			name: "sorted canonically",
			vars: []Var{{Data, 1}, {State, 3}, {Data, 0}, {State, 0}},
			want: []Var{{State, 0}, {State, 3}, {Data, 0}, {Data, 1}},
		},
		{
			name: "even repetitions cancel",
			vars: []Var{{State, 2}, {Data, 1}, {State, 2}},
			want: []Var{{Data, 1}},
		},
		{
			name: "odd repetitions collapse to one",
			vars: []Var{{State, 2}, {State, 2}, {State, 2}},
			want: []Var{{State, 2}},
		},
		{
			name: "full cancellation yields zero",
			vars: []Var{{Data, 7}, {Data, 7}},
			want: []Var{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEquation(tt.vars...)
			require.Empty(t, cmp.Diff(tt.want, got.Terms, cmpopts.EquateEmpty()))
		})
	}
}

func TestEquationContains(t *testing.T) {
	e := NewEquation(Var{State, 0}, Var{Data, 3}, Var{Aux, 1})
	require.True(t, e.Contains(Var{State, 0}))
	require.True(t, e.Contains(Var{Data, 3}))
	require.True(t, e.Contains(Var{Aux, 1}))
	require.False(t, e.Contains(Var{State, 1}))
	require.False(t, e.Contains(Var{Data, 0}))
}

func TestCompare(t *testing.T) {
	// State < Data < Aux, then ascending index.
	ordered := []Var{
		{State, 0}, {State, 5}, {Data, 0}, {Data, 2}, {Aux, 0}, {Aux, 7},
	}
	for i := range ordered {
		require.Zero(t, Compare(ordered[i], ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			require.Negative(t, Compare(ordered[i], ordered[j]), "%v < %v", ordered[i], ordered[j])
			require.Positive(t, Compare(ordered[j], ordered[i]), "%v > %v", ordered[j], ordered[i])
		}
	}
}

func TestEquationString(t *testing.T) {
	require.Equal(t, "0", Equation{}.String())
	e := NewEquation(Var{Data, 1}, Var{State, 7})
	require.Equal(t, "crc[7] ^ data[1]", e.String())
}

func TestEquationSetEval(t *testing.T) {
	// out[0] = crc[0] ^ data[0], out[1] = aux0 ^ data[1] with
	// aux0 = crc[0] ^ crc[1].
	set := &EquationSet{
		Params: crcalg.Params{Width: 2, DataWidth: 2},
		Outputs: []Equation{
			NewEquation(Var{State, 0}, Var{Data, 0}),
			NewEquation(Var{Aux, 0}, Var{Data, 1}),
		},
		Aux: []AuxSignal{
			{Index: 0, Eq: NewEquation(Var{State, 0}, Var{State, 1})},
		},
	}

	for crc := uint64(0); crc < 4; crc++ {
		for data := uint64(0); data < 4; data++ {
			want := ((crc ^ data) & 1) |
				((((crc ^ (crc >> 1)) ^ (data >> 1)) & 1) << 1)
			require.Equal(t, want, set.Eval(crc, data), "crc=%b data=%b", crc, data)
		}
	}
}

func TestEquationSetEvalAuxChain(t *testing.T) {
	// aux1 depends on aux0; dependency order is index order.
	set := &EquationSet{
		Params: crcalg.Params{Width: 1, DataWidth: 3},
		Outputs: []Equation{
			NewEquation(Var{Aux, 1}, Var{Data, 2}),
		},
		Aux: []AuxSignal{
			{Index: 0, Eq: NewEquation(Var{Data, 0}, Var{Data, 1})},
			{Index: 1, Eq: NewEquation(Var{Aux, 0}, Var{State, 0})},
		},
	}

	for crc := uint64(0); crc < 2; crc++ {
		for data := uint64(0); data < 8; data++ {
			want := (data ^ (data >> 1) ^ (data >> 2) ^ crc) & 1
			require.Equal(t, want, set.Eval(crc, data))
		}
	}
}

func TestEquationSetApply(t *testing.T) {
	// A single pass-through output: out[0] = data[0].
	set := &EquationSet{
		Params: crcalg.Params{
			Width: 1, DataWidth: 1,
			Init: 0x1, XorOut: 0x1,
		},
		Outputs: []Equation{NewEquation(Var{Data, 0})},
	}

	// Init seeds a state bit the equation ignores; XorOut flips the result.
	require.Equal(t, uint64(1), set.Apply(0))
	require.Equal(t, uint64(0), set.Apply(1))
}

func TestTermCount(t *testing.T) {
	set := &EquationSet{
		Outputs: []Equation{
			NewEquation(Var{State, 0}, Var{Data, 0}),
			{},
		},
		Aux: []AuxSignal{
			{Index: 0, Eq: NewEquation(Var{State, 1}, Var{Data, 1}, Var{Data, 2})},
		},
	}
	require.Equal(t, 5, set.TermCount())
}
