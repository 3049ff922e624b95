package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		want    Summary
		wantErr error
	}{
		{
			name:   "typical series",
			values: []float64{95000, 75000, 105000, 85000},
			want:   Summary{Count: 4, Sum: 360000, Mean: 90000, Min: 75000, Max: 105000},
		},
		{
			name:   "single value",
			values: []float64{42},
			want:   Summary{Count: 1, Sum: 42, Mean: 42, Min: 42, Max: 42},
		},
		{
			name:   "negative values",
			values: []float64{-5, 5},
			want:   Summary{Count: 2, Sum: 0, Mean: 0, Min: -5, Max: 5},
		},
		{
			name:    "empty input rejected",
			values:  nil,
			wantErr: ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.values)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercentage(t *testing.T) {
	got, err := Percentage(25, 200)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, got, 1e-9)

	_, err = Percentage(25, 0)
	assert.ErrorIs(t, err, ErrZeroTotal)
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 4)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-9)

	_, err = Divide(1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   float64
		wantOK bool
	}{
		{name: "int", value: 95000, want: 95000, wantOK: true},
		{name: "int64", value: int64(-3), want: -3, wantOK: true},
		{name: "uint8", value: uint8(7), want: 7, wantOK: true},
		{name: "float64", value: 1.25, want: 1.25, wantOK: true},
		{name: "float32", value: float32(0.5), want: 0.5, wantOK: true},
		{name: "string not parsed", value: "42", wantOK: false},
		{name: "nil", value: nil, wantOK: false},
		{name: "bool", value: true, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coerce(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "thousands", input: 18248, want: "18,248"},
		{name: "millions", input: 1234567, want: "1,234,567"},
		{name: "small", input: 42, want: "42"},
		{name: "zero", input: 0, want: "0"},
		{name: "negative", input: -95000, want: "-95,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.input))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		input     float64
		precision int
		want      string
	}{
		{name: "two decimals", input: 95000.5, precision: 2, want: "95,000.50"},
		{name: "rounds", input: 1234.567, precision: 2, want: "1,234.57"},
		{name: "zero precision", input: 1234.5, precision: 0, want: "1,235"},
		{name: "negative", input: -95000.25, precision: 2, want: "-95,000.25"},
		{name: "negative below one", input: -0.5, precision: 2, want: "-0.50"},
		{name: "small value", input: 8.5, precision: 1, want: "8.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.input, tt.precision))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "salary", input: 95000, want: "$95,000.00"},
		{name: "cents", input: 1234.5, want: "$1,234.50"},
		{name: "zero", input: 0, want: "$0.00"},
		{name: "negative", input: -42.25, want: "-$42.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.input))
		})
	}
}
