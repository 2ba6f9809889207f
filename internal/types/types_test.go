package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		dt       DataType
		expected uint8
	}{
		{"BOOLEAN", Boolean, 0},
		{"INT32", Int32, 1},
		{"INT64", Int64, 2},
		{"FLOAT", Float, 3},
		{"DOUBLE", Double, 4},
		{"TEXT", Text, 5},
		{"ENUMS", EnumText, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uint8(tt.dt))
			assert.Equal(t, tt.name, tt.dt.String())
			assert.True(t, tt.dt.Valid())

			parsed, err := ParseDataType(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.dt, parsed)
		})
	}
}

func TestDataType_Invalid(t *testing.T) {
	dt := DataType(42)
	assert.False(t, dt.Valid())
	assert.Equal(t, "DataType(42)", dt.String())
}

func TestParseDataType(t *testing.T) {
	tests := []struct {
		input   string
		want    DataType
		wantErr error
	}{
		{" int64 ", Int64, nil},
		{"enum", EnumText, nil},
		{"DECIMAL", 0, ErrUnsupportedType},
	}

	for _, tt := range tests {
		dt, err := ParseDataType(tt.input)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseDataType(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && dt != tt.want {
			t.Errorf("ParseDataType(%q) = %v, want %v", tt.input, dt, tt.want)
		}
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"Boolean", BooleanValue(true), "true"},
		{"Int32", Int32Value(-42), "-42"},
		{"Int64", Int64Value(1 << 40), "1099511627776"},
		{"Float", FloatValue(3), "3"},
		{"FloatFraction", FloatValue(1.5), "1.5"},
		{"Double", DoubleValue(0.1), "0.1"},
		{"Text", StringValue("hello"), "hello"},
		{"EnumText", EnumTextValue(BinaryOf("ON")), "ON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestParseValue(t *testing.T) {
	for _, v := range []Value{
		BooleanValue(false),
		Int32Value(7),
		Int64Value(-9),
		FloatValue(2.25),
		DoubleValue(-0.5),
		StringValue("x y"),
		EnumTextValue(BinaryOf("OFF")),
	} {
		t.Run(v.Type.String(), func(t *testing.T) {
			parsed, err := ParseValue(v.Type, v.String())
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		})
	}

	_, err := ParseValue(Int32, "99999999999")
	assert.ErrorIs(t, err, ErrDecode)

	_, err = ParseValue(DataType(99), "1")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestBinary_Compare(t *testing.T) {
	assert.Negative(t, BinaryOf("aaa").Compare(BinaryOf("aab")))
	assert.Positive(t, BinaryOf("b").Compare(BinaryOf("abc")))
	assert.Zero(t, BinaryOf("same").Compare(BinaryOf("same")))
	assert.Negative(t, BinaryOf("").Compare(BinaryOf("a")))
}

func TestError_Is(t *testing.T) {
	err := NewOutOfRangeError("value", 5, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, 5, err.Details["index"])
	assert.Equal(t, 3, err.Details["length"])
	assert.Contains(t, err.Error(), "out of bounds")

	wrapped := fmt.Errorf("reading column: %w", err)
	assert.True(t, errors.Is(wrapped, ErrOutOfRange))

	var typed *Error
	require.True(t, errors.As(wrapped, &typed))
	assert.Equal(t, CodeOutOfRange, typed.Code)
}

func TestError_NegativeIndex(t *testing.T) {
	err := NewOutOfRangeError("time", -1, 10)
	assert.Contains(t, err.Error(), "negative")
}

func TestNewTypeMismatchError(t *testing.T) {
	err := NewTypeMismatchError(Int32, Double)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, "INT32", err.Details["want"])
	assert.Equal(t, "DOUBLE", err.Details["got"])
}
