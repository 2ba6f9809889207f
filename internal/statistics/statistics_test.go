package statistics

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltixdb/tsread/internal/types"
)

func TestStringStatistics_Update(t *testing.T) {
	stats := NewStringStatistics()
	assert.True(t, stats.IsEmpty())

	stats.UpdateString("aaa")
	assert.False(t, stats.IsEmpty())
	stats.UpdateString("bbb")
	assert.False(t, stats.IsEmpty())

	assert.Equal(t, "bbb", stats.Max())
	assert.Equal(t, "aaa", stats.Min())
}

func TestStringStatistics_Merge(t *testing.T) {
	stats1 := NewStringStatistics()
	stats2 := NewStringStatistics()

	stats1.UpdateString("aaa")
	stats1.UpdateString("ccc")
	stats2.UpdateString("ddd")

	stats3 := NewStringStatistics()
	require.NoError(t, stats3.Merge(stats1))
	assert.False(t, stats3.IsEmpty())
	assert.Equal(t, "ccc", stats3.Max())
	assert.Equal(t, "aaa", stats3.Min())

	require.NoError(t, stats3.Merge(stats2))
	assert.Equal(t, "ddd", stats3.Max())
	assert.Equal(t, "aaa", stats3.Min())
}

func TestNew(t *testing.T) {
	tests := []struct {
		dt       types.DataType
		expected string
	}{
		{types.Boolean, "*statistics.BooleanStatistics"},
		{types.Int32, "*statistics.Int32Statistics"},
		{types.Int64, "*statistics.Int64Statistics"},
		{types.Float, "*statistics.FloatStatistics"},
		{types.Double, "*statistics.DoubleStatistics"},
		{types.Text, "*statistics.BinaryStatistics"},
		{types.EnumText, "*statistics.BinaryStatistics"},
	}

	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			s, err := New(tt.dt)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, typeName(s))
			assert.Equal(t, tt.dt, s.Type())
			assert.True(t, s.IsEmpty())
		})
	}

	_, err := New(types.DataType(200))
	assert.ErrorIs(t, err, types.ErrUnsupportedType)
}

func typeName(v interface{}) string {
	return reflect.TypeOf(v).String()
}

func TestUpdate_TracksTrueBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("Int64", func(t *testing.T) {
		s := NewInt64Statistics()
		lo, hi := int64(math.MaxInt64), int64(math.MinInt64)
		for i := 0; i < 1000; i++ {
			v := rng.Int63() - rng.Int63()
			lo, hi = min(lo, v), max(hi, v)
			require.NoError(t, s.Update(types.Int64Value(v)))
		}
		assert.Equal(t, lo, s.Min())
		assert.Equal(t, hi, s.Max())
	})

	t.Run("Int32", func(t *testing.T) {
		s := NewInt32Statistics()
		lo, hi := int32(math.MaxInt32), int32(math.MinInt32)
		for i := 0; i < 1000; i++ {
			v := rng.Int31() - rng.Int31()
			lo, hi = min(lo, v), max(hi, v)
			s.UpdateInt32(v)
		}
		assert.Equal(t, lo, s.Min())
		assert.Equal(t, hi, s.Max())
	})

	t.Run("Double", func(t *testing.T) {
		s := NewDoubleStatistics()
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < 1000; i++ {
			v := rng.NormFloat64() * 100
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			s.UpdateDouble(v)
		}
		assert.Equal(t, lo, s.Min())
		assert.Equal(t, hi, s.Max())
	})

	t.Run("Float", func(t *testing.T) {
		s := NewFloatStatistics()
		values := []float32{3.5, -2.25, 10, 0, -2.5}
		for _, v := range values {
			s.UpdateFloat(v)
		}
		assert.Equal(t, float32(-2.5), s.Min())
		assert.Equal(t, float32(10), s.Max())
	})

	t.Run("Boolean", func(t *testing.T) {
		s := NewBooleanStatistics()
		s.UpdateBoolean(true)
		assert.True(t, s.Min())
		assert.True(t, s.Max())
		s.UpdateBoolean(false)
		assert.False(t, s.Min())
		assert.True(t, s.Max())
	})

	t.Run("Binary", func(t *testing.T) {
		s := NewBinaryStatistics(types.Text)
		for _, v := range []string{"m", "abc", "zz", "ab", "z"} {
			require.NoError(t, s.Update(types.StringValue(v)))
		}
		assert.Equal(t, "ab", s.Min().String())
		assert.Equal(t, "zz", s.Max().String())
	})
}

func TestBinaryStatistics_CopiesRetainedBounds(t *testing.T) {
	s := NewBinaryStatistics(types.Text)
	buf := []byte("mmm")
	s.UpdateBinary(buf)

	buf[0] = 'a'
	assert.Equal(t, "mmm", s.Min().String())
	assert.Equal(t, "mmm", s.Max().String())
}

func TestDoubleStatistics_NaNOrdersFirst(t *testing.T) {
	s := NewDoubleStatistics()
	s.UpdateDouble(1)
	s.UpdateDouble(math.NaN())
	s.UpdateDouble(2)

	if !math.IsNaN(s.Min()) {
		t.Errorf("expected NaN min, got %v", s.Min())
	}
	if s.Max() != 2 {
		t.Errorf("expected max 2, got %v", s.Max())
	}

	first := NewDoubleStatistics()
	first.UpdateDouble(math.NaN())
	first.UpdateDouble(1)
	first.UpdateDouble(5)
	if !math.IsNaN(first.Min()) || first.Max() != 5 {
		t.Errorf("expected [NaN, 5], got [%v, %v]", first.Min(), first.Max())
	}
}

func TestMerge_OrderIndependentWithNaN(t *testing.T) {
	tests := []struct {
		name   string
		inputs [][]float64
	}{
		{"nan only operand", [][]float64{{math.NaN()}, {1, 5}, {-2}}},
		{"nan mixed", [][]float64{{3, math.NaN()}, {}, {7, -1}}},
		{"all nan", [][]float64{{math.NaN()}, {math.NaN()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wantMin, wantMax float64
			for i, order := range permutations(len(tt.inputs)) {
				merged := NewDoubleStatistics()
				for _, idx := range order {
					part := NewDoubleStatistics()
					for _, v := range tt.inputs[idx] {
						part.UpdateDouble(v)
					}
					if err := merged.Merge(part); err != nil {
						t.Fatalf("merge failed: %v", err)
					}
				}
				if i == 0 {
					wantMin, wantMax = merged.Min(), merged.Max()
					continue
				}
				if !sameFloat(wantMin, merged.Min()) || !sameFloat(wantMax, merged.Max()) {
					t.Errorf("order %v: got [%v, %v], want [%v, %v]",
						order, merged.Min(), merged.Max(), wantMin, wantMax)
				}
			}
		})
	}

	f := NewFloatStatistics()
	f.UpdateFloat(float32(math.NaN()))
	g := NewFloatStatistics()
	g.UpdateFloat(4)
	if err := g.Merge(f); err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if !math.IsNaN(float64(g.Min())) || g.Max() != 4 {
		t.Errorf("expected [NaN, 4], got [%v, %v]", g.Min(), g.Max())
	}
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func TestUpdate_TypeMismatch(t *testing.T) {
	s := NewInt32Statistics()
	err := s.Update(types.Int64Value(1))
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
	assert.True(t, s.IsEmpty())

	b := NewBinaryStatistics(types.Text)
	assert.ErrorIs(t, b.Update(types.EnumTextValue(types.BinaryOf("x"))), types.ErrTypeMismatch)

	str := NewStringStatistics()
	require.NoError(t, str.Update(types.EnumTextValue(types.BinaryOf("x"))))
	assert.ErrorIs(t, str.Update(types.BooleanValue(true)), types.ErrTypeMismatch)
}

func TestMerge_EmptyCases(t *testing.T) {
	t.Run("EmptyIntoEmpty", func(t *testing.T) {
		a, b := NewInt64Statistics(), NewInt64Statistics()
		require.NoError(t, a.Merge(b))
		assert.True(t, a.IsEmpty())
	})

	t.Run("NonEmptyIntoEmpty", func(t *testing.T) {
		a, b := NewInt64Statistics(), NewInt64Statistics()
		b.UpdateInt64(5)
		b.UpdateInt64(9)
		require.NoError(t, a.Merge(b))
		assert.False(t, a.IsEmpty())
		assert.Equal(t, int64(5), a.Min())
		assert.Equal(t, int64(9), a.Max())
	})

	t.Run("EmptyIntoNonEmpty", func(t *testing.T) {
		a, b := NewInt64Statistics(), NewInt64Statistics()
		a.UpdateInt64(3)
		require.NoError(t, a.Merge(b))
		assert.Equal(t, int64(3), a.Min())
		assert.Equal(t, int64(3), a.Max())
	})
}

func TestMerge_TypeMismatchLeavesOperandsUnchanged(t *testing.T) {
	a := NewInt32Statistics()
	a.UpdateInt32(4)
	b := NewInt64Statistics()
	b.UpdateInt64(100)

	err := a.Merge(b)
	assert.ErrorIs(t, err, types.ErrTypeMismatch)
	assert.Equal(t, int32(4), a.Min())
	assert.Equal(t, int32(4), a.Max())
	assert.Equal(t, int64(100), b.Min())

	text := NewBinaryStatistics(types.Text)
	enum := NewBinaryStatistics(types.EnumText)
	enum.UpdateBinary(types.BinaryOf("x"))
	assert.ErrorIs(t, text.Merge(enum), types.ErrTypeMismatch)
	assert.True(t, text.IsEmpty())

	assert.ErrorIs(t, NewStringStatistics().Merge(text), types.ErrTypeMismatch)
}

func TestMerge_OrderIndependent(t *testing.T) {
	build := func(values ...int64) *Int64Statistics {
		s := NewInt64Statistics()
		for _, v := range values {
			s.UpdateInt64(v)
		}
		return s
	}

	inputs := [][]int64{{5, 7}, {}, {-3, 2}, {11}}
	orders := permutations(len(inputs))

	var wantMin, wantMax int64
	for i, order := range orders {
		acc := NewInt64Statistics()
		for _, idx := range order {
			require.NoError(t, acc.Merge(build(inputs[idx]...)))
		}
		require.False(t, acc.IsEmpty())
		if i == 0 {
			wantMin, wantMax = acc.Min(), acc.Max()
			continue
		}
		assert.Equal(t, wantMin, acc.Min(), "order %v", order)
		assert.Equal(t, wantMax, acc.Max(), "order %v", order)
	}
	assert.Equal(t, int64(-3), wantMin)
	assert.Equal(t, int64(11), wantMax)
}

func TestMerge_OrderIndependentStrings(t *testing.T) {
	inputs := [][]string{{"k", "q"}, {"b"}, {"x", "c"}}
	for _, order := range permutations(len(inputs)) {
		acc := NewStringStatistics()
		for _, idx := range order {
			s := NewStringStatistics()
			for _, v := range inputs[idx] {
				s.UpdateString(v)
			}
			require.NoError(t, acc.Merge(s))
		}
		assert.Equal(t, "b", acc.Min(), "order %v", order)
		assert.Equal(t, "x", acc.Max(), "order %v", order)
	}
}

func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, p := range permutations(n - 1) {
		for pos := 0; pos <= len(p); pos++ {
			perm := make([]int, 0, n)
			perm = append(perm, p[:pos]...)
			perm = append(perm, n-1)
			perm = append(perm, p[pos:]...)
			out = append(out, perm)
		}
	}
	return out
}

func TestBytesRoundtrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() Statistics
	}{
		{"Boolean", func() Statistics {
			s := NewBooleanStatistics()
			s.UpdateBoolean(true)
			s.UpdateBoolean(false)
			return s
		}},
		{"Int32", func() Statistics {
			s := NewInt32Statistics()
			s.UpdateInt32(math.MinInt32)
			s.UpdateInt32(17)
			return s
		}},
		{"Int64", func() Statistics {
			s := NewInt64Statistics()
			s.UpdateInt64(-1)
			s.UpdateInt64(math.MaxInt64)
			return s
		}},
		{"Float", func() Statistics {
			s := NewFloatStatistics()
			s.UpdateFloat(-0.125)
			s.UpdateFloat(3e10)
			return s
		}},
		{"Double", func() Statistics {
			s := NewDoubleStatistics()
			s.UpdateDouble(math.SmallestNonzeroFloat64)
			s.UpdateDouble(-1e300)
			return s
		}},
		{"Text", func() Statistics {
			s := NewBinaryStatistics(types.Text)
			s.UpdateBinary(types.BinaryOf("beta"))
			s.UpdateBinary(types.BinaryOf("alpha"))
			return s
		}},
		{"EnumText", func() Statistics {
			s := NewBinaryStatistics(types.EnumText)
			s.UpdateBinary(types.BinaryOf("ON"))
			s.UpdateBinary(types.BinaryOf("OFF"))
			return s
		}},
		{"String", func() Statistics {
			s := NewStringStatistics()
			s.UpdateString("日本")
			s.UpdateString("abc")
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.build()

			var dst Statistics
			if _, ok := src.(*StringStatistics); ok {
				dst = NewStringStatistics()
			} else {
				var err error
				dst, err = New(src.Type())
				require.NoError(t, err)
			}

			require.NoError(t, dst.SetMinMaxFromBytes(src.MinBytes(), src.MaxBytes()))
			assertSameBounds(t, src, dst)

			decoded, err := Unmarshal(Marshal(src))
			require.NoError(t, err)
			assertSameBounds(t, src, decoded)
		})
	}
}

func assertSameBounds(t *testing.T, want, got Statistics) {
	t.Helper()
	assert.Equal(t, want.Type(), got.Type())
	assert.Equal(t, want.IsEmpty(), got.IsEmpty())

	wantMin, err := want.MinValue()
	require.NoError(t, err)
	gotMin, err := got.MinValue()
	require.NoError(t, err)
	assert.Equal(t, wantMin.String(), gotMin.String())

	wantMax, err := want.MaxValue()
	require.NoError(t, err)
	gotMax, err := got.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, wantMax.String(), gotMax.String())
}

func TestSetMinMaxFromBytes_WrongWidth(t *testing.T) {
	s := NewInt64Statistics()
	err := s.SetMinMaxFromBytes([]byte{1, 2, 3}, make([]byte, 8))
	assert.ErrorIs(t, err, types.ErrDecode)
	assert.True(t, s.IsEmpty())
}

func TestMarshal_Empty(t *testing.T) {
	for _, s := range []Statistics{NewDoubleStatistics(), NewStringStatistics()} {
		data := Marshal(s)
		assert.Len(t, data, 2)

		decoded, err := Unmarshal(data)
		require.NoError(t, err)
		assert.True(t, decoded.IsEmpty())
		assert.Equal(t, typeName(s), typeName(decoded))

		_, err = decoded.MinValue()
		assert.ErrorIs(t, err, ErrEmpty)
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	full := NewInt32Statistics()
	full.UpdateInt32(1)
	data := Marshal(full)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"TooShort", []byte{1}, types.ErrDecode},
		{"UnknownTag", []byte{99, 1}, types.ErrUnsupportedType},
		{"Truncated", data[:len(data)-2], types.ErrDecode},
		{"Trailing", append(append([]byte{}, data...), 0), types.ErrDecode},
		{"EmptyWithTrailing", []byte{byte(types.Int32), 1, 0}, types.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReset(t *testing.T) {
	s := NewDoubleStatistics()
	s.UpdateDouble(1.5)
	s.Reset()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.MinBytes())

	s.UpdateDouble(-4)
	assert.Equal(t, -4.0, s.Min())
	assert.Equal(t, -4.0, s.Max())
}
