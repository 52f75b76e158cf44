package noise

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileableDeterministic(t *testing.T) {
	tn := NewTileable()

	for i := 0; i < 100; i++ {
		x, y, z := float64(i)*0.37, float64(i)*0.91, float64(i)*0.13
		a := tn.Noise3(x, y, z, 8, 0)
		b := tn.Noise3(x, y, z, 8, 0)
		if a != b {
			t.Fatalf("Повторный вызов дал другой результат в (%v,%v,%v): %v != %v", x, y, z, a, b)
		}
	}
}

func TestTileableReferenceValues(t *testing.T) {
	tn := NewTileable()

	// В узлах решётки improved noise равен нулю
	assert.Equal(t, 0.0, tn.Noise3(0, 0, 0, 4, 0))
	assert.Equal(t, 0.0, tn.Noise3(1, 2, 3, 4, 0))

	// Эталонное значение для таблицы по умолчанию: в центре ячейки все
	// веса равны 0.5, результат — среднее восьми угловых градиентов.
	assert.InDelta(t, -0.25, tn.Noise3(0.5, 0.5, 0.5, 4, 0), 1e-12)
	assert.InDelta(t, -0.5, tn.Noise3(0.5, 0.5, 0.5, 4, 1), 1e-12)
}

func TestTileablePeriodicity(t *testing.T) {
	tn := NewTileable()
	const repeat = 4

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		x := rng.Float64()*20 - 10
		y := rng.Float64()*20 - 10
		z := rng.Float64()*20 - 10
		base := float64(rng.Intn(5))

		v := tn.Noise3(x, y, z, repeat, base)
		assert.InDelta(t, v, tn.Noise3(x+repeat, y, z, repeat, base), 1e-9,
			"Поле должно повторяться по x в (%v,%v,%v)", x, y, z)
		assert.InDelta(t, v, tn.Noise3(x, y+repeat, z, repeat, base), 1e-9,
			"Поле должно повторяться по y в (%v,%v,%v)", x, y, z)
		assert.InDelta(t, v, tn.Noise3(x, y, z+repeat, repeat, base), 1e-9,
			"Поле должно повторяться по z в (%v,%v,%v)", x, y, z)
		assert.InDelta(t, v, tn.Noise3(x-repeat, y, z, repeat, base), 1e-9,
			"Тайлинг должен работать и в отрицательную сторону")
	}
}

func TestTileableBounded(t *testing.T) {
	tn := NewTileable()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100
		v := tn.Noise3(x, y, z, 16, 0)
		if math.IsNaN(v) || math.Abs(v) > 1.5 {
			t.Fatalf("Значение %v в (%v,%v,%v) вне ожидаемого диапазона", v, x, y, z)
		}
	}
}

func TestTileableContinuity(t *testing.T) {
	tn := NewTileable()
	const eps = 1e-4

	// Проходим через границы ячеек: скачков быть не должно
	for x := 0.95; x < 2.1; x += eps {
		a := tn.Noise3(x, 0.5, 0.5, 4, 0)
		b := tn.Noise3(x+eps, 0.5, 0.5, 4, 0)
		if math.Abs(a-b) > 0.05 {
			t.Fatalf("Разрыв в x=%v: |%v - %v| = %v", x, a, b, math.Abs(a-b))
		}
	}
}

func TestTileableBaseLayers(t *testing.T) {
	tn := NewTileable()

	// Разные base дают независимые слои из одной таблицы
	a := tn.Noise3(0.5, 0.5, 0.5, 4, 0)
	b := tn.Noise3(0.5, 0.5, 0.5, 4, 1)
	assert.NotEqual(t, a, b, "Слои с разным base должны отличаться")
}

func TestTileableNoise2IsZSlice(t *testing.T) {
	tn := NewTileable()

	assert.Equal(t, tn.Noise3(1.3, 2.7, 0, 8, 0), tn.Noise2(1.3, 2.7, 8, 0))
}

func TestTileableCustomPeriod(t *testing.T) {
	// Шум должен работать и с нестандартным периодом таблицы,
	// в том числе когда repeat больше периода.
	tn, err := NewTileableSeeded(32, 5)
	require.NoError(t, err)

	v := tn.Noise3(0.5, 0.5, 0.5, 64, 0)
	assert.False(t, math.IsNaN(v))
	assert.InDelta(t, v, tn.Noise3(64.5, 0.5, 0.5, 64, 0), 1e-9)
}

func TestTileableRandomizeChangesField(t *testing.T) {
	tn, err := NewTileableSeeded(256, 1)
	require.NoError(t, err)

	sample := func() []float64 {
		out := make([]float64, 0, 10)
		for i := 0; i < 10; i++ {
			out = append(out, tn.Noise3(float64(i)*0.37+0.11, 1.23, 2.71, 8, 0))
		}
		return out
	}

	before := sample()
	tn.RandomizeSeeded(2)
	after := sample()

	assert.NotEqual(t, before, after, "После Randomize поле должно измениться")
}

func BenchmarkTileableNoise3(b *testing.B) {
	tn := NewTileable()
	for i := 0; i < b.N; i++ {
		tn.Noise3(float64(i)*0.01, 1.5, 2.5, 16, 0)
	}
}
