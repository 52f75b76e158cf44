// Package noise реализует генераторы градиентного шума для процедурной
// генерации текстур и ландшафта: классический "бесшовный" шум Перлина
// (TileableNoise) и симплекс-шум (SimplexNoise). Оба генератора
// детерминированы: результат зависит только от таблицы перестановки и
// входных координат, поэтому запросы безопасны из нескольких горутин
// одновременно. Исключение — Randomize*, которые заменяют таблицу и
// требуют внешней синхронизации с читателями.
package noise

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// DefaultPeriod — размер таблицы перестановки по умолчанию.
const DefaultPeriod = 256

var (
	// ErrInvalidPeriod возвращается, если период не положительный.
	ErrInvalidPeriod = errors.New("noise: invalid period")

	// ErrInvalidPermutationTable возвращается, если переданная таблица
	// не является перестановкой [0, period).
	ErrInvalidPermutationTable = errors.New("noise: invalid permutation table")
)

// BaseNoise хранит таблицу перестановки и период, общие для всех
// вариантов шума. Внутри таблица удвоена до длины 2*period, чтобы
// цепочки хеширования perm[perm[i]+j] не выходили за границы.
type BaseNoise struct {
	perm   []int // len == 2*period
	period int
}

// NewBase создаёт BaseNoise со случайной перестановкой [0, period).
func NewBase(period int) (*BaseNoise, error) {
	return NewBaseSeeded(period, time.Now().UnixNano())
}

// NewBaseSeeded создаёт BaseNoise с детерминированной перестановкой,
// полученной из сида. Одинаковый сид всегда даёт одинаковую таблицу.
func NewBaseSeeded(period int, seed int64) (*BaseNoise, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: период %d, ожидался положительный", ErrInvalidPeriod, period)
	}
	b := &BaseNoise{period: period}
	b.shuffle(rand.New(rand.NewSource(seed)))
	return b, nil
}

// NewBaseWithTable создаёт BaseNoise из готовой таблицы. Период равен
// длине таблицы. Таблица проверяется сразу: каждое значение из
// [0, len(table)) должно встречаться ровно один раз, иначе цепочка
// perm[perm[i]+j] вышла бы за границы во время запроса шума.
func NewBaseWithTable(table []int) (*BaseNoise, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: пустая таблица", ErrInvalidPeriod)
	}
	if err := validateTable(table); err != nil {
		return nil, err
	}
	b := &BaseNoise{period: len(table)}
	b.setTable(table)
	return b, nil
}

// NewDefaultBase создаёт BaseNoise с эталонной таблицей Кена Перлина
// (период 256). Таблица встроена как константный ресурс, поэтому два
// генератора по умолчанию всегда дают одинаковый результат.
func NewDefaultBase() *BaseNoise {
	b := &BaseNoise{period: DefaultPeriod}
	b.setTable(defaultPermutation[:])
	return b
}

// Period возвращает текущий период (размер таблицы).
func (b *BaseNoise) Period() int {
	return b.period
}

// Permutation возвращает копию таблицы перестановки одинарной длины.
func (b *BaseNoise) Permutation() []int {
	out := make([]int, b.period)
	copy(out, b.perm[:b.period])
	return out
}

// Randomize заменяет таблицу свежей случайной перестановкой текущего
// периода. Последующие запросы шума сразу видят новое поле.
func (b *BaseNoise) Randomize() {
	b.RandomizeSeeded(time.Now().UnixNano())
}

// RandomizeSeeded заменяет таблицу детерминированной перестановкой,
// полученной из сида.
func (b *BaseNoise) RandomizeSeeded(seed int64) {
	b.shuffle(rand.New(rand.NewSource(seed)))
}

// RandomizePeriod меняет период и генерирует новую случайную таблицу.
func (b *BaseNoise) RandomizePeriod(period int) error {
	if period <= 0 {
		return fmt.Errorf("%w: период %d, ожидался положительный", ErrInvalidPeriod, period)
	}
	b.period = period
	b.Randomize()
	return nil
}

// shuffle генерирует перестановку [0, period) тасованием Фишера-Йетса
// и сохраняет её удвоенной.
func (b *BaseNoise) shuffle(rng *rand.Rand) {
	table := make([]int, b.period)
	for i := range table {
		table[i] = i
	}
	for i := len(table) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		table[i], table[j] = table[j], table[i]
	}
	b.setTable(table)
}

// setTable сохраняет таблицу, удваивая её.
func (b *BaseNoise) setTable(table []int) {
	b.perm = make([]int, 0, 2*len(table))
	b.perm = append(b.perm, table...)
	b.perm = append(b.perm, table...)
}

// validateTable проверяет, что table — перестановка [0, len(table)).
func validateTable(table []int) error {
	seen := make([]bool, len(table))
	for i, v := range table {
		if v < 0 || v >= len(table) {
			return fmt.Errorf("%w: значение %d на позиции %d вне диапазона [0,%d)",
				ErrInvalidPermutationTable, v, i, len(table))
		}
		if seen[v] {
			return fmt.Errorf("%w: значение %d встречается повторно", ErrInvalidPermutationTable, v)
		}
		seen[v] = true
	}
	return nil
}

// wrap приводит v к диапазону [0, m) с "полом" (floored modulo), чтобы
// отрицательные координаты решётки заворачивались так же, как
// положительные, и тайлинг сохранялся на всей оси.
func wrap(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}
