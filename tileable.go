package noise

import "math"

// TileableNoise — классический шум Перлина (improved noise) с явным
// периодом повторения. Индексы ячеек решётки заворачиваются на repeat
// по каждой оси, поэтому поле размером repeat бесшовно стыкуется само
// с собой при тайлинге.
type TileableNoise struct {
	BaseNoise
}

// NewTileable создаёт генератор с эталонной таблицей (период 256).
func NewTileable() *TileableNoise {
	return &TileableNoise{*NewDefaultBase()}
}

// NewTileableRandom создаёт генератор со случайной таблицей указанного
// периода.
func NewTileableRandom(period int) (*TileableNoise, error) {
	b, err := NewBase(period)
	if err != nil {
		return nil, err
	}
	return &TileableNoise{*b}, nil
}

// NewTileableSeeded создаёт генератор с детерминированной таблицей,
// полученной из сида.
func NewTileableSeeded(period int, seed int64) (*TileableNoise, error) {
	b, err := NewBaseSeeded(period, seed)
	if err != nil {
		return nil, err
	}
	return &TileableNoise{*b}, nil
}

// NewTileableWithTable создаёт генератор из готовой таблицы
// перестановки (период равен её длине).
func NewTileableWithTable(table []int) (*TileableNoise, error) {
	b, err := NewBaseWithTable(table)
	if err != nil {
		return nil, err
	}
	return &TileableNoise{*b}, nil
}

// Noise3 возвращает значение шума в точке (x, y, z), номинально в
// диапазоне [-1, 1]. Поле повторяется с периодом repeat по каждой оси:
// Noise3(x+repeat, y, z, ...) == Noise3(x, y, z, ...). repeat <= 0
// означает "без тайлинга" (решётка заворачивается только на периоде
// таблицы). base сдвигает индексы решётки на int(base) и позволяет
// получать независимые "слои" поля из одной таблицы.
//
// Интерполяция вложена в порядке z, затем y, затем x — как в эталонной
// реализации improved noise.
func (tn *TileableNoise) Noise3(x, y, z float64, repeat int, base float64) float64 {
	if repeat <= 0 {
		repeat = tn.period
	}

	fx := math.Floor(x)
	fy := math.Floor(y)
	fz := math.Floor(z)

	// Индексы ячейки заворачиваются сначала на repeat (тайлинг), затем,
	// уже со сдвигом слоя, на периоде таблицы.
	i := wrap(int(fx), repeat)
	j := wrap(int(fy), repeat)
	k := wrap(int(fz), repeat)
	i1 := (i + 1) % repeat
	j1 := (j + 1) % repeat
	k1 := (k + 1) % repeat

	layer := int(base)
	i = wrap(i+layer, tn.period)
	j = wrap(j+layer, tn.period)
	k = wrap(k+layer, tn.period)
	i1 = wrap(i1+layer, tn.period)
	j1 = wrap(j1+layer, tn.period)
	k1 = wrap(k1+layer, tn.period)

	x -= fx
	y -= fy
	z -= fz
	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Хеши восьми углов ячейки через цепочку perm[perm[i]+j]+k.
	perm := tn.perm
	a := perm[i]
	aa := perm[a+j]
	ab := perm[a+j1]
	b := perm[i1]
	ba := perm[b+j]
	bb := perm[b+j1]

	return Lerp(u,
		Lerp(v,
			Lerp(w,
				Grad3(perm[aa+k], x, y, z),
				Grad3(perm[aa+k1], x, y, z-1)),
			Lerp(w,
				Grad3(perm[ab+k], x, y-1, z),
				Grad3(perm[ab+k1], x, y-1, z-1))),
		Lerp(v,
			Lerp(w,
				Grad3(perm[ba+k], x-1, y, z),
				Grad3(perm[ba+k1], x-1, y, z-1)),
			Lerp(w,
				Grad3(perm[bb+k], x-1, y-1, z),
				Grad3(perm[bb+k1], x-1, y-1, z-1))))
}

// Noise2 — двумерный срез поля при z = 0.
func (tn *TileableNoise) Noise2(x, y float64, repeat int, base float64) float64 {
	return tn.Noise3(x, y, 0, repeat, base)
}
