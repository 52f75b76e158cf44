package noise

// grad3Table — 16 направлений градиента: 12 рёбер куба плюс 4
// повторённых, чтобы индекс выбирался дешёвым hash % 16.
var grad3Table = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// Lerp выполняет линейную интерполяцию: a + t*(b-a). Параметр t не
// ограничивается диапазоном [0,1].
func Lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Grad3 выбирает по хешу одно из 16 направлений градиента и возвращает
// его скалярное произведение с (x, y, z). Чистая функция: одинаковый
// вход всегда даёт одинаковый результат.
func Grad3(hash int, x, y, z float64) float64 {
	g := grad3Table[wrap(hash, len(grad3Table))]
	return g[0]*x + g[1]*y + g[2]*z
}

// fade — квинтическая сглаживающая кривая 6t^5-15t^4+10t^3. Убирает
// разрывы второй производной на границах ячеек решётки.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}
