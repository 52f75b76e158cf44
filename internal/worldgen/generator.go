package worldgen

import (
	"fmt"
	"math/rand"

	noise "github.com/annel0/go-noise"
	"github.com/annel0/go-noise/internal/logging"
	"github.com/annel0/go-noise/internal/vec"
)

// BiomeType представляет тип биома
type BiomeType int

const (
	BiomePlains BiomeType = iota
	BiomeDesert
	BiomeForest
	BiomeMountains
	BiomeWater
	BiomeDeepWater
)

// Константы высот для генерации (высота нормализована в [0,1])
const (
	DeepWaterMax    = 0.20 // Ниже - глубинная вода
	ShallowWaterMax = 0.30 // Ниже - мелководье
	ActiveStart     = 0.60 // Выше - активные объекты (деревья и т.п.)
	MountainStart   = 0.80 // Выше - горы с рудами
)

// Params задаёт параметры генератора ландшафта
type Params struct {
	Seed          int64
	Period        int     // размер таблицы перестановки (0 — по умолчанию 256)
	Repeat        int     // период тайлинга карты высот в ячейках решётки
	NoiseScale    float64 // масштаб основного шума (высота)
	BiomeScale    float64 // масштаб шума биомов
	ForestDensity float64 // плотность лесов (от 0 до 1)
}

// Generator генерирует ландшафт мира на основе двух шумовых полей:
// бесшовной карты высот (TileableNoise) и поля биомов (SimplexNoise).
type Generator struct {
	params Params
	height *noise.TileableNoise
	biome  *noise.SimplexNoise
	log    *logging.Logger
}

// NewGenerator создаёт новый генератор мира
func NewGenerator(p Params) (*Generator, error) {
	if p.Period <= 0 {
		p.Period = noise.DefaultPeriod
	}
	if p.Repeat <= 0 {
		p.Repeat = 64
	}
	if p.NoiseScale <= 0 {
		p.NoiseScale = 0.05 // Настройка сглаженности ландшафта
	}
	if p.BiomeScale <= 0 {
		p.BiomeScale = 0.02 // Настройка размера биомов
	}
	if p.ForestDensity <= 0 {
		p.ForestDensity = 0.05 // 5% шанс появления деревьев на равнинах
	}

	height, err := noise.NewTileableSeeded(p.Period, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("worldgen: не удалось создать шум высот: %w", err)
	}
	// Отдельный сид для поля биомов, чтобы оно не коррелировало с высотой
	biome, err := noise.NewSimplexSeeded(p.Period, p.Seed+42)
	if err != nil {
		return nil, fmt.Errorf("worldgen: не удалось создать шум биомов: %w", err)
	}

	g := &Generator{
		params: p,
		height: height,
		biome:  biome,
		log:    logging.GetWorldgenLogger(),
	}
	g.log.Debug("Генератор создан: сид %d, период %d, repeat %d", p.Seed, p.Period, p.Repeat)
	return g, nil
}

// Params возвращает параметры генератора
func (g *Generator) Params() Params {
	return g.params
}

// HeightAt возвращает высоту ландшафта в точке, нормализованную в [0,1].
// Карта высот повторяется каждые Repeat/NoiseScale тайлов по обеим осям.
func (g *Generator) HeightAt(x, y int) float64 {
	nx := float64(x) * g.params.NoiseScale
	ny := float64(y) * g.params.NoiseScale
	n := g.height.Noise2(nx, ny, g.params.Repeat, 0)
	// Преобразуем из [-1,1] в [0,1]
	return (n + 1) / 2
}

// BiomeAt возвращает биом в точке
func (g *Generator) BiomeAt(x, y int) BiomeType {
	return g.biomeFor(g.HeightAt(x, y), g.biomeValueAt(x, y))
}

// biomeValueAt возвращает значение поля биомов в точке
func (g *Generator) biomeValueAt(x, y int) float64 {
	bx := float64(x) * g.params.BiomeScale
	by := float64(y) * g.params.BiomeScale
	return g.biome.Noise2(bx, by)
}

// GenerateChunk генерирует чанк по его координатам
func (g *Generator) GenerateChunk(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)

	// Локальный генератор случайных чисел для детерминированности:
	// уникальный сид чанка на основе глобального сида и координат
	chunkSeed := g.params.Seed + int64(coords.X*31) + int64(coords.Y*17)
	rng := rand.New(rand.NewSource(chunkSeed))

	globalStartX := coords.X << 4 // chunkX * 16
	globalStartY := coords.Y << 4 // chunkY * 16

	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			globalX := globalStartX + x
			globalY := globalStartY + y

			height := g.HeightAt(globalX, globalY)
			biome := g.biomeFor(height, g.biomeValueAt(globalX, globalY))

			tile := Tile{
				Height: height,
				Biome:  biome,
			}
			tile.Feature = g.featureFor(biome, height, rng)

			chunk.Tiles[y][x] = tile
		}
	}

	g.log.Trace("Чанк (%d,%d) сгенерирован", coords.X, coords.Y)
	return chunk
}

// biomeFor определяет тип биома на основе значений шума
func (g *Generator) biomeFor(height, biomeValue float64) BiomeType {
	// Водные биомы в низинах
	if height < DeepWaterMax {
		return BiomeDeepWater
	}
	if height < ShallowWaterMax {
		return BiomeWater
	}

	// Горные биомы на возвышенностях
	if height > MountainStart {
		return BiomeMountains
	}

	// Для средних высот выбираем биом на основе biomeValue
	if biomeValue < -0.3 {
		return BiomeDesert
	} else if biomeValue > 0.3 {
		return BiomeForest
	}

	return BiomePlains
}

// featureFor размещает объекты ландшафта в зависимости от биома
func (g *Generator) featureFor(biome BiomeType, height float64, rng *rand.Rand) FeatureType {
	switch biome {
	case BiomeForest:
		if rng.Float64() < 0.15 { // 15% шанс дерева в лесу
			return FeatureTree
		}
	case BiomePlains:
		if rng.Float64() < g.params.ForestDensity {
			return FeatureTree
		}
	case BiomeDesert:
		if rng.Float64() < 0.02 { // 2% шанс кактуса в пустыне
			return FeatureCactus
		}
	case BiomeMountains:
		if rng.Float64() < 0.1 { // 10% шанс руды
			return FeatureOre
		}
	}
	return FeatureNone
}
