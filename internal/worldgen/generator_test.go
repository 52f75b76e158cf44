package worldgen

import (
	"testing"

	"github.com/annel0/go-noise/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDefaults(t *testing.T) {
	g, err := NewGenerator(Params{Seed: 12345})
	require.NoError(t, err)

	p := g.Params()
	assert.Equal(t, int64(12345), p.Seed, "Seed должен быть установлен правильно")
	assert.Equal(t, 256, p.Period, "Период по умолчанию должен быть 256")
	assert.Equal(t, 64, p.Repeat, "Repeat по умолчанию должен быть 64")
	assert.Greater(t, p.NoiseScale, 0.0)
	assert.Greater(t, p.BiomeScale, 0.0)
}

func TestGeneratorInvalidSeedPeriod(t *testing.T) {
	// Период передаётся в шумовые генераторы как есть, если задан
	g, err := NewGenerator(Params{Seed: 1, Period: 32})
	require.NoError(t, err)
	assert.Equal(t, 32, g.Params().Period)
}

func TestHeightAtNormalized(t *testing.T) {
	g, err := NewGenerator(Params{Seed: 7})
	require.NoError(t, err)

	for x := -200; x < 200; x += 7 {
		for y := -200; y < 200; y += 13 {
			h := g.HeightAt(x, y)
			if h < 0 || h > 1 {
				t.Fatalf("Высота %v в (%d,%d) вне диапазона [0,1]", h, x, y)
			}
		}
	}
}

func TestGenerateChunkDeterministic(t *testing.T) {
	a, err := NewGenerator(Params{Seed: 42})
	require.NoError(t, err)
	b, err := NewGenerator(Params{Seed: 42})
	require.NoError(t, err)

	coords := vec.Vec2{X: 3, Y: -2}
	assert.Equal(t, a.GenerateChunk(coords), b.GenerateChunk(coords),
		"Одинаковый сид должен давать одинаковые чанки")
}

func TestGenerateChunkSeedSensitive(t *testing.T) {
	a, err := NewGenerator(Params{Seed: 1})
	require.NoError(t, err)
	b, err := NewGenerator(Params{Seed: 2})
	require.NoError(t, err)

	coords := vec.Vec2{X: 0, Y: 0}
	assert.NotEqual(t, a.GenerateChunk(coords), b.GenerateChunk(coords),
		"Разные сиды должны давать разные чанки")
}

func TestBiomeThresholds(t *testing.T) {
	g, err := NewGenerator(Params{Seed: 5})
	require.NoError(t, err)

	// Проверяем классификацию напрямую по порогам
	assert.Equal(t, BiomeDeepWater, g.biomeFor(0.1, 0))
	assert.Equal(t, BiomeWater, g.biomeFor(0.25, 0))
	assert.Equal(t, BiomeMountains, g.biomeFor(0.9, 0))
	assert.Equal(t, BiomeDesert, g.biomeFor(0.5, -0.5))
	assert.Equal(t, BiomeForest, g.biomeFor(0.5, 0.5))
	assert.Equal(t, BiomePlains, g.biomeFor(0.5, 0))
}

func TestChunkTileConsistency(t *testing.T) {
	g, err := NewGenerator(Params{Seed: 9})
	require.NoError(t, err)

	coords := vec.Vec2{X: 1, Y: 1}
	chunk := g.GenerateChunk(coords)

	assert.Equal(t, coords, chunk.Coords, "Координаты чанка должны сохраняться")

	// Высоты и биомы в чанке соответствуют точечным запросам
	for y := 0; y < ChunkSize; y++ {
		for x := 0; x < ChunkSize; x++ {
			globalX := coords.X<<4 + x
			globalY := coords.Y<<4 + y
			global := vec.Vec2{X: globalX, Y: globalY}

			assert.Equal(t, coords, global.ToChunkCoords(), "Глобальная точка должна попадать в этот чанк")

			tile := chunk.TileAt(global)
			assert.Equal(t, g.HeightAt(globalX, globalY), tile.Height)
			assert.Equal(t, g.BiomeAt(globalX, globalY), tile.Biome)
		}
	}
}

func TestFeaturesMatchBiomes(t *testing.T) {
	g, err := NewGenerator(Params{Seed: 77, ForestDensity: 1.0})
	require.NoError(t, err)

	// Кактусы не растут вне пустыни, деревья — в воде
	for cx := -4; cx < 4; cx++ {
		for cy := -4; cy < 4; cy++ {
			chunk := g.GenerateChunk(vec.Vec2{X: cx, Y: cy})
			for y := 0; y < ChunkSize; y++ {
				for x := 0; x < ChunkSize; x++ {
					tile := chunk.Tiles[y][x]
					switch tile.Feature {
					case FeatureCactus:
						assert.Equal(t, BiomeDesert, tile.Biome, "Кактус вне пустыни")
					case FeatureTree:
						assert.Contains(t, []BiomeType{BiomeForest, BiomePlains}, tile.Biome, "Дерево вне леса и равнин")
					case FeatureOre:
						assert.Equal(t, BiomeMountains, tile.Biome, "Руда вне гор")
					}
				}
			}
		}
	}
}
