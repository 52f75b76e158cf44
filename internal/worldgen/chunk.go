package worldgen

import "github.com/annel0/go-noise/internal/vec"

// ChunkSize — размер чанка в тайлах по каждой оси
const ChunkSize = 16

// FeatureType представляет объект ландшафта на тайле
type FeatureType uint8

const (
	FeatureNone FeatureType = iota
	FeatureTree
	FeatureCactus
	FeatureOre
)

// Tile содержит результат генерации одной клетки мира
type Tile struct {
	Height  float64 // нормализованная высота [0,1]
	Biome   BiomeType
	Feature FeatureType
}

// Chunk представляет сгенерированный фрагмент мира 16x16
type Chunk struct {
	Coords vec.Vec2
	Tiles  [ChunkSize][ChunkSize]Tile
}

// NewChunk создаёт пустой чанк с указанными координатами
func NewChunk(coords vec.Vec2) *Chunk {
	return &Chunk{Coords: coords}
}

// TileAt возвращает тайл по локальным координатам внутри чанка
func (c *Chunk) TileAt(pos vec.Vec2) Tile {
	local := pos.LocalInChunk()
	return c.Tiles[local.Y][local.X]
}
