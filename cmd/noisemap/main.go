package main

import (
	"encoding/binary"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/annel0/go-noise/internal/config"
	"github.com/annel0/go-noise/internal/logging"
	"github.com/annel0/go-noise/internal/worldgen"
)

// Палитра биомов для режима biome
var biomeColors = map[worldgen.BiomeType]color.RGBA{
	worldgen.BiomeDeepWater: {R: 16, G: 48, B: 128, A: 255},
	worldgen.BiomeWater:     {R: 48, G: 96, B: 192, A: 255},
	worldgen.BiomePlains:    {R: 112, G: 176, B: 80, A: 255},
	worldgen.BiomeDesert:    {R: 224, G: 208, B: 128, A: 255},
	worldgen.BiomeForest:    {R: 48, G: 128, B: 48, A: 255},
	worldgen.BiomeMountains: {R: 144, G: 144, B: 144, A: 255},
}

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию ENV NOISEMAP_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("noisemap"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = &config.Config{}
		logging.Info("Конфигурация не задана, используем значения по умолчанию")
	}

	params := worldgen.Params{
		Seed:          cfg.World.GetSeed(),
		Period:        cfg.World.GetPeriod(),
		Repeat:        cfg.World.GetRepeat(),
		NoiseScale:    cfg.World.GetNoiseScale(),
		BiomeScale:    cfg.World.GetBiomeScale(),
		ForestDensity: cfg.World.ForestDensity,
	}

	gen, err := worldgen.NewGenerator(params)
	if err != nil {
		logging.Error("❌ Ошибка создания генератора: %v", err)
		os.Exit(1)
	}

	width := cfg.Render.GetWidth()
	height := cfg.Render.GetHeight()
	mode := cfg.Render.GetMode()

	logging.Info("🗺️ Генерация карты %dx%d, режим %s, сид %d", width, height, mode, params.Seed)

	renderLog := logging.GetRenderLogger()
	start := time.Now()
	img, heights := renderMap(gen, width, height, mode)
	renderLog.Debug("Растеризация %dx%d заняла %v", width, height, time.Since(start))

	pngPath := cfg.Output.PNGPath
	if pngPath == "" {
		pngPath = "noisemap.png"
	}
	if err := writePNG(pngPath, img); err != nil {
		logging.Error("❌ Ошибка записи PNG: %v", err)
		os.Exit(1)
	}
	logging.Info("✅ Карта записана в %s", pngPath)

	if cfg.Output.RawPath != "" {
		if err := writeRawGrid(cfg.Output.RawPath, heights, width, height); err != nil {
			logging.Error("❌ Ошибка записи сырой сетки: %v", err)
			os.Exit(1)
		}
		logging.Info("✅ Сырая сетка высот записана в %s", cfg.Output.RawPath)
	}
}

// renderMap растеризует карту и возвращает изображение вместе с сеткой высот
func renderMap(gen *worldgen.Generator, width, height int, mode string) (*image.RGBA, []float32) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	heights := make([]float32, 0, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			h := gen.HeightAt(x, y)
			heights = append(heights, float32(h))

			switch mode {
			case "biome":
				c := biomeColors[gen.BiomeAt(x, y)]
				img.SetRGBA(x, y, c)
			default:
				// Режим height: оттенки серого
				v := uint8(math.Round(h * 255))
				img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
	}

	return img, heights
}

// writePNG записывает изображение на диск
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// writeRawGrid записывает сетку высот как float32 little-endian, сжатую zstd.
// Заголовок: ширина и высота как uint32.
func writeRawGrid(path string, heights []float32, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	defer enc.Close()

	if err := binary.Write(enc, binary.LittleEndian, uint32(width)); err != nil {
		return err
	}
	if err := binary.Write(enc, binary.LittleEndian, uint32(height)); err != nil {
		return err
	}
	return binary.Write(enc, binary.LittleEndian, heights)
}
