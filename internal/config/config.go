package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора карт.

type Config struct {
	World  WorldConfig  `yaml:"world"`
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// WorldConfig задаёт параметры шумовых полей мира
type WorldConfig struct {
	Seed          int64   `yaml:"seed"`
	Period        int     `yaml:"period"`
	Repeat        int     `yaml:"repeat"`
	NoiseScale    float64 `yaml:"noise_scale"`
	BiomeScale    float64 `yaml:"biome_scale"`
	ForestDensity float64 `yaml:"forest_density"`
}

// RenderConfig задаёт параметры растеризации
type RenderConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mode   string `yaml:"mode"` // "height" или "biome"
}

// OutputConfig задаёт пути вывода
type OutputConfig struct {
	PNGPath string `yaml:"png_path"`
	RawPath string `yaml:"raw_path"` // сырая сетка float32, сжатая zstd
}

// GetSeed возвращает сид с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("NOISEMAP_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1
}

// GetPeriod возвращает период таблицы перестановки (по умолчанию 256)
func (w *WorldConfig) GetPeriod() int {
	return getIntWithEnvFallback(w.Period, "NOISEMAP_PERIOD", 256)
}

// GetRepeat возвращает период тайлинга карты высот (по умолчанию 64)
func (w *WorldConfig) GetRepeat() int {
	return getIntWithEnvFallback(w.Repeat, "NOISEMAP_REPEAT", 64)
}

// GetNoiseScale возвращает масштаб шума высот
func (w *WorldConfig) GetNoiseScale() float64 {
	if w.NoiseScale > 0 {
		return w.NoiseScale
	}
	return 0.05
}

// GetBiomeScale возвращает масштаб шума биомов
func (w *WorldConfig) GetBiomeScale() float64 {
	if w.BiomeScale > 0 {
		return w.BiomeScale
	}
	return 0.02
}

// GetWidth возвращает ширину изображения
func (r *RenderConfig) GetWidth() int {
	return getIntWithEnvFallback(r.Width, "NOISEMAP_WIDTH", 512)
}

// GetHeight возвращает высоту изображения
func (r *RenderConfig) GetHeight() int {
	return getIntWithEnvFallback(r.Height, "NOISEMAP_HEIGHT", 512)
}

// GetMode возвращает режим растеризации: height или biome
func (r *RenderConfig) GetMode() string {
	if r.Mode != "" {
		return r.Mode
	}
	if envVal := os.Getenv("NOISEMAP_MODE"); envVal != "" {
		return envVal
	}
	return "height"
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configVal > 0 {
		return configVal
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV NOISEMAP_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("NOISEMAP_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
