package engine

import (
	"errors"
	"fmt"
	"time"

	"dungeon-core/pkg/dungeon"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix - префикс переменных окружения движка.
const EnvPrefix = "DUNGEON_"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все уровни.
	// Level N Seed = Seed + N. 0 - выбрать случайно при загрузке.
	Seed int64 `env:"SEED" envDefault:"0"`

	Width  int `env:"WIDTH" envDefault:"60"`
	Height int `env:"HEIGHT" envDefault:"22"`

	// FPS - частота кадров. Ходы идут своим темпом, кадры - своим.
	FPS       int `env:"FPS" envDefault:"20"`
	QueueSize int `env:"QUEUE_SIZE" envDefault:"16"`

	// ListenAddr - адрес для наблюдателей. Пусто - сервер не запускается.
	ListenAddr string `env:"LISTEN_ADDR"`
	// RemoteInput разрешает наблюдателям отправлять команды.
	RemoteInput bool `env:"REMOTE_INPUT" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	// LogFile - куда писать логи, пока терминал занят игрой.
	LogFile string `env:"LOG_FILE" envDefault:"dungeon.log"`

	// SaveDir - каталог снимков памяти карты. Пусто - не сохранять.
	SaveDir string `env:"SAVE_DIR"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		Width:     dungeon.MapWidth,
		Height:    dungeon.MapHeight,
		FPS:       20,
		QueueSize: 16,
		LogLevel:  "info",
		LogFormat: "text",
		LogFile:   "dungeon.log",
	}
}

// LoadConfig читает конфиг из окружения процесса.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{Prefix: EnvPrefix})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет, что с такими параметрами можно построить уровень.
func (c Config) Validate() error {
	if c.Width < dungeon.MaxSize+2 || c.Height < dungeon.MaxSize+2 {
		return fmt.Errorf("map %dx%d is too small, need at least %dx%d",
			c.Width, c.Height, dungeon.MaxSize+2, dungeon.MaxSize+2)
	}
	if c.FPS <= 0 {
		return errors.New("fps must be positive")
	}
	if c.QueueSize <= 0 {
		return errors.New("queue size must be positive")
	}
	return nil
}

// FrameInterval - пауза между кадрами.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
