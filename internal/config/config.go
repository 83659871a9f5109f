package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ImagesFS    = "fs"
	ImagesMinIO = "minio"

	DraftsMemory = "memory"
	DraftsRedis  = "redis"

	// SweepOff en images.sweep_schedule apaga el barrido.
	SweepOff = "off"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Images     Images     `yaml:"images"`
	Drafts     Drafts     `yaml:"drafts"`
	Web        Web        `yaml:"web"`
	Profiles   Profiles   `yaml:"profiles"`
	Log        Log        `yaml:"log"`
}

type HTTPServer struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
}

type Storage struct {
	Driver         string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	DSN            string `yaml:"dsn" env:"DB_DSN"`
	SkipMigrations bool   `yaml:"skip_migrations" env:"DB_SKIP_MIGRATIONS"`
}

type Images struct {
	Backend       string        `yaml:"backend" env:"IMAGES_BACKEND" env-default:"fs"`
	Dir           string        `yaml:"dir" env:"IMAGES_DIR" env-default:"uploads"`
	SweepSchedule string        `yaml:"sweep_schedule" env:"IMAGES_SWEEP_SCHEDULE" env-default:"@hourly"`
	SweepGrace    time.Duration `yaml:"sweep_grace" env:"IMAGES_SWEEP_GRACE" env-default:"24h"`
	SweepTimeout  time.Duration `yaml:"sweep_timeout" env-default:"5m"`
	MinIO         MinIO         `yaml:"minio"`
}

type MinIO struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" env-default:"animal-images"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
}

// Drafts.TTL en 0: los borradores no expiran.
type Drafts struct {
	Backend string        `yaml:"backend" env:"DRAFTS_BACKEND" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"DRAFTS_TTL"`
	Redis   Redis         `yaml:"redis"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

// Web.APIBaseURL vacío: la UI llama a este mismo proceso (http://127.0.0.1 + http_server.addr).
type Web struct {
	Disabled   bool          `yaml:"disabled" env:"WEB_DISABLED"`
	APIBaseURL string        `yaml:"api_base_url" env:"WEB_API_BASE_URL"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

type Profiles struct {
	StrictEnums bool `yaml:"strict_enums" env:"PROFILES_STRICT_ENUMS"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load lee el YAML en path (si no es vacío) y aplica env + defaults encima.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// MustLoad solo se usa al arrancar.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) Validate() error {
	s := &c.Storage
	if err := validation.ValidateStruct(s,
		validation.Field(&s.Driver, validation.Required, validation.In(DriverMemory, DriverPostgres, DriverSQLite)),
		validation.Field(&s.DSN, validation.When(s.Driver != DriverMemory, validation.Required)),
	); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	im := &c.Images
	if err := validation.ValidateStruct(im,
		validation.Field(&im.Backend, validation.Required, validation.In(ImagesFS, ImagesMinIO)),
		validation.Field(&im.Dir, validation.When(im.Backend == ImagesFS, validation.Required)),
		validation.Field(&im.SweepGrace, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	if im.Backend == ImagesMinIO {
		m := &im.MinIO
		if err := validation.ValidateStruct(m,
			validation.Field(&m.Endpoint, validation.Required),
			validation.Field(&m.Bucket, validation.Required),
		); err != nil {
			return fmt.Errorf("images.minio: %w", err)
		}
	}

	d := &c.Drafts
	if err := validation.ValidateStruct(d,
		validation.Field(&d.Backend, validation.Required, validation.In(DraftsMemory, DraftsRedis)),
		validation.Field(&d.TTL, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("drafts: %w", err)
	}

	return nil
}

// SweepEnabled indica si hay que programar el barrido de imágenes.
func (im Images) SweepEnabled() bool {
	return im.SweepSchedule != "" && im.SweepSchedule != SweepOff
}
