package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Generator defaults mirror the source dataset: a fixed population of 100
// customers and 50 products, at most 20 orders per weekday.
const (
	defaultNumCustomers    = 100
	defaultNumProducts     = 50
	defaultMaxOrdersPerDay = 20
	defaultGuestOrderRate  = 0.05
	defaultDataDir         = "./data"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Generator configures the synthetic dataset generator.
	Generator *GeneratorConfig `json:"generator" yaml:"generator"`

	// Storage configures the raw-data bucket uploads.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Postgres is the warehouse connection.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Warehouse configures the CSV-to-table load stage.
	Warehouse *WarehouseConfig `json:"warehouse" yaml:"warehouse"`

	// Transform configures the external dbt invocation.
	Transform *TransformConfig `json:"transform" yaml:"transform"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeneratorConfig defines the knobs of the synthetic dataset generator.
type GeneratorConfig struct {
	// Seed for the random generator. 0 means non-deterministic.
	Seed uint64 `json:"seed" yaml:"seed"`

	// NumCustomers is the size of the bootstrapped customer population.
	NumCustomers int `json:"numCustomers" yaml:"numCustomers"`

	// NumProducts is the size of the bootstrapped product catalog.
	NumProducts int `json:"numProducts" yaml:"numProducts"`

	// MaxOrdersPerDay caps weekday order volume; weekends scale it by 1.5.
	MaxOrdersPerDay int `json:"maxOrdersPerDay" yaml:"maxOrdersPerDay"`

	// GuestOrderRate is the fraction of orders placed without an account.
	// Nil means unset; an explicit 0 disables guest orders entirely.
	GuestOrderRate *float64 `json:"guestOrderRate" yaml:"guestOrderRate"`

	// DataDir is the root of the local date-partitioned store.
	DataDir string `json:"dataDir" yaml:"dataDir"`
}

// StorageConfig defines the raw-data bucket the pipeline uploads to.
type StorageConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "gs://ecommerce-dw-raw"
	// or "file:///var/tmp/raw" for local development.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// ReferencePrefix is the bucket prefix holding reference files.
	ReferencePrefix string `json:"referencePrefix" yaml:"referencePrefix"`
}

// WarehouseConfig defines the CSV-to-table load stage.
type WarehouseConfig struct {
	// BatchSize is the insert batch size for warehouse loads.
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// AutoMigrate creates missing warehouse tables before loading.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// TransformConfig defines the external dbt project invocation.
type TransformConfig struct {
	// Enabled toggles the transform stage of the full pipeline run.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// ProjectDir is the dbt project directory.
	ProjectDir string `json:"projectDir" yaml:"projectDir"`

	// ProfilesDir is exported as DBT_PROFILES_DIR for the invocation.
	ProfilesDir string `json:"profilesDir" yaml:"profilesDir"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GENERATOR_MAXORDERSPERDAY -> generator.maxOrdersPerDay
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	ApplyGeneratorDefaults(cfg)

	return cfg, nil
}

// ApplyGeneratorDefaults fills the generator section so a minimal config file
// still produces the canonical dataset shape.
func ApplyGeneratorDefaults(cfg *Config) {
	if cfg.Generator == nil {
		cfg.Generator = &GeneratorConfig{}
	}

	gen := cfg.Generator
	if gen.NumCustomers <= 0 {
		gen.NumCustomers = defaultNumCustomers
	}
	if gen.NumProducts <= 0 {
		gen.NumProducts = defaultNumProducts
	}
	if gen.MaxOrdersPerDay <= 0 {
		gen.MaxOrdersPerDay = defaultMaxOrdersPerDay
	}
	if gen.GuestOrderRate == nil || *gen.GuestOrderRate < 0 {
		rate := defaultGuestOrderRate
		gen.GuestOrderRate = &rate
	}
	if strings.TrimSpace(gen.DataDir) == "" {
		gen.DataDir = defaultDataDir
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
