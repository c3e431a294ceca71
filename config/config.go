package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultSearchTimeout      = 60 * time.Second
	defaultSearchRetryCount   = 2
	defaultSearchRetryWait    = time.Second
	defaultPayPalTimeout      = 30 * time.Second
	defaultLowStockThreshold  = 10
	defaultWorkerPort         = 8081
	defaultReconcileInterval  = time.Minute
	defaultStaleAfter         = 10 * time.Minute
	defaultReconcileBatchSize = 50
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PayPal *PayPalConfig `json:"paypal" yaml:"paypal"`

	OpenFoodFacts *OpenFoodFactsConfig `json:"openFoodFacts" yaml:"openFoodFacts"`

	// Redis backs the barcode lookup cache; empty addr disables it
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Report *ReportConfig `json:"report" yaml:"report"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for checkout event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Tracing *TracingConfig `json:"tracing" yaml:"tracing"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	CookieSecure   bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PayPalConfig holds the Orders v2 API credentials and checkout page settings
type PayPalConfig struct {
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl"`
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	ReturnURL    string        `json:"returnUrl" yaml:"returnUrl"`
	CancelURL    string        `json:"cancelUrl" yaml:"cancelUrl"`
	BrandName    string        `json:"brandName" yaml:"brandName"`
	Currency     string        `json:"currency" yaml:"currency"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// OpenFoodFactsConfig defines the nutrition lookup client settings
type OpenFoodFactsConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent     string        `json:"userAgent" yaml:"userAgent"`
	LookupTimeout time.Duration `json:"lookupTimeout" yaml:"lookupTimeout"`
	SearchTimeout time.Duration `json:"searchTimeout" yaml:"searchTimeout"`
	// RetryCount is the number of retries after the first search attempt
	RetryCount int           `json:"retryCount" yaml:"retryCount"`
	RetryWait  time.Duration `json:"retryWait" yaml:"retryWait"`
}

type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// ReportConfig defines reporting thresholds and the optional archive bucket
type ReportConfig struct {
	LowStockThreshold int `json:"lowStockThreshold" yaml:"lowStockThreshold"`
	// ArchiveBucketURL is a gocloud.dev blob URL, e.g. file:///var/reports or gs://bucket
	ArchiveBucketURL string `json:"archiveBucketUrl" yaml:"archiveBucketUrl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type TracingConfig struct {
	Enabled     bool `json:"enabled" yaml:"enabled"`
	PrettyPrint bool `json:"prettyPrint" yaml:"prettyPrint"`
}

// WorkerConfig defines the checkout worker server and reconciliation loop
type WorkerConfig struct {
	Port              int           `json:"port" yaml:"port"`
	ReconcileInterval time.Duration `json:"reconcileInterval" yaml:"reconcileInterval"`
	// StaleAfter is how long an intent may sit in a non-terminal state before reconciliation picks it up
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`
	BatchSize  int           `json:"batchSize" yaml:"batchSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// PAYPAL_CLIENTSECRET -> paypal.clientSecret
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// .env is optional and only fills variables that are not already set
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.OpenFoodFacts == nil {
		cfg.OpenFoodFacts = &OpenFoodFactsConfig{}
	}
	if cfg.OpenFoodFacts.BaseURL == "" {
		cfg.OpenFoodFacts.BaseURL = "https://world.openfoodfacts.org"
	}
	if cfg.OpenFoodFacts.SearchTimeout <= 0 {
		cfg.OpenFoodFacts.SearchTimeout = defaultSearchTimeout
	}
	if cfg.OpenFoodFacts.RetryCount <= 0 {
		cfg.OpenFoodFacts.RetryCount = defaultSearchRetryCount
	}
	if cfg.OpenFoodFacts.RetryWait <= 0 {
		cfg.OpenFoodFacts.RetryWait = defaultSearchRetryWait
	}

	if cfg.PayPal == nil {
		cfg.PayPal = &PayPalConfig{}
	}
	if cfg.PayPal.BaseURL == "" {
		cfg.PayPal.BaseURL = "https://api-m.sandbox.paypal.com"
	}
	if cfg.PayPal.Currency == "" {
		cfg.PayPal.Currency = "USD"
	}
	if cfg.PayPal.BrandName == "" {
		cfg.PayPal.BrandName = "Trinity"
	}
	if cfg.PayPal.Timeout <= 0 {
		cfg.PayPal.Timeout = defaultPayPalTimeout
	}

	if cfg.Report == nil {
		cfg.Report = &ReportConfig{}
	}
	if cfg.Report.LowStockThreshold <= 0 {
		cfg.Report.LowStockThreshold = defaultLowStockThreshold
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.ReconcileInterval <= 0 {
		cfg.Worker.ReconcileInterval = defaultReconcileInterval
	}
	if cfg.Worker.StaleAfter <= 0 {
		cfg.Worker.StaleAfter = defaultStaleAfter
	}
	if cfg.Worker.BatchSize <= 0 {
		cfg.Worker.BatchSize = defaultReconcileBatchSize
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

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
