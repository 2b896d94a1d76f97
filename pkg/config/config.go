package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	Editor  EditorConfig
	Format  FormatConfig
	Export  ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	AllowOrigins string // CORS para el editor en el navegador
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig firma de los tokens de sesión del editor.
type SessionConfig struct {
	Secret       string
	Expiration   int // minutos; también es la vida de la sesión en memoria
	Issuer       string
	MaxOpen      int // 0 = sin límite
	SweepSeconds int // intervalo del desalojo de sesiones vencidas
}

// EditorConfig parámetros del ajuste de fuente y del debounce.
type EditorConfig struct {
	BaseFontSize     float64 // px
	MinFontSize      float64 // px, nunca se reduce por debajo
	FontStep         float64 // px por iteración
	MaxFitIterations int
	DebounceMs       int
	RowAddDelayMs    int     // espera antes de reajustar tras agregar fila
	DefaultViewport  float64 // px, hasta que el cliente informe el suyo
}

// FormatConfig formato de visualización de montos.
type FormatConfig struct {
	Locale         string
	CurrencySymbol string
}

// ExportConfig opciones de la exportación a imagen.
type ExportConfig struct {
	Scale           float64
	Background      string // color hex, ej. #ffffff
	UseCORS         bool
	DefaultFilename string // sin extensión
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "invoice-editor"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8080),
			AllowOrigins: getString(v, "HTTP_ALLOW_ORIGINS", "*"),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			Expiration:   getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
			Issuer:       getString(v, "SESSION_ISSUER", "invoice-editor"),
			MaxOpen:      getInt(v, "SESSION_MAX_OPEN", 1000),
			SweepSeconds: getInt(v, "SESSION_SWEEP_SECONDS", 60),
		},
		Editor: EditorConfig{
			BaseFontSize:     getFloat(v, "EDITOR_BASE_FONT_SIZE", 12),
			MinFontSize:      getFloat(v, "EDITOR_MIN_FONT_SIZE", 9),
			FontStep:         getFloat(v, "EDITOR_FONT_STEP", 0.5),
			MaxFitIterations: getInt(v, "EDITOR_MAX_FIT_ITERATIONS", 40),
			DebounceMs:       getInt(v, "EDITOR_DEBOUNCE_MS", 120),
			RowAddDelayMs:    getInt(v, "EDITOR_ROW_ADD_DELAY_MS", 60),
			DefaultViewport:  getFloat(v, "EDITOR_DEFAULT_VIEWPORT", 1024),
		},
		Format: FormatConfig{
			Locale:         getString(v, "FORMAT_LOCALE", "en-IN"),
			CurrencySymbol: getString(v, "FORMAT_CURRENCY_SYMBOL", "₹"),
		},
		Export: ExportConfig{
			Scale:           getFloat(v, "EXPORT_SCALE", 2),
			Background:      getString(v, "EXPORT_BACKGROUND", "#ffffff"),
			UseCORS:         getBool(v, "EXPORT_USE_CORS", true),
			DefaultFilename: getString(v, "EXPORT_DEFAULT_FILENAME", "invoice"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
