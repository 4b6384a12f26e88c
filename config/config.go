package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config configuración global de la aplicación.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configuración del servidor HTTP.
type ServerConfig struct {
	Port        int        `mapstructure:"port"`
	MaxBodySize int64      `mapstructure:"max_body_size"`
	CORS        CORSConfig `mapstructure:"cors"`
}

// CORSConfig orígenes permitidos para peticiones cross-origin.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig configuración de la base PostgreSQL.
type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	SSLMode      string `mapstructure:"sslmode"`
	Timezone     string `mapstructure:"timezone"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// DSN genera la cadena de conexión PostgreSQL.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// LogConfig configuración del registro estructurado.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carga la configuración: valores por defecto, archivo YAML opcional y
// variables de entorno con prefijo ARCHIVO (ej. ARCHIVO_DB_PASSWORD).
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Valores por defecto ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_size", 10<<20) // 10MB: los import de Excel pasan por aquí
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "archivo_planeacion")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "America/Bogota")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── Archivo de configuración ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variables de entorno ──
	v.SetEnvPrefix("ARCHIVO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// El archivo es opcional; cualquier otro error sí se propaga
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("no se pudo leer la configuración: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}

	return &cfg, nil
}
