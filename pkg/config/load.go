// pkg/config/load.go
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from a file, environment variables and
// defaults, in that order of precedence. With an empty configPath it searches
// for "modelsql.yaml" in the working directory and $HOME/.modelsql.
func LoadConfig(configPath string) (Config, error) {
	v := viper.New()
	cfg := NewDefaultConfig()

	v.SetDefault("database.pool.maxIdleConns", cfg.Database.Pool.MaxIdleConns)
	v.SetDefault("database.pool.maxOpenConns", cfg.Database.Pool.MaxOpenConns)
	v.SetDefault("database.pool.connMaxLifetime", cfg.Database.Pool.ConnMaxLifetime)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("migration.manifest", cfg.Migration.Manifest)
	v.SetDefault("migration.tableName", cfg.Migration.TableName)

	v.SetEnvPrefix("MODELSQL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("modelsql")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.modelsql")
	}

	if err := v.ReadInConfig(); err != nil {
		// Only fatal when the file was named explicitly or the failure is not
		// "file not found".
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return cfg, fmt.Errorf("error reading configuration file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, fmt.Sprintf("Field '%s' failed validation on '%s'", err.Namespace(), err.Tag()))
		}
		return cfg, fmt.Errorf("invalid configuration: %s", strings.Join(validationErrors, "; "))
	}

	return cfg, nil
}
