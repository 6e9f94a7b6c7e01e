package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Record store backend: "redis", "mysql" or "memory"
	StoreBackend string `mapstructure:"STORE_BACKEND"`

	// MySQL settings
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis settings
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Wellness coach LLM settings; chat routes stay unregistered when the key is empty
	LLMAPIKey      string `mapstructure:"LLM_API_KEY"`
	LLMAPIEndpoint string `mapstructure:"LLM_API_ENDPOINT"`
	LLMModel       string `mapstructure:"LLM_MODEL"`

	// JWT settings
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig reads configuration from a .env file or the environment.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LLM_MODEL", "gemini-2.0-flash-exp")

	err = viper.ReadInConfig()
	if err != nil {
		// Missing config file is fine, everything can come from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
