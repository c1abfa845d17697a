package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	ConsulAddr      string
	ServiceName     string
	MainServiceName string
	JWTSecret       string
	FirebaseCreds   string
	LogLevel        string
	LogFile         string
	LogMaxSizeMB    int
	LogMaxBackups   int
	LogMaxAgeDays   int
}

func LoadConfig() *Config {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "ticketcue")
	v.SetDefault("CONSUL_ADDR", "localhost:8500")
	v.SetDefault("SERVICE_NAME", "ticketcue-service")
	v.SetDefault("MAIN_SERVICE_NAME", "go-main-service")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("FIREBASE_CREDENTIALS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "logs/ticketcue.log")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 30)

	v.AutomaticEnv()

	return &Config{
		Port:            v.GetString("PORT"),
		MongoURI:        v.GetString("MONGO_URI"),
		MongoDB:         v.GetString("MONGO_DB"),
		ConsulAddr:      v.GetString("CONSUL_ADDR"),
		ServiceName:     v.GetString("SERVICE_NAME"),
		MainServiceName: v.GetString("MAIN_SERVICE_NAME"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		FirebaseCreds:   v.GetString("FIREBASE_CREDENTIALS"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFile:         v.GetString("LOG_FILE"),
		LogMaxSizeMB:    v.GetInt("LOG_MAX_SIZE_MB"),
		LogMaxBackups:   v.GetInt("LOG_MAX_BACKUPS"),
		LogMaxAgeDays:   v.GetInt("LOG_MAX_AGE_DAYS"),
	}
}
