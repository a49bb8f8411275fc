package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultMongoURI = "mongodb://localhost:27017"
	defaultDatabase = "perfumeStore"
	defaultPort     = "5000"
)

// LoadEnv reads a .env file if one is present. Missing files are fine;
// the accessors below fall back to hard-coded defaults.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func EnvMongoURI() string {
	if uri := os.Getenv("MONGOURI"); uri != "" {
		return uri
	}
	return defaultMongoURI
}

func EnvDatabaseName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return defaultDatabase
}

func EnvPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return defaultPort
}
