package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the tunables for the analysis engine. Everything has a
// working default so the pure pipeline runs with an empty environment.
type Config struct {
	BusinessName     string
	EmbeddingModel   string
	EmbeddingDim     int
	RetrievalTopN    int
	RetrievalTimeout time.Duration
	IngestBuffer     int
	ValkeyAddress    string
	ValkeyPassword   string
	ValkeyTLS        bool
	TransformerModel string
	TransformerDir   string
}

func FromEnv() Config {
	return Config{
		BusinessName:     getEnv("BUSINESS_NAME", "our business"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingDim:     getEnvInt("EMBEDDING_DIM", 384),
		RetrievalTopN:    getEnvInt("RETRIEVAL_TOP_N", 5),
		RetrievalTimeout: getEnvDuration("RETRIEVAL_TIMEOUT", 2*time.Second),
		IngestBuffer:     getEnvInt("INGEST_BUFFER", 256),
		ValkeyAddress:    os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:   os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:        os.Getenv("VALKEY_TLS") == "true",
		TransformerModel: getEnv("TRANSFORMER_MODEL", "cardiffnlp/twitter-roberta-base-sentiment-latest"),
		TransformerDir:   getEnv("TRANSFORMER_MODEL_DIR", "./models"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
