package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	MySQLDSN      string
	RedisURL      string
	Port          string
	CatAPIURL     string
	CatAPIKey     string
	BreedCacheTTL int // seconds; 0 disables the cache
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	ttl, _ := strconv.Atoi(getenv("BREED_CACHE_TTL", "300"))
	return Config{
		MySQLDSN:      getenv("MYSQL_DSN", "spycat:spycat@tcp(localhost:3306)/spycat"),
		RedisURL:      os.Getenv("REDIS_URL"),
		Port:          getenv("PORT", "8080"),
		CatAPIURL:     getenv("CAT_API_URL", "https://api.thecatapi.com/v1"),
		CatAPIKey:     os.Getenv("CAT_API_KEY"),
		BreedCacheTTL: ttl,
	}
}
