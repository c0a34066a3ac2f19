package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/voyago/travelsearch/internal/amadeus"
	"github.com/voyago/travelsearch/internal/cache"
	"github.com/voyago/travelsearch/internal/gazetteer"
	"github.com/voyago/travelsearch/internal/generator"
	"github.com/voyago/travelsearch/internal/geocode"
	"github.com/voyago/travelsearch/internal/handler"
	"github.com/voyago/travelsearch/internal/ratelimit"
	"github.com/voyago/travelsearch/internal/search"
)

type Config struct {
	Port                string
	RedisEnabled        bool
	RedisHost           string
	RedisPort           string
	LiveResultsTTL      time.Duration
	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string
	GeocodeURL          string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rateLimiter := ratelimit.NewUpstreamLimiterWithDefaults()
	rateLimiter.SetUpstreamLimit("amadeus", 5, 10)
	rateLimiter.SetUpstreamLimit("geocode", 2, 4)

	flights := amadeus.NewClient(amadeus.Config{
		ClientID:     cfg.AmadeusClientID,
		ClientSecret: cfg.AmadeusClientSecret,
		BaseURL:      cfg.AmadeusBaseURL,
		Limiter:      rateLimiter,
	})
	if flights.Configured() {
		log.Println("Live flight API configured")
	} else {
		log.Println("Live flight API credentials not set, flights will use generated data")
	}

	resolver := gazetteer.NewResolver()
	if cfg.GeocodeURL != "" {
		resolver = resolver.WithGeocoder(geocode.NewClient(cfg.GeocodeURL, rateLimiter))
		log.Printf("Secondary geocoding lookup enabled (%s)", cfg.GeocodeURL)
	}

	var liveCache cache.Cache
	if cfg.RedisEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.LiveResultsTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		liveCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.LiveResultsTTL)
	} else {
		liveCache = cache.NewMemoryCache(cfg.LiveResultsTTL)
		log.Printf("In-memory cache enabled (TTL: %v)", cfg.LiveResultsTTL)
	}

	service := search.New(resolver, flights, generator.NewDefault(), liveCache)
	searchHandler := handler.NewSearchHandler(service)

	api := e.Group("/api/v1")
	api.POST("/travel/search", searchHandler.Search)
	api.POST("/travel/summary", searchHandler.Summary)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel search server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	baseURL := "https://api.amadeus.com"
	if env := getEnv("AMADEUS_ENV", "test"); env == "test" {
		baseURL = "https://test.api.amadeus.com"
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		RedisEnabled:        getEnvBool("REDIS_ENABLED", false),
		RedisHost:           getEnv("REDIS_HOST", "localhost"),
		RedisPort:           getEnv("REDIS_PORT", "6379"),
		LiveResultsTTL:      getEnvDuration("LIVE_RESULTS_TTL", 2*time.Hour),
		AmadeusClientID:     getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getEnv("AMADEUS_CLIENT_SECRET", ""),
		AmadeusBaseURL:      getEnv("AMADEUS_BASE_URL", baseURL),
		GeocodeURL:          getEnv("GEOCODE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
