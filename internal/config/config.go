package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	LogFile  string
	PageSize int
}

func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "zentwear.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./zentwear.log"
	}
	pageSize := 12 // storefront grid default
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, PageSize: pageSize}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s PAGE_SIZE=%d", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.PageSize)
	return cfg
}
