package config

import "os"

type ServerConfig struct {
	Port        string
	FrontendURL string
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &ServerConfig{
		Port:        port,
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}
