package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	JWT        JWT        `yaml:"jwt"`
	Demo       Demo       `yaml:"demo"`
	Generator  Generator  `yaml:"generator"`
	Chat       Chat       `yaml:"chat"`
	Cert       Cert       `yaml:"certificate"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8081"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type JWT struct {
	SecretKey  string        `yaml:"secret_key"`
	AccessTTL  time.Duration `yaml:"access_token_ttl" env-default:"15m"`
	RefreshTTL time.Duration `yaml:"refresh_token_ttl" env-default:"720h"`
}

type Demo struct {
	Seed     bool   `yaml:"seed" env-default:"true"`
	Password string `yaml:"password" env-default:"learn123"`
}

type Generator struct {
	Delay time.Duration `yaml:"delay" env-default:"2s"`
}

type Chat struct {
	AutoReply  bool          `yaml:"auto_reply" env-default:"true"`
	ReplyDelay time.Duration `yaml:"reply_delay" env-default:"1s"`
}

type Cert struct {
	FontPath string `yaml:"font_path"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return &cfg
}
