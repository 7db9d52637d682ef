package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Data       Data       `yaml:"data"`
}

type HTTPServer struct {
	Port             string        `yaml:"port" env:"PORT" env-default:"8000"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
}

type Data struct {
	ProductsDir   string `yaml:"products_dir" env-default:"data/products"`
	PromotionsDir string `yaml:"promotions_dir" env-default:"data/promotions"`
	MessagesFile  string `yaml:"messages_file" env-default:"data/messages.txt"`
	LoyaltyFile   string `yaml:"loyalty_file" env-default:"data/loyalty.json"`
	PublicDir     string `yaml:"public_dir" env-default:"web/public"`
}

func (s HTTPServer) Address() string {
	return ":" + s.Port
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
