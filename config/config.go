package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging   LoggingConfig  `yaml:"logging"`
	Server    ServerConfig   `yaml:"server"`
	Mongo     MongoConfig    `yaml:"mongo"`
	CORS      CORSConfig     `yaml:"cors"`
	Templates TemplateConfig `yaml:"templates"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// MongoConfig holds connection settings. URI may be overridden with the
// MONGODB_URI environment variable so credentials stay out of config.yaml.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

// TemplateConfig points at the directory holding the CV .hbs templates.
// A relative dir is resolved against the config base path.
type TemplateConfig struct {
	Dir string `yaml:"dir"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// TemplatesDir returns the absolute path of the CV templates directory.
func TemplatesDir() string {
	dir := GetConfig().Templates.Dir
	if dir == "" {
		dir = "templates"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(GetBasePath(), dir)
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
