package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultServerPath = "configs/server.toml"
	DefaultBotPath    = "configs/bot.toml"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
}

type Server struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Debug    bool   `toml:"debug_mode"`
	LogLevel string `toml:"log_level"`
}

type Source struct {
	// Location is an http(s) URL or a local file path.
	Location string `toml:"location"`
}

type Analytics struct {
	BareTimeUnit    string `toml:"bare_time_unit"`
	DefaultMethod   string `toml:"default_method"`
	DefaultMinGames string `toml:"default_min_games"`
	TeammateTopN    int    `toml:"teammate_top_n"`
}

type Config struct {
	TgBot     TgBot
	Server    Server
	Source    Source
	Analytics Analytics
}

type serverFile struct {
	Server    Server    `toml:"server"`
	Source    Source    `toml:"source"`
	Analytics Analytics `toml:"analytics"`
}

func Default() Config {
	return Config{
		Server: Server{
			Host:     "0.0.0.0",
			Port:     3000,
			LogLevel: "info",
		},
		Analytics: Analytics{
			BareTimeUnit:    "minutes",
			DefaultMethod:   "wilson",
			DefaultMinGames: "3%",
			TeammateTopN:    10,
		},
	}
}

// New reads both config files on top of Default. A missing bot config
// leaves the bot disabled. TELEGRAM_APITOKEN and BZSTATS_SOURCE override
// the files and may come from a .env file.
func New(serverPath, botPath string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	cfg := Default()

	file := serverFile{
		Server:    cfg.Server,
		Source:    cfg.Source,
		Analytics: cfg.Analytics,
	}
	if _, err := toml.DecodeFile(serverPath, &file); err != nil {
		return Config{}, err
	}
	cfg.Server, cfg.Source, cfg.Analytics = file.Server, file.Source, file.Analytics

	_, err := toml.DecodeFile(botPath, &cfg.TgBot)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	if location := os.Getenv("BZSTATS_SOURCE"); location != "" {
		cfg.Source.Location = location
	}
	return cfg, nil
}
