package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type catalog struct {
	BaseURL         string `mapstructure:"base_url"`
	ProductsLimit   int    `mapstructure:"products_limit"`
	DefaultCategory string `mapstructure:"default_category"`
}

type cart struct {
	Storage    string `mapstructure:"storage"`
	Key        string `mapstructure:"key"`
	FilePath   string `mapstructure:"file_path"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RedisAddr  string `mapstructure:"redis_addr"`
}

type broker struct {
	SeedBrokers       []string `mapstructure:"seed_brokers"`
	ClientEventsTopic string   `mapstructure:"client_events_topic"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Catalog        catalog    `mapstructure:"catalog"`
	Cart           cart       `mapstructure:"cart"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetDefault("catalog.products_limit", 100)
	viper.SetDefault("catalog.default_category", "All")
	viper.SetDefault("cart.storage", "file")
	viper.SetDefault("cart.key", "cart")
	viper.SetDefault("broker.client_events_topic", "client_events")

	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Catalog:
	BaseURL=%q
	ProductsLimit=%d
	DefaultCategory=%q

	Cart:
	Storage=%q
	Key=%q
	FilePath=%q
	SQLitePath=%q
	RedisAddr=%q

	Broker:
	SeedBrokers=%q
	ClientEventsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Catalog.BaseURL,
		c.Catalog.ProductsLimit,
		c.Catalog.DefaultCategory,
		c.Cart.Storage,
		c.Cart.Key,
		c.Cart.FilePath,
		c.Cart.SQLitePath,
		c.Cart.RedisAddr,
		c.Broker.SeedBrokers,
		c.Broker.ClientEventsTopic,
	)
}
