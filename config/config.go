package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "RESHAPE_CONFIG_FILE"

type payloads struct {
	Catalog string `mapstructure:"catalog"`
	Cart    string `mapstructure:"cart"`
}

type Config struct {
	LogLevel slog.Level `mapstructure:"log_level"`
	Payloads payloads   `mapstructure:"payloads"`
	OutDir   string     `mapstructure:"out_dir"`
}

func Load() Config {
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
	OutDir=%q

	Payloads:
	Catalog=%q
	Cart=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.OutDir,
		c.Payloads.Catalog,
		c.Payloads.Cart,
	)
}
