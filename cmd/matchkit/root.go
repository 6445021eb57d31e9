package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rushteam/matchkit/config"
	_ "github.com/rushteam/matchkit/config/builders"
)

const (
	app       = "matchkit"
	envPrefix = "MATCHKIT"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "matchkit ranks jobs for seekers and candidates for jobs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is matchkit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("json"))

	// 让环境变量能覆盖常用配置，例如 MATCHKIT_REPOSITORY_DSN
	def := config.Default()
	viper.SetDefault("model.type", def.Model.Type)
	viper.SetDefault("model.path", def.Model.Path)
	viper.SetDefault("model.endpoint", def.Model.Endpoint)
	viper.SetDefault("repository.type", def.Repository.Type)
	viper.SetDefault("repository.path", def.Repository.Path)
	viper.SetDefault("repository.dsn", def.Repository.DSN)
	viper.SetDefault("cache.type", def.Cache.Type)
	viper.SetDefault("cache.addr", def.Cache.Addr)
	viper.SetDefault("cache.password", def.Cache.Password)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}
}

// getConfig 读取配置文件（未指定且默认文件不存在时只用默认值与环境变量）并校验。
func getConfig() (config.Config, error) {
	cfg := config.Default()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
