package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	config *viper.Viper
	once   sync.Once
)

func Init() {
	once.Do(func() {
		initialize()
	})
}

func initialize() {
	config = viper.New()
	config.SetConfigName("conf")
	config.AddConfigPath("./conf/")
	config.AddConfigPath("./")
	config.SetConfigType("yml")
	config.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	config.SetEnvKeyReplacer(replacer)
	config.WatchConfig()
	config.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
	})

	setDefaults()

	if err := config.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			fmt.Println("config file not found use default config")
		} else {
			fmt.Println("config file error")
		}
	}
}

func setDefaults() {
	config.SetDefault("log", map[string]interface{}{
		"level":  "info",
		"output": "stderr",
	})
	config.SetDefault("bench", map[string]interface{}{
		"bitwidth":      10,
		"cardinalities": []int{1000, 10000, 100000},
		"trials":        20,
		"bitflips":      1,
		"threshold":     10,
		"output":        "benchmark.tsv",
	})
}

func Get(key string) interface{} {
	return config.Get(key)
}

func GetString(key string) string {
	return config.GetString(key)
}

func GetInt(key string) int {
	return config.GetInt(key)
}

func GetIntSlice(key string) []int {
	return config.GetIntSlice(key)
}
