package env

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	IsSet(key string) bool
}

type viperConfig struct {
	v *viper.Viper
}

func NewViperConfig(configPath string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("explorer")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	if ext := strings.TrimPrefix(filepath.Ext(configPath), "."); ext != "" {
		v.SetConfigType(ext)
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return &viperConfig{v: v}, nil
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) IsSet(key string) bool {
	return c.v.IsSet(key)
}
