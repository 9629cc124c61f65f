package demo

import (
	"github.com/BurntSushi/toml"
	"github.com/sniperHW/flylist/logger"
)

func LoadConfigStr(str string) (*Config, error) {
	config := &Config{}
	_, err := toml.Decode(str, config)
	if nil != err {
		return nil, err
	} else {
		config.applyDefaults()
		return config, nil
	}
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	_, err := toml.DecodeFile(path, config)
	if nil != err {
		return nil, err
	} else {
		config.applyDefaults()
		return config, nil
	}
}

func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

type Config struct {
	Scenario struct {
		Values     []int //初始元素,场景中的锚点28与11取自这组数据
		SyncValues []int //SyncRoot演示使用的元素
	}

	Sync struct {
		Workers  int //并发读取的worker数量
		PoolSize int //gopool最大goroutine数量
	}

	Log logger.Config
}

func (c *Config) applyDefaults() {
	if nil == c.Scenario.Values {
		c.Scenario.Values = []int{4, 2, 8, 11, 28, 11, 3}
	}

	if nil == c.Scenario.SyncValues {
		c.Scenario.SyncValues = []int{4, 2, 43, 12, 43, 1, 2, 43}
	}

	if c.Sync.Workers <= 0 {
		c.Sync.Workers = 5
	}

	if c.Sync.PoolSize <= 0 {
		c.Sync.PoolSize = 2
	}

	if c.Log.LogDir == "" {
		c.Log.LogDir = "log"
	}

	if c.Log.LogLevel == "" {
		c.Log.LogLevel = "info"
	}

	if c.Log.MaxLogfileSize <= 0 {
		c.Log.MaxLogfileSize = 100
	}

	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = 14
	}

	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 10
	}
}
