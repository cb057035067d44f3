package types

import (
	"fmt"

	tml "github.com/BurntSushi/toml"
)

//StoreConfig 存储层配置
type StoreConfig struct {
	Backend string `json:"backend"`
	DbPath  string `json:"dbPath"`
	Cache   int32  `json:"cache"`
}

//Config 配置文件的顶层结构
type Config struct {
	Title  string        `json:"title"`
	Casino *CasinoConfig `json:"casino"`
	Store  *StoreConfig  `json:"store"`
}

//NewConfig 从toml字符串解析配置，配置非法直接panic，和节点启动时的行为一致
func NewConfig(cfgstring string) *Config {
	cfg := &Config{}
	if _, err := tml.Decode(cfgstring, cfg); err != nil {
		panic(err)
	}
	cfg.setDefault()
	if err := cfg.check(); err != nil {
		panic(err)
	}
	cfg.Casino.Title = cfg.Title
	return cfg
}

func (c *Config) setDefault() {
	if c.Title == "" {
		c.Title = BaccaratX
	}
	if c.Store == nil {
		c.Store = &StoreConfig{}
	}
	if c.Store.Backend == "" {
		c.Store.Backend = "goleveldb"
	}
	if c.Store.DbPath == "" {
		c.Store.DbPath = "datadir"
	}
	if c.Store.Cache <= 0 {
		c.Store.Cache = 128
	}
}

func (c *Config) check() error {
	if c.Casino == nil {
		return fmt.Errorf("config: [casino] section is required")
	}
	if c.Casino.Owner == "" {
		return fmt.Errorf("config: casino owner is required")
	}
	if c.Casino.Asset == "" {
		return fmt.Errorf("config: casino asset is required")
	}
	if c.Casino.MinBet <= 0 || c.Casino.MaxBet <= 0 {
		return fmt.Errorf("config: bet bounds must be positive")
	}
	if c.Casino.MinBet > c.Casino.MaxBet {
		return fmt.Errorf("config: minBet %d is more than maxBet %d", c.Casino.MinBet, c.Casino.MaxBet)
	}
	if !CheckAmount(c.Casino.MaxBet) {
		return fmt.Errorf("config: maxBet %d is out of range", c.Casino.MaxBet)
	}
	return nil
}

//ID 配置实例的确定性标识，vault 地址和授权从这里派生
func (c *CasinoConfig) ID() string {
	return fmt.Sprintf("%s-%s-%s", c.Title, c.Owner, c.Asset)
}
