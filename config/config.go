package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	Token     string    `yaml:"token"`
	Server    Server    `yaml:"server"`
	Database  Database  `yaml:"database"`
	SeedDemo  bool      `yaml:"seed_demo"`
	CronJobs  []CronJob `yaml:"cron_jobs"`
	Simulator Simulator `yaml:"simulator"`
}

// Server 服务器配置
type Server struct {
	Address string `yaml:"address"`
}

// Database 数据库配置
type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// CronJob 定时任务配置
type CronJob struct {
	Name            string `yaml:"name"`
	Schedule        string `yaml:"schedule"`
	RecountStats    bool   `yaml:"recount_stats"`     // 重算实验检出统计
	FinishStale     bool   `yaml:"finish_stale"`      // 自动结束超时实验
	StaleAfterHours int    `yaml:"stale_after_hours"` // 超过多少小时算超时
}

// Simulator 攻击模拟器配置
type Simulator struct {
	ServerURL       string `yaml:"server_url"`
	IntervalSeconds int    `yaml:"interval_seconds"`
	Count           int    `yaml:"count"` // 0表示不限制
}

// LoadConfig 从文件加载配置
func LoadConfig() (*Config, error) {
	// 1. 尝试从环境变量获取配置文件路径
	configPath := os.Getenv("CONFIG_PATH")

	// 2. 如果环境变量未设置，使用默认路径
	if configPath == "" {
		configPath = "config.yaml"
	}

	// 3. 读取配置文件
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// 4. 解析YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// 5. 验证配置并设置默认值
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = "127.0.0.1:8080"
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}

	if c.Database.DSN == "" {
		// 默认连接本地PostgreSQL
		c.Database.DSN = "host=localhost port=5432 user=postgres password=root dbname=ddos_mlops_db sslmode=prefer"
	}

	if c.Simulator.ServerURL == "" {
		c.Simulator.ServerURL = "http://" + c.Server.Address
	}

	if c.Simulator.IntervalSeconds <= 0 {
		c.Simulator.IntervalSeconds = 5
	}

	for i := range c.CronJobs {
		if c.CronJobs[i].StaleAfterHours <= 0 {
			c.CronJobs[i].StaleAfterHours = 24
		}
	}
}
