package config

type AppConfig struct {
	Benchmark *BenchmarkConfig
	LogLevel  string
}

func New() *AppConfig {
	return &AppConfig{
		Benchmark: NewBenchmarkConfig(),
		LogLevel:  "info",
	}
}
