package config

type FixerConfig struct {
	Key string `yaml:"api-key"`
}

func (s *FixerConfig) ApiKey() string {
	return s.Key
}
