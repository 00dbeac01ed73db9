package config

type MemcachedConfig struct {
	HostList []string `yaml:"hosts"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.HostList
}
