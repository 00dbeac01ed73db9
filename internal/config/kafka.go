package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Group      string   `yaml:"consumer-group"`
	Topic      string   `yaml:"reports-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Group
}

func (s *KafkaConfig) ReportsTopic() string {
	return s.Topic
}
