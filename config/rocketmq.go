package config

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`

	Producer Producer `yaml:"producer"`

	// Topic carries committed ledger entries.
	Topic string `yaml:"topic"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

// Enabled reports whether a name server was configured.
func (r *RocketMQConfig) Enabled() bool {
	return r != nil && len(r.NameServer) > 0 && r.Topic != ""
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
