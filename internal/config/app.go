package config

type AppConfig struct {
	AcceptorHostName string `yaml:"acceptor-host"`
	AcceptorPortNum  int    `yaml:"acceptor-port"`
	MetricsPortNum   int    `yaml:"metrics-port"`
}

func (s *AppConfig) AcceptorHost() string {
	return s.AcceptorHostName
}

func (s *AppConfig) AcceptorPort() int {
	return s.AcceptorPortNum
}

func (s *AppConfig) MetricsPort() int {
	return s.MetricsPortNum
}
