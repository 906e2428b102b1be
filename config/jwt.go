package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	Expire int64  `json:"expire" yaml:"expire"` // 秒
}
