package config

type App struct {
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	Timezone string `json:"timezone" yaml:"timezone"` // 为空时使用服务器本地时区
}
