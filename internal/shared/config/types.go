// Package config defines the configuration shapes shared across the
// application. Loading lives in infrastructure/config.
package config

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

type AuthConfig struct {
	BcryptCost int       `mapstructure:"bcrypt_cost"`
	JWT        JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// AppConfig carries business-level settings: the superadmin sentinel
// email, the business timezone and the RBAC model location.
type AppConfig struct {
	SuperadminEmail string `mapstructure:"superadmin_email"`
	Timezone        string `mapstructure:"timezone"`
	RBACModelPath   string `mapstructure:"rbac_model_path"`
}

// WorkerConfig holds the background job intervals in minutes.
type WorkerConfig struct {
	OverdueSweepMinutes       int `mapstructure:"overdue_sweep_minutes"`
	SubscriptionExpiryMinutes int `mapstructure:"subscription_expiry_minutes"`
}
