package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env              string // DEV (local; default), TEST, QA, PROD
		Build            string
		Debug            bool
		TestMode         bool
		AppName          string
		SecretKey        string
		RollbarToken     string
		SendgridAPIKey   string
		DefaultFromEmail mail.Address
		WorkDir          string

		Server    ServerConfig
		Tutor     TutorConfig
		Gateway   GatewayConfig
		Scheduler SchedulerConfig
	}

	ServerConfig struct {
		Host               string
		Address            string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
		DisableReqLogs     bool
	}

	// TutorConfig describes the acting tutor handed out by the mock login.
	TutorConfig struct {
		ID    string
		Name  string
		Email string
	}

	GatewayConfig struct {
		Kind       string // memory | http
		BaseURL    string // http only
		Token      string // http only
		SeedFile   string // memory only
		FetchDelay time.Duration
		TakeDelay  time.Duration
	}

	SchedulerConfig struct {
		RefreshCron string
		Timezone    string
		SessionTTL  time.Duration
	}
)

const (
	GatewayMemory = "memory"
	GatewayHTTP   = "http"
)

// Location returns the scheduler timezone, falling back to time.Local.
func (sc SchedulerConfig) Location() *time.Location {
	if sc.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(sc.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Tutordesk")
	conf.SetDefault("secretKey", "tq9!x2v#k$e7m&3hd@w+zp8(ry5)=nfb6c^u1lsj0g4oa")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("defaultFromName", "Tutordesk")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("tutor.id", "1")
	conf.SetDefault("tutor.name", "Sarah Tan")
	conf.SetDefault("tutor.email", "")
	conf.SetDefault("gateway.kind", GatewayMemory)
	conf.SetDefault("gateway.baseUrl", "http://localhost:8000/v1")
	conf.SetDefault("gateway.token", "")
	conf.SetDefault("gateway.seedFile", "")
	conf.SetDefault("gateway.fetchDelay", 600*time.Millisecond)
	conf.SetDefault("gateway.takeDelay", 500*time.Millisecond)
	conf.SetDefault("scheduler.refreshCron", "0 0 * * *")
	conf.SetDefault("scheduler.timezone", "")
	conf.SetDefault("scheduler.sessionTtl", 24*time.Hour)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
		conf.SetDefault("gateway.fetchDelay", time.Duration(0))
		conf.SetDefault("gateway.takeDelay", time.Duration(0))
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	workDir := Getwd()
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:            env,
		Build:          conf.GetString("build"),
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		AppName:        conf.GetString("appName"),
		SecretKey:      conf.GetString("secretKey"),
		RollbarToken:   conf.GetString("rollbarToken"),
		SendgridAPIKey: conf.GetString("sendgridApiKey"),
		DefaultFromEmail: mail.Address{
			Name:    conf.GetString("defaultFromName"),
			Address: conf.GetString("defaultFromEmail"),
		},
		WorkDir: workDir,
		Server: ServerConfig{
			Host:               conf.GetString("server.host"),
			Address:            conf.GetString("server.address"),
			DebugHost:          conf.GetString("server.debugHost"),
			ShutdownTimeout:    conf.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta: conf.GetDuration("server.jwtExpirationDelta"),
			DisableReqLogs:     conf.GetBool("server.disableReqLogs"),
		},
		Tutor: TutorConfig{
			ID:    conf.GetString("tutor.id"),
			Name:  conf.GetString("tutor.name"),
			Email: conf.GetString("tutor.email"),
		},
		Gateway: GatewayConfig{
			Kind:       strings.ToLower(conf.GetString("gateway.kind")),
			BaseURL:    strings.TrimRight(conf.GetString("gateway.baseUrl"), "/"),
			Token:      conf.GetString("gateway.token"),
			SeedFile:   conf.GetString("gateway.seedFile"),
			FetchDelay: conf.GetDuration("gateway.fetchDelay"),
			TakeDelay:  conf.GetDuration("gateway.takeDelay"),
		},
		Scheduler: SchedulerConfig{
			RefreshCron: conf.GetString("scheduler.refreshCron"),
			Timezone:    conf.GetString("scheduler.timezone"),
			SessionTTL:  conf.GetDuration("scheduler.sessionTtl"),
		},
	}
}
