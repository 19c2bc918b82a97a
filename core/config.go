package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string // DEV (local; default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	Build    string

	AppName   string
	SecretKey string
	WorkDir   string

	Server struct {
		Host                   string
		Addr                   string
		DebugHost              string
		ShutdownTimeout        time.Duration
		SessionExpirationDelta time.Duration
	}

	Notion struct {
		Token       string
		StudentsDB  string
		ProgressDB  string
		BooksDB     string
		SayuBooksDB string
		ReportsDB   string
	}

	OpenAI struct {
		APIKey string
		Model  string
	}

	Teacher struct {
		Token string // bearer token for the teacher-only endpoints
		Email string // notification recipient for regenerated reports
	}

	Mail struct {
		SendgridAPIKey string
		FromEmail      string
	}

	RollbarToken string
}

func (conf *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: conf.AppName, Address: conf.Mail.FromEmail}
}

// NewConfig loads the application configuration from the environment
// (plus an optional config/.env.<env> file) into an explicit Config object.
// Missing external-service settings are fatal in PROD and warned-and-defaulted
// in every other environment.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Jindo")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "q2qzp(v8e&0y5x#-dev-only-g$+57=dz&uoxh2(h!x)#*c2em")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("debugHost", "localhost:4000")
	v.SetDefault("shutdownTimeout", 10*time.Second)
	v.SetDefault("sessionExpirationDelta", 24*time.Hour)
	v.SetDefault("openAIModel", "gpt-4o-mini")
	v.SetDefault("fromEmail", "noreply@localhost")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stating %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:      env,
		Debug:    v.GetBool("debug"),
		TestMode: v.GetBool("testMode"),
		Build:    v.GetString("build"),

		AppName:   v.GetString("appName"),
		SecretKey: v.GetString("secretKey"),
		WorkDir:   wd,

		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Server.DebugHost = v.GetString("debugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("shutdownTimeout")
	conf.Server.SessionExpirationDelta = v.GetDuration("sessionExpirationDelta")

	conf.Notion.Token = v.GetString("notionToken")
	conf.Notion.StudentsDB = v.GetString("notionStudentsDB")
	conf.Notion.ProgressDB = v.GetString("notionProgressDB")
	conf.Notion.BooksDB = v.GetString("notionBooksDB")
	conf.Notion.SayuBooksDB = v.GetString("notionSayuBooksDB")
	conf.Notion.ReportsDB = v.GetString("notionReportsDB")

	conf.OpenAI.APIKey = v.GetString("openAIAPIKey")
	conf.OpenAI.Model = v.GetString("openAIModel")

	conf.Teacher.Token = v.GetString("teacherToken")
	conf.Teacher.Email = v.GetString("teacherEmail")

	conf.Mail.SendgridAPIKey = v.GetString("sendgridApiKey")
	conf.Mail.FromEmail = v.GetString("fromEmail")

	if err := conf.checkRequired(); err != nil {
		return nil, err
	}
	return conf, nil
}

// checkRequired enforces the presence of external-service settings in PROD.
// Other environments run against whatever is configured, with a warning.
func (conf *Config) checkRequired() error {
	missing := conf.missingRequired()
	if len(missing) == 0 {
		return nil
	}
	if conf.Env == "PROD" {
		return errors.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	log.Printf("config: missing %s; using defaults (%s mode)", strings.Join(missing, ", "), conf.Env)
	return nil
}

func (conf *Config) missingRequired() []string {
	required := []struct {
		key   string
		value string
	}{
		{"notionToken", conf.Notion.Token},
		{"notionStudentsDB", conf.Notion.StudentsDB},
		{"notionProgressDB", conf.Notion.ProgressDB},
		{"notionBooksDB", conf.Notion.BooksDB},
		{"notionSayuBooksDB", conf.Notion.SayuBooksDB},
		{"notionReportsDB", conf.Notion.ReportsDB},
		{"teacherToken", conf.Teacher.Token},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}
