package logger

import (
	"os"
	"sync"

	"github.com/SISTEM-OSS-BALI/oss-recruitment/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	log     *logrus.Logger
	logOnce sync.Once
)

// New membuat logger baru sesuai env dan level yang diberikan.
func New(env, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if env == "production" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// L logger global yang dikonfigurasi dari AppConfig.
func L() *logrus.Logger {
	logOnce.Do(func() {
		appConfig := config.LoadAppConfig()
		log = New(appConfig.Env, appConfig.LogLevel)
	})
	return log
}
