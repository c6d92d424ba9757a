package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем по умолчанию, чтобы пакеты можно было
// использовать в тестах без явной инициализации.
var Log = logrus.New()

// Init настраивает глобальный логгер.
// level - имя уровня logrus ("debug", "info", ...), при ошибке разбора остается "info".
// format - "json" для продакшена, иначе цветной текст для разработки.
func Init(level, format string) {
	InitWithOutput(level, format, os.Stdout)
}

// InitWithOutput то же, что Init, но с явным приемником.
// Терминальная сессия уводит логи в файл, чтобы не портить экран.
func InitWithOutput(level, format string, out io.Writer) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// Discard глушит логгер (для тестов и бенчмарков).
func Discard() {
	Log = logrus.New()
	Log.SetOutput(io.Discard)
}
