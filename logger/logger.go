package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	Logger *zerolog.Logger

	// 当前打开的日志文件，重新初始化时关闭旧文件避免句柄泄漏
	logFile *os.File
)

// Init 初始化 zerolog 日志
// level: 日志级别 ("debug", "info", "warn", "error")
// file: 日志文件路径，为空时仅输出到控制台
func Init(level string, file string) error {
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"}

	var output io.Writer = console
	var fileWriter *os.File
	if file != "" {
		// 如果指定了文件，同时输出到文件和控制台
		var err error
		fileWriter, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		output = io.MultiWriter(console, fileWriter)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = fileWriter

	logger := zerolog.New(output).With().Timestamp().Logger().Level(logLevel)

	Logger = &logger
	log.Logger = logger

	return nil
}

// Get 获取全局日志实例，未初始化时返回默认配置
func Get() *zerolog.Logger {
	if Logger == nil {
		if err := Init("info", ""); err != nil {
			panic(err)
		}
	}
	return Logger
}
