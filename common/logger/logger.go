package logger

import (
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultFileMaxSize    = 10 // megabytes
	DefaultFileMaxBackups = 5
	DefaultFileMaxAge     = 7 // days
)

type Config struct {
	AppName     string
	Level       string
	EnableJson  bool
	EnableFile  bool
	FilePath    string
	FileMaxSize int
	DisableStd  bool
}

var (
	current      atomic.Pointer[zap.Logger]
	rotateWriter atomic.Pointer[lumberjack.Logger]
)

func init() {
	current.Store(zap.NewNop())
}

// L returns the process logger. It is a no-op logger until InitLogger is called.
func L() *zap.Logger {
	return current.Load()
}

// SetLogger installs l as the process logger.
func SetLogger(l *zap.Logger) {
	current.Store(l)
}

func ParseLogLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(level))
}

// InitLogger builds the process logger from config and installs it. A nil
// config yields a debug console logger on stderr.
func InitLogger(config *Config) (*zap.Logger, error) {
	if config == nil {
		config = &Config{AppName: "gonavpath", Level: "debug"}
	}
	level, err := ParseLogLevel(config.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	var encoder zapcore.Encoder
	if config.EnableJson {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var cores []zapcore.Core
	if !config.DisableStd {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level))
	}
	var writer *lumberjack.Logger
	if config.EnableFile {
		writer = newRotateWriter(config)
		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(writer), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	if config.AppName != "" {
		l = l.Named(config.AppName)
	}
	_ = L().Sync()
	SetLogger(l)
	if previous := rotateWriter.Swap(writer); previous != nil {
		_ = previous.Close()
	}
	return l, nil
}

func newRotateWriter(config *Config) *lumberjack.Logger {
	maxSize := config.FileMaxSize
	if maxSize == 0 {
		maxSize = DefaultFileMaxSize
	}
	path := config.FilePath
	if path == "" {
		path = "./log/" + config.AppName + ".log"
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: DefaultFileMaxBackups,
		MaxAge:     DefaultFileMaxAge,
		LocalTime:  true,
	}
}

// CloseLogger flushes buffered records and closes the log file. The logger
// is a no-op logger afterwards.
func CloseLogger() {
	_ = L().Sync()
	SetLogger(zap.NewNop())
	if writer := rotateWriter.Swap(nil); writer != nil {
		_ = writer.Close()
	}
}
