// Package staticLog 进程级别的 logrus 日志实例, 默认输出到 stderr, 可切换到 lumberjack 滚动文件
package staticLog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = newDefault()

var mu sync.Mutex

type Options struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`       // 为空则写 stderr
	MaxSize    int    `yaml:"maxsize"`    // MB
	MaxBackups int    `yaml:"maxbackups"` // 保留旧文件个数
	MaxAge     int    `yaml:"maxage"`     // 天
	Compress   bool   `yaml:"compress"`
}

// stderr 不需要关闭
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// Init 按配置重置日志级别和输出, 返回的 io.Closer 用于关闭滚动文件
func Init(opts Options) (io.Closer, error) {
	mu.Lock()
	defer mu.Unlock()

	level := logrus.WarnLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		lv, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, err
		}
		level = lv
	}
	Log.SetLevel(level)

	if opts.File == "" {
		Log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	rolling := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}
	Log.SetOutput(rolling)
	return rolling, nil
}
