package lrv

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/infra/observe/log/staticLog"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Kernel    string            `yaml:"kernel"`
	Bandwidth BandwidthConfig   `yaml:"bandwidth"`
	AR        ARConfig          `yaml:"ar"`
	FFT       bool              `yaml:"fft"`
	Log       staticLog.Options `yaml:"log"`
}

// Rule 非空时按经验公式由 T 算出带宽(manual)或初始滞后数(automatic), 忽略 Value/Seed
type BandwidthConfig struct {
	Mode  string  `yaml:"mode"`
	Value float64 `yaml:"value"`
	Seed  int     `yaml:"seed"`
	Rule  string  `yaml:"rule"`
	Scale float64 `yaml:"scale"`
}

type ARConfig struct {
	Criterion string `yaml:"criterion"`
	KMax      int    `yaml:"kmax"`
	Parallel  bool   `yaml:"parallel"`
}

func DefaultConfig() *Config {
	return &Config{
		Kernel: "bartlett",
		Bandwidth: BandwidthConfig{
			Mode:  "automatic",
			Rule:  "bartlett-auto",
			Scale: 4,
		},
		AR: ARConfig{
			Criterion: "AIC",
			KMax:      4,
		},
		Log: staticLog.Options{Level: "warn"},
	}
}

// 当前配置, atomic.Value 存 *Config, 热更新时无锁读取
var cfgValue atomic.Value

// 上一次 Init 打开的日志输出, 下一次 Init 切换后关闭
var (
	logMu     sync.Mutex
	logCloser io.Closer
)

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	return ParseYAML(b)
}

// ParseYAML 缺省字段沿用 DefaultConfig, bandwidth 段出现时整段替换默认值
func ParseYAML(b []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	var raw struct {
		Bandwidth *BandwidthConfig `yaml:"bandwidth"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if raw.Bandwidth != nil {
		c.Bandwidth = *raw.Bandwidth
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// Init 加载配置并按 log 段重置 staticLog
func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	logMu.Lock()
	defer logMu.Unlock()
	closer, err := staticLog.Init(c.Log)
	if err != nil {
		return fmt.Errorf("init log: %w", err)
	}
	if logCloser != nil {
		if err := logCloser.Close(); err != nil {
			staticLog.Log.Warnf("close previous log output: %s", err)
		}
	}
	logCloser = closer
	cfgValue.Store(c)
	return nil
}

// GetConfig 未 Init 时返回默认配置
func GetConfig() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return DefaultConfig()
	}
	c := *cAny.(*Config)
	return &c
}

// 规范化: 核函数/模式小写, 准则大写, 并校验取值
func (c *Config) normalize() error {
	c.Kernel = strings.ToLower(strings.TrimSpace(c.Kernel))
	c.Bandwidth.Mode = strings.ToLower(strings.TrimSpace(c.Bandwidth.Mode))
	c.Bandwidth.Rule = strings.ToLower(strings.TrimSpace(c.Bandwidth.Rule))
	c.AR.Criterion = strings.ToUpper(strings.TrimSpace(c.AR.Criterion))

	if c.KernelKind() == KERNEL_ERROR {
		return errorx.Newf(errCode.INVALID_KERNEL, "invalid kernel %q", c.Kernel)
	}
	if c.Criterion() == IC_ERROR {
		return errorx.Newf(errCode.INVALID_CRITERION, "invalid criterion %q", c.AR.Criterion)
	}
	if c.AR.KMax < 0 {
		return errorx.Newf(errCode.INVALID_ORDER, "invalid kmax %d", c.AR.KMax)
	}

	switch GetMyBandwidthMode(c.Bandwidth.Mode) {
	case BW_MANUAL:
		if c.Bandwidth.Value < 0 {
			return errorx.Newf(errCode.INVALID_BANDWIDTH, "invalid bandwidth %v", c.Bandwidth.Value)
		}
	case BW_AUTOMATIC:
		if c.Bandwidth.Seed < 0 {
			return errorx.Newf(errCode.INVALID_BANDWIDTH_SEED, "invalid seed %d", c.Bandwidth.Seed)
		}
	default:
		return errorx.Newf(errCode.INVALID_VALUE, "invalid bandwidth mode %q", c.Bandwidth.Mode)
	}
	if c.Bandwidth.Rule != "" && GetMyBandwidthRule(c.Bandwidth.Rule) == RULE_ERROR {
		return errorx.Newf(errCode.INVALID_VALUE, "invalid bandwidth rule %q", c.Bandwidth.Rule)
	}
	return nil
}

func (c *Config) KernelKind() KernelKind {
	return GetMyKernel(c.Kernel)
}

func (c *Config) Criterion() Criterion {
	return GetMyCriterion(c.AR.Criterion)
}

// Policy 按样本量 T 解析带宽策略
func (c *Config) Policy(T int) (BandwidthPolicy, error) {
	mode := GetMyBandwidthMode(c.Bandwidth.Mode)
	if mode == BW_ERROR {
		return BandwidthPolicy{}, errorx.Newf(errCode.INVALID_VALUE, "invalid bandwidth mode %q", c.Bandwidth.Mode)
	}
	if c.Bandwidth.Rule == "" {
		if mode == BW_MANUAL {
			return Manual(c.Bandwidth.Value), nil
		}
		return Automatic(c.Bandwidth.Seed), nil
	}

	v, err := BandwidthByRule(GetMyBandwidthRule(c.Bandwidth.Rule), c.Bandwidth.Scale, T)
	if err != nil {
		return BandwidthPolicy{}, err
	}
	if mode == BW_MANUAL {
		return Manual(float64(v)), nil
	}
	return Automatic(v), nil
}

func (c *Config) options() []Option {
	return []Option{WithFFT(c.FFT), WithParallel(c.AR.Parallel)}
}

// EstimateWithConfig 按配置走核估计
func EstimateWithConfig(series []float64, c *Config) (LRVResult, error) {
	policy, err := c.Policy(len(series))
	if err != nil {
		return LRVResult{}, err
	}
	return Estimate(series, c.KernelKind(), policy, c.options()...)
}

// ARSpectralWithConfig 按配置走 AR 谱估计
func ARSpectralWithConfig(series []float64, c *Config) (ARSpectralResult, error) {
	return ARSpectral(series, c.Criterion(), c.AR.KMax, c.options()...)
}
