package lrv

import (
	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"

	"github.com/tidwall/gjson"
)

// ParseJSON 从 JSON 读取配置, 字段与 yaml 相同, 缺省规则同 ParseYAML
func ParseJSON(raw []byte) (*Config, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errorx.New(errCode.INVALID_VALUE, "invalid json")
	}
	c := DefaultConfig()
	doc := gjson.ParseBytes(raw)

	setString(doc, "kernel", &c.Kernel)
	if doc.Get("bandwidth").Exists() {
		c.Bandwidth = BandwidthConfig{}
	}
	setString(doc, "bandwidth.mode", &c.Bandwidth.Mode)
	setFloat(doc, "bandwidth.value", &c.Bandwidth.Value)
	setInt(doc, "bandwidth.seed", &c.Bandwidth.Seed)
	setString(doc, "bandwidth.rule", &c.Bandwidth.Rule)
	setFloat(doc, "bandwidth.scale", &c.Bandwidth.Scale)
	setString(doc, "ar.criterion", &c.AR.Criterion)
	setInt(doc, "ar.kmax", &c.AR.KMax)
	setBool(doc, "ar.parallel", &c.AR.Parallel)
	setBool(doc, "fft", &c.FFT)
	setString(doc, "log.level", &c.Log.Level)
	setString(doc, "log.file", &c.Log.File)
	setInt(doc, "log.maxsize", &c.Log.MaxSize)
	setInt(doc, "log.maxbackups", &c.Log.MaxBackups)
	setInt(doc, "log.maxage", &c.Log.MaxAge)
	setBool(doc, "log.compress", &c.Log.Compress)

	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func setString(doc gjson.Result, path string, dst *string) {
	if r := doc.Get(path); r.Exists() {
		*dst = r.String()
	}
}

func setFloat(doc gjson.Result, path string, dst *float64) {
	if r := doc.Get(path); r.Exists() {
		*dst = r.Float()
	}
}

func setInt(doc gjson.Result, path string, dst *int) {
	if r := doc.Get(path); r.Exists() {
		*dst = int(r.Int())
	}
}

func setBool(doc gjson.Result, path string, dst *bool) {
	if r := doc.Get(path); r.Exists() {
		*dst = r.Bool()
	}
}
