package hirschmann_hios

import (
	"regexp"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// show version 的多版本兼容规则表
var (
	versionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Software Version\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)SW Version\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)HiOS\s+Version\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Version\s*:\s*([^\r\n]+)`),
	}
	modelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Product\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Hardware\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Model\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Device Type\s*:\s*([^\r\n]+)`),
	}
	serialPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Serial Number\s*:\s*(\S+)`),
		regexp.MustCompile(`(?im)S/N\s*:\s*(\S+)`),
		regexp.MustCompile(`(?im)Serial\s*:\s*(\S+)`),
	}
	baseMacPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)Base MAC Address\s*:\s*([0-9a-fA-F:.\-]+)`),
		regexp.MustCompile(`(?im)MAC Address\s*:\s*([0-9a-fA-F:.\-]+)`),
		regexp.MustCompile(`(?im)System MAC\s*:\s*([0-9a-fA-F:.\-]+)`),
	}
)

// parseVersion 解析 show version 回显并合并进设备记录
func parseVersion(rec *parse.DeviceRecord, raw string) {
	text := parse.CleanOutput(raw)
	if v := parse.ExtractFirst(text, versionPatterns, parse.Unknown); v != parse.Unknown {
		rec.Version = v
	}
	if v := parse.ExtractFirst(text, modelPatterns, parse.Unknown); v != parse.Unknown {
		rec.Model = v
	}
	if v := parse.ExtractFirst(text, serialPatterns, parse.Unknown); v != parse.Unknown {
		rec.SerialNumber = v
	}
	if v := parse.ExtractFirst(text, baseMacPatterns, parse.Unknown); v != parse.Unknown {
		rec.BaseMAC = v
	}
}
