package hirschmann_hios

import (
	"regexp"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

var (
	sysNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)System Name\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Hostname\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Device Name\s*:\s*([^\r\n]+)`),
	}
	sysUptimePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)System Up ?Time\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Uptime\s*:\s*([^\r\n]+)`),
		regexp.MustCompile(`(?im)Up Time\s*:\s*([^\r\n]+)`),
	}
)

// parseSystemInformation 解析 show system information 回显
// HiOS 的主机名与运行时长在系统信息命令里，不在 show version
func parseSystemInformation(rec *parse.DeviceRecord, raw string) {
	text := parse.CleanOutput(raw)
	if v := parse.ExtractFirst(text, sysNamePatterns, parse.Unknown); v != parse.Unknown {
		rec.Hostname = v
	}
	if v := parse.ExtractFirst(text, sysUptimePatterns, parse.Unknown); v != parse.Unknown {
		rec.Uptime = v
	}
}
