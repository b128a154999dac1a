package cisco_nxos

import (
	"regexp"

	"github.com/netinventorypro/netinventorypro/addone/parse"
)

// NX-OS show version 规则表
var versionPatterns = []parse.FieldPattern{
	{Field: "version", Pattern: regexp.MustCompile(`(?im)^\s*(?:NXOS|system):\s+version\s+(\S+)`)},
	{Field: "model", Pattern: regexp.MustCompile(`(?i)cisco\s+(Nexus\s?\S+(?:\s+\S+)?)\s+Chassis`)},
	{Field: "serial_number", Pattern: regexp.MustCompile(`(?i)Processor Board ID (\w+)`)},
	{Field: "hostname", Pattern: regexp.MustCompile(`(?i)Device name:\s*(\S+)`)},
	{Field: "uptime", Pattern: regexp.MustCompile(`(?i)Kernel uptime is ([^\r\n]+)`)},
}

func parseVersion(rec *parse.DeviceRecord, raw string) {
	text := parse.CleanOutput(raw)
	for _, fp := range versionPatterns {
		v := parse.ExtractWithPattern(text, fp.Pattern, parse.Unknown)
		if v == parse.Unknown {
			continue
		}
		switch fp.Field {
		case "version":
			rec.Version = v
		case "model":
			rec.Model = v
		case "serial_number":
			rec.SerialNumber = v
		case "hostname":
			rec.Hostname = v
		case "uptime":
			rec.Uptime = v
		}
	}
}
