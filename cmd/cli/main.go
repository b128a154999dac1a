package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netinventorypro/netinventorypro/internal/config"
	"github.com/netinventorypro/netinventorypro/internal/model"
	"github.com/netinventorypro/netinventorypro/internal/service"
	"github.com/netinventorypro/netinventorypro/pkg/logger"

	// 注册各平台解析插件
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/cisco_ios"
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/cisco_nxos"
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/hirschmann_hios"
	_ "github.com/netinventorypro/netinventorypro/addone/parse/platforms/juniper_junos"
)

// deviceFile 设备清单文件结构
type deviceFile struct {
	Devices []model.DeviceInfo `yaml:"devices"`
}

func main() {
	var (
		configPath  = flag.String("config", "configs/config.yaml", "配置文件路径")
		devicesPath = flag.String("devices", "devices.yaml", "设备清单文件路径")
		outputPath  = flag.String("output", "", "结果输出文件路径（默认输出到标准输出）")
		quiet       = flag.Bool("quiet", false, "不打印采集进度")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "console",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	devices, err := loadDevices(*devicesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load devices: %v\n", err)
		os.Exit(1)
	}
	if len(devices) == 0 {
		fmt.Fprintln(os.Stderr, "No devices in device file")
		os.Exit(1)
	}

	collector := service.NewInventoryCollector(cfg, service.NewSSHCommandRunner(cfg))

	var progress service.ProgressFunc
	if !*quiet {
		progress = func(phase string, total, current int, message string) {
			fmt.Fprintf(os.Stderr, "[%s] %d/%d %s\n", phase, current, total, message)
		}
	}

	results := collector.Collect(context.Background(), devices, progress)
	summary := service.Summarize(results)

	report := struct {
		Results []*model.CollectionResult `json:"results"`
		Summary *model.CollectionSummary  `json:"summary"`
	}{Results: results, Summary: summary}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal report: %v\n", err)
		os.Exit(1)
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputPath)
	} else {
		fmt.Println(string(data))
	}

	if summary.Failed > 0 {
		os.Exit(2)
	}
}

// loadDevices 加载 YAML 设备清单
func loadDevices(path string) ([]model.DeviceInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file deviceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid device file: %w", err)
	}
	return file.Devices, nil
}
