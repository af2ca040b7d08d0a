package cli

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SysInfo describes the machine a benchmark ran on.
type SysInfo struct {
	Platform  string `json:"platform"`
	CPU       string `json:"cpu"`
	Cores     int    `json:"cores"`
	Memory    string `json:"memory"`
	GoVersion string `json:"go_version"`
}

// collectSysInfo probes the host. Probes that fail leave their field at
// "unknown"; a report is never refused over missing host data.
func collectSysInfo() SysInfo {
	info := SysInfo{
		Platform:  "unknown",
		CPU:       "unknown",
		Cores:     runtime.NumCPU(),
		Memory:    "unknown",
		GoVersion: runtime.Version(),
	}
	if hostStat, err := host.Info(); err == nil && hostStat.Platform != "" {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.Memory = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}
