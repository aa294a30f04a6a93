// Package sysinfo collects a one-shot snapshot of the local machine:
// host identity, CPU, memory, swap, mounted disks and network totals.
//
// Collection is best-effort per section. A probe that fails (a container
// without /proc/swaps, an unreadable mountpoint) is logged and its section
// left zeroed; the rest of the report is still produced.
package sysinfo

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// HostInfo identifies the machine and its OS.
type HostInfo struct {
	Hostname string
	OS       string
	Platform string
	Kernel   string
	Arch     string
	Uptime   uint64 // seconds
}

// CPUInfo describes the processor.
type CPUInfo struct {
	Model    string
	Physical int
	Logical  int
	MHz      float64
}

// MemInfo describes a memory pool (RAM or swap), in bytes.
type MemInfo struct {
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// DiskInfo describes one mounted filesystem.
type DiskInfo struct {
	Device      string
	Mountpoint  string
	Fstype      string
	Total       uint64
	Used        uint64
	UsedPercent float64
}

// NetInfo holds aggregate transfer counters since boot.
type NetInfo struct {
	BytesSent uint64
	BytesRecv uint64
}

// Info is the full snapshot.
type Info struct {
	Host   HostInfo
	CPU    CPUInfo
	Memory MemInfo
	Swap   MemInfo
	Disks  []DiskInfo
	Net    NetInfo
}

// Collect gathers a snapshot of the current machine.
func Collect() *Info {
	info := &Info{}

	if h, err := host.Info(); err != nil {
		log.Debug().Err(err).Msg("host probe failed")
	} else {
		info.Host = HostInfo{
			Hostname: h.Hostname,
			OS:       h.OS,
			Platform: fmt.Sprintf("%s %s", h.Platform, h.PlatformVersion),
			Kernel:   h.KernelVersion,
			Arch:     h.KernelArch,
			Uptime:   h.Uptime,
		}
	}

	if cpus, err := cpu.Info(); err != nil || len(cpus) == 0 {
		log.Debug().Err(err).Msg("cpu probe failed")
	} else {
		info.CPU.Model = cpus[0].ModelName
		info.CPU.MHz = cpus[0].Mhz
	}
	if n, err := cpu.Counts(false); err == nil {
		info.CPU.Physical = n
	}
	if n, err := cpu.Counts(true); err == nil {
		info.CPU.Logical = n
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.Debug().Err(err).Msg("memory probe failed")
	} else {
		info.Memory = MemInfo{
			Total:       vm.Total,
			Used:        vm.Used,
			Free:        vm.Available,
			UsedPercent: vm.UsedPercent,
		}
	}

	if sw, err := mem.SwapMemory(); err != nil {
		log.Debug().Err(err).Msg("swap probe failed")
	} else {
		info.Swap = MemInfo{
			Total:       sw.Total,
			Used:        sw.Used,
			Free:        sw.Free,
			UsedPercent: sw.UsedPercent,
		}
	}

	if parts, err := disk.Partitions(false); err != nil {
		log.Debug().Err(err).Msg("disk probe failed")
	} else {
		for _, p := range parts {
			usage, err := disk.Usage(p.Mountpoint)
			if err != nil {
				continue
			}
			info.Disks = append(info.Disks, DiskInfo{
				Device:      p.Device,
				Mountpoint:  p.Mountpoint,
				Fstype:      p.Fstype,
				Total:       usage.Total,
				Used:        usage.Used,
				UsedPercent: usage.UsedPercent,
			})
		}
	}

	if counters, err := net.IOCounters(false); err != nil || len(counters) == 0 {
		log.Debug().Err(err).Msg("network probe failed")
	} else {
		info.Net.BytesSent = counters[0].BytesSent
		info.Net.BytesRecv = counters[0].BytesRecv
	}

	return info
}

// FormatUptime renders an uptime in seconds as "Nd Nh Nm".
func FormatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
