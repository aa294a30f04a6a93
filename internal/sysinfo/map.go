package sysinfo

import "fmt"

// Map converts the snapshot to the nested map shape shared with the fmt
// command, so one set of renderers covers plain, JSON, YAML and CSV.
func (i *Info) Map() map[string]any {
	disks := make(map[string]any, len(i.Disks))
	for n, d := range i.Disks {
		disks[fmt.Sprintf("disk%d", n)] = map[string]any{
			"device":     d.Device,
			"mountpoint": d.Mountpoint,
			"fstype":     d.Fstype,
			"total":      d.Total,
			"used":       d.Used,
			"used_pct":   round1(d.UsedPercent),
		}
	}

	return map[string]any{
		"host": map[string]any{
			"hostname": i.Host.Hostname,
			"os":       i.Host.OS,
			"platform": i.Host.Platform,
			"kernel":   i.Host.Kernel,
			"arch":     i.Host.Arch,
			"uptime":   FormatUptime(i.Host.Uptime),
		},
		"cpu": map[string]any{
			"model":    i.CPU.Model,
			"physical": i.CPU.Physical,
			"logical":  i.CPU.Logical,
			"mhz":      round1(i.CPU.MHz),
		},
		"memory": memMap(i.Memory),
		"swap":   memMap(i.Swap),
		"disks":  disks,
		"net": map[string]any{
			"bytes_sent": i.Net.BytesSent,
			"bytes_recv": i.Net.BytesRecv,
		},
	}
}

func memMap(m MemInfo) map[string]any {
	return map[string]any{
		"total":    m.Total,
		"used":     m.Used,
		"free":     m.Free,
		"used_pct": round1(m.UsedPercent),
	}
}

func round1(f float64) float64 {
	return float64(int64(f*10+0.5)) / 10
}
