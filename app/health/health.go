// Package health checks database and host conditions for the status endpoint
package health

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Pinger checks database connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// Thresholds for host checks, zero value disables the check
type Thresholds struct {
	MemoryBelow   int     // max used memory, percent
	LoadAvgBelow  float64 // max 1m load average
	DiskFreeAbove int     // min free disk space, percent
	DiskPath      string  // path to check free space on, "/" if empty
}

// Check is a result of a single check
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// Report combines all checks, OK only if every check passed
type Report struct {
	OK        bool      `json:"ok"`
	Checks    []Check   `json:"checks"`
	Timestamp time.Time `json:"timestamp"`
}

// Checker runs database and host checks
type Checker struct {
	db         Pinger
	thresholds Thresholds
	timeout    time.Duration
}

// NewChecker makes Checker for the given database and thresholds
func NewChecker(db Pinger, thresholds Thresholds) *Checker {
	if thresholds.DiskPath == "" {
		thresholds.DiskPath = "/"
	}
	return &Checker{db: db, thresholds: thresholds, timeout: 5 * time.Second}
}

// Check runs all enabled checks
func (c *Checker) Check(ctx context.Context) Report {
	res := Report{OK: true, Checks: []Check{}, Timestamp: time.Now()}
	add := func(name string, ok bool, reason string) {
		res.Checks = append(res.Checks, Check{Name: name, OK: ok, Reason: reason})
		if !ok {
			res.OK = false
			log.Printf("[WARN] health check %s failed, %s", name, reason)
		}
	}

	if c.db != nil {
		ok, reason := c.checkDB(ctx)
		add("database", ok, reason)
	}
	if c.thresholds.MemoryBelow > 0 {
		ok, reason := checkMemory(c.thresholds.MemoryBelow)
		add("memory", ok, reason)
	}
	if c.thresholds.LoadAvgBelow > 0 {
		ok, reason := checkLoadAvg(c.thresholds.LoadAvgBelow)
		add("load", ok, reason)
	}
	if c.thresholds.DiskFreeAbove > 0 {
		ok, reason := checkDiskFree(c.thresholds.DiskFreeAbove, c.thresholds.DiskPath)
		add("disk", ok, reason)
	}
	return res
}

func (c *Checker) checkDB(ctx context.Context) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.db.Ping(ctx); err != nil {
		return false, fmt.Sprintf("database ping failed: %v", err)
	}
	return true, ""
}

// checkMemory checks if memory usage is below threshold
func checkMemory(threshold int) (bool, string) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return false, fmt.Sprintf("failed to get memory: %v", err)
	}
	current := int(v.UsedPercent)
	if current >= threshold {
		return false, fmt.Sprintf("memory at %d%%, threshold %d%%", current, threshold)
	}
	return true, ""
}

// checkLoadAvg checks if load average is below threshold
func checkLoadAvg(threshold float64) (bool, string) {
	loads, err := load.Avg()
	if err != nil {
		return false, fmt.Sprintf("failed to get load average: %v", err)
	}
	if loads.Load1 >= threshold {
		return false, fmt.Sprintf("load at %.2f, threshold %.2f", loads.Load1, threshold)
	}
	return true, ""
}

// checkDiskFree checks if disk free space is above threshold
func checkDiskFree(minFreePercent int, path string) (bool, string) {
	usage, err := disk.Usage(path)
	if err != nil {
		return false, fmt.Sprintf("failed to get disk usage for %s: %v", path, err)
	}
	freePercent := 100 - int(usage.UsedPercent)
	if freePercent < minFreePercent {
		return false, fmt.Sprintf("disk free at %d%%, need %d%% on %s", freePercent, minFreePercent, path)
	}
	return true, ""
}
