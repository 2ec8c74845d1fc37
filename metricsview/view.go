// Package metricsview turns per-instance resource samples into chart series.
//
// Samples are averaged into fixed-width buckets, instances that never overlap
// in time (a pod replaced by a deployment) share one replica slot, and every
// slot is laid out on a common timestamp axis. Buckets where a slot has no
// sample hold the sentinel 0, which normalize.Trim later removes at the edges.
package metricsview

import (
	"fmt"
	"sort"
	"time"

	"github.com/sartorproj/seriesview/chart"
	"github.com/sartorproj/seriesview/timeseries"
)

const bytesPerMB = 1024 * 1024

// Sample is one raw resource reading of an application instance.
type Sample struct {
	Timestamp time.Time
	Instance  string
	CPU       int64 // millicores
	Memory    int64 // bytes
}

// Bucketed is the average of an instance's samples within one bucket.
type Bucketed struct {
	Bucket   int64 // bucket start, epoch seconds
	Instance string
	CPU      float64 // vCores
	Memory   float64 // bytes
}

// Aggregate averages the samples within [from, to] per bucket and instance.
// The result is ordered by bucket, then instance.
func Aggregate(samples []Sample, from, to time.Time, bucket int64) []Bucketed {
	if bucket <= 0 {
		bucket = 60
	}

	type key struct {
		bucket   int64
		instance string
	}
	type acc struct {
		cpu, mem float64
		n        int
	}

	groups := make(map[key]*acc)
	for _, s := range samples {
		if s.Timestamp.Before(from) || s.Timestamp.After(to) {
			continue
		}
		k := key{bucket: s.Timestamp.Unix() / bucket * bucket, instance: s.Instance}
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.cpu += float64(s.CPU)
		a.mem += float64(s.Memory)
		a.n++
	}

	out := make([]Bucketed, 0, len(groups))
	for k, a := range groups {
		out = append(out, Bucketed{
			Bucket:   k.bucket,
			Instance: k.instance,
			CPU:      a.cpu / float64(a.n) / 1000,
			Memory:   a.mem / float64(a.n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bucket != out[j].Bucket {
			return out[i].Bucket < out[j].Bucket
		}
		return out[i].Instance < out[j].Instance
	})
	return out
}

// View holds one series per replica slot for each resource.
type View struct {
	CPU    []*timeseries.Series
	Memory []*timeseries.Series
}

// Kind selects a resource of a View.
type Kind string

// Chartable resources.
const (
	KindCPU    Kind = "cpu"
	KindMemory Kind = "memory"
)

// Config returns the chart config for one resource of the view.
func (v *View) Config(kind Kind) (*chart.Config, error) {
	switch kind {
	case KindCPU:
		return &chart.Config{Title: "CPU (vCores)", ValuePrecision: 2, Series: v.CPU}, nil
	case KindMemory:
		return &chart.Config{Title: "Memory (MB)", ValuePrecision: 1, Series: v.Memory}, nil
	default:
		return nil, fmt.Errorf("unknown metrics kind %q", kind)
	}
}

type instance struct {
	name             string
	minTime, maxTime int64
	cpu, mem         map[int64]float64
}

type slot struct {
	label    string
	maxTime  int64
	cpu, mem map[int64]float64
}

// Build lays the bucketed rows of an application out as series labelled
// "<app>-<n>", one per replica slot, on a shared sorted timestamp axis.
// Memory is converted to MB.
func Build(app string, rows []Bucketed) *View {
	instances := make(map[string]*instance)
	allTimestamps := make(map[int64]struct{})

	for _, r := range rows {
		inst, ok := instances[r.Instance]
		if !ok {
			inst = &instance{
				name:    r.Instance,
				minTime: r.Bucket,
				maxTime: r.Bucket,
				cpu:     make(map[int64]float64),
				mem:     make(map[int64]float64),
			}
			instances[r.Instance] = inst
		}
		inst.cpu[r.Bucket] = r.CPU
		inst.mem[r.Bucket] = r.Memory
		inst.minTime = min(inst.minTime, r.Bucket)
		inst.maxTime = max(inst.maxTime, r.Bucket)
		allTimestamps[r.Bucket] = struct{}{}
	}

	sorted := make([]*instance, 0, len(instances))
	for _, inst := range instances {
		sorted = append(sorted, inst)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].minTime != sorted[j].minTime {
			return sorted[i].minTime < sorted[j].minTime
		}
		return sorted[i].name < sorted[j].name
	})

	var slots []*slot
	for _, inst := range sorted {
		target := (*slot)(nil)
		for _, s := range slots {
			// a later pod that starts after this slot ended replaces it
			if inst.minTime > s.maxTime {
				target = s
				break
			}
		}
		if target == nil {
			target = &slot{
				label: fmt.Sprintf("%s-%d", app, len(slots)),
				cpu:   make(map[int64]float64),
				mem:   make(map[int64]float64),
			}
			slots = append(slots, target)
		}
		target.maxTime = inst.maxTime
		for ts, v := range inst.cpu {
			target.cpu[ts] = v
		}
		for ts, v := range inst.mem {
			target.mem[ts] = v
		}
	}

	timestamps := make([]int64, 0, len(allTimestamps))
	for ts := range allTimestamps {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	view := &View{
		CPU:    make([]*timeseries.Series, 0, len(slots)),
		Memory: make([]*timeseries.Series, 0, len(slots)),
	}
	for _, s := range slots {
		cpu := make([]float64, len(timestamps))
		mem := make([]float64, len(timestamps))
		for i, ts := range timestamps {
			cpu[i] = s.cpu[ts]
			mem[i] = s.mem[ts] / bytesPerMB
		}
		view.CPU = append(view.CPU, &timeseries.Series{
			Label:      s.label,
			Timestamps: timeseries.UnixSlice(timestamps),
			Values:     cpu,
		})
		view.Memory = append(view.Memory, &timeseries.Series{
			Label:      s.label,
			Timestamps: timeseries.UnixSlice(timestamps),
			Values:     mem,
		})
	}
	return view
}
