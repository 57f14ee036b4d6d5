package domain

import "time"

// Unit is the measurement unit of a UsageRecord. The parser normalizes
// every provider unit to bytes, so there is exactly one value.
type Unit string

const UnitBytes Unit = "bytes"

// Category is one slice of the subscriber's consumption, e.g. peak vs
// off-peak traffic. Records keep the provider's presentation order.
type Category struct {
	Name      string `json:"name"`
	UsedBytes int64  `json:"usedBytes"`
}

// DayUsage is the consumption of a single calendar day within the
// billing period.
type DayUsage struct {
	Date         time.Time `json:"date"`
	PeakBytes    int64     `json:"peakBytes"`
	OffPeakBytes int64     `json:"offPeakBytes"`
}

// TotalBytes returns peak + off-peak for the day.
func (d DayUsage) TotalBytes() int64 {
	return d.PeakBytes + d.OffPeakBytes
}

// UsageRecord is one normalized telemeter reading: the subscriber's
// consumption for a single billing period. Built fresh on every
// successful fetch and never mutated afterwards.
type UsageRecord struct {
	PeriodStart     time.Time  `json:"periodStart"`
	PeriodEnd       time.Time  `json:"periodEnd"`
	TotalQuotaBytes int64      `json:"totalQuotaBytes,omitempty"` // 0 when the product has no known cap
	UsedBytes       int64      `json:"usedBytes"`
	Unit            Unit       `json:"unit"`
	Categories      []Category `json:"categories"`
	Days            []DayUsage `json:"days,omitempty"`
	Squeezed        bool       `json:"squeezed"`
}

// HasQuota reports whether the subscription carries a volume cap.
func (r UsageRecord) HasQuota() bool {
	return r.TotalQuotaBytes > 0
}

// UsedPercent returns consumption as a percentage of the quota,
// 0 when no quota is known. May exceed 100.
func (r UsageRecord) UsedPercent() float64 {
	if r.TotalQuotaBytes <= 0 {
		return 0
	}
	return float64(r.UsedBytes) / float64(r.TotalQuotaBytes) * 100
}

// RemainingBytes returns the unused volume, never negative.
func (r UsageRecord) RemainingBytes() int64 {
	if r.TotalQuotaBytes <= 0 || r.UsedBytes >= r.TotalQuotaBytes {
		return 0
	}
	return r.TotalQuotaBytes - r.UsedBytes
}

// OverQuota reports whether consumption passed the cap.
func (r UsageRecord) OverQuota() bool {
	return r.TotalQuotaBytes > 0 && r.UsedBytes > r.TotalQuotaBytes
}

// CategoryBytes looks up a category by name.
func (r UsageRecord) CategoryBytes(name string) (int64, bool) {
	for _, c := range r.Categories {
		if c.Name == name {
			return c.UsedBytes, true
		}
	}
	return 0, false
}

// PeriodDays returns the length of the billing period in whole days.
func (r UsageRecord) PeriodDays() int {
	return int(r.PeriodEnd.Sub(r.PeriodStart).Hours() / 24)
}

// DaysElapsed returns how many days of the period have started at now,
// clamped to [1, PeriodDays]. The first day counts as elapsed.
func (r UsageRecord) DaysElapsed(now time.Time) int {
	d := int(now.Sub(r.PeriodStart).Hours()/24) + 1
	if d < 1 {
		return 1
	}
	if max := r.PeriodDays(); max > 0 && d > max {
		return max
	}
	return d
}

// UntilReset returns the time left until the period ends, floored at 0.
func (r UsageRecord) UntilReset(now time.Time) time.Duration {
	d := r.PeriodEnd.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// PeriodProgress returns the elapsed fraction of the billing period at
// now, clamped to [0, 1].
func (r UsageRecord) PeriodProgress(now time.Time) float64 {
	total := r.PeriodEnd.Sub(r.PeriodStart)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(r.PeriodStart)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// DailyAverageBytes returns mean consumption per elapsed day.
func (r UsageRecord) DailyAverageBytes(now time.Time) int64 {
	days := r.DaysElapsed(now)
	if days <= 0 {
		return r.UsedBytes
	}
	return r.UsedBytes / int64(days)
}

// ProjectedBytes linearly extrapolates consumption to the end of the
// period from the elapsed time fraction.
func (r UsageRecord) ProjectedBytes(now time.Time) int64 {
	p := r.PeriodProgress(now)
	if p <= 0 {
		return r.UsedBytes
	}
	return int64(float64(r.UsedBytes) / p)
}
