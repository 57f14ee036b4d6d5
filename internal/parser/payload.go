package parser

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KillianMeersman/telemeter/internal/domain"
)

// MalformedDataError means the payload parsed as a usage document but
// failed a sanity check: a required field missing, negative usage, a
// period ending before it starts.
type MalformedDataError struct {
	Field  string
	Detail string
}

func (e *MalformedDataError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed usage data: %s: %s", e.Field, e.Detail)
	}
	return "malformed usage data: " + e.Detail
}

// rawDocument maps the OCAPI envelope we care about. The schema is a
// reverse-engineered contract: optional branches are pointers, unknown
// fields are ignored.
type rawDocument struct {
	InternetUsage []struct {
		BusinessIdentifier string `json:"businessidentifier"`
		AvailablePeriods   []struct {
			Usages []rawUsage `json:"usages"`
		} `json:"availableperiods"`
	} `json:"internetusage"`
}

type rawUsage struct {
	PeriodStart string      `json:"periodstart"`
	PeriodEnd   string      `json:"periodend"`
	TotalUsage  *rawVolume  `json:"totalusage"`
	Allocated   *rawVolume  `json:"allocatedusage"`
	Wifree      *rawVolume  `json:"wifreeusage"`
	Squeezed    bool        `json:"squeezed"`
	DailyUsages []rawDayRow `json:"dailyusages"`
}

type rawVolume struct {
	Peak      *float64 `json:"peak"`
	OffPeak   *float64 `json:"offpeak"`
	Volume    *float64 `json:"volume"`
	UsedUnits *float64 `json:"usedunits"`
	Units     string   `json:"units"`
}

type rawDayRow struct {
	Date    string   `json:"date"`
	Peak    *float64 `json:"peak"`
	OffPeak *float64 `json:"offpeak"`
	Units   string   `json:"units"`
}

// Parse converts a raw usage document into a normalized UsageRecord.
// Pure: no I/O, the input is never mutated. When the document carries
// several billing periods the newest one wins.
func Parse(payload []byte) (domain.UsageRecord, error) {
	var doc rawDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domain.UsageRecord{}, &MalformedDataError{Detail: err.Error()}
	}
	if len(doc.InternetUsage) == 0 {
		return domain.UsageRecord{}, &MalformedDataError{Field: "internetusage", Detail: "missing or empty"}
	}

	usage, err := newestUsage(doc)
	if err != nil {
		return domain.UsageRecord{}, err
	}

	periodStart, err := parsePortalTime(usage.PeriodStart)
	if err != nil {
		return domain.UsageRecord{}, &MalformedDataError{Field: "periodstart", Detail: err.Error()}
	}
	periodEnd, err := parsePortalTime(usage.PeriodEnd)
	if err != nil {
		return domain.UsageRecord{}, &MalformedDataError{Field: "periodend", Detail: err.Error()}
	}
	if periodEnd.Before(periodStart) {
		return domain.UsageRecord{}, &MalformedDataError{
			Field:  "periodend",
			Detail: fmt.Sprintf("period ends %s before it starts %s", periodEnd.Format("2006-01-02"), periodStart.Format("2006-01-02")),
		}
	}

	if usage.TotalUsage == nil {
		return domain.UsageRecord{}, &MalformedDataError{Field: "totalusage", Detail: "missing"}
	}
	peakBytes, err := volumeBytes(usage.TotalUsage.Peak, usage.TotalUsage.Units, "totalusage.peak")
	if err != nil {
		return domain.UsageRecord{}, err
	}
	offPeakBytes, err := volumeBytes(usage.TotalUsage.OffPeak, usage.TotalUsage.Units, "totalusage.offpeak")
	if err != nil {
		return domain.UsageRecord{}, err
	}

	record := domain.UsageRecord{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		UsedBytes:   peakBytes + offPeakBytes,
		Unit:        domain.UnitBytes,
		Categories: []domain.Category{
			{Name: "peak", UsedBytes: peakBytes},
			{Name: "offpeak", UsedBytes: offPeakBytes},
		},
		Squeezed: usage.Squeezed,
	}

	if usage.Allocated != nil && usage.Allocated.Volume != nil {
		quota, err := volumeBytes(usage.Allocated.Volume, usage.Allocated.Units, "allocatedusage.volume")
		if err != nil {
			return domain.UsageRecord{}, err
		}
		record.TotalQuotaBytes = quota
	}

	if usage.Wifree != nil && usage.Wifree.UsedUnits != nil {
		wifree, err := volumeBytes(usage.Wifree.UsedUnits, usage.Wifree.Units, "wifreeusage.usedunits")
		if err != nil {
			return domain.UsageRecord{}, err
		}
		record.Categories = append(record.Categories, domain.Category{Name: "wifree", UsedBytes: wifree})
	}

	days, err := parseDays(usage.DailyUsages)
	if err != nil {
		return domain.UsageRecord{}, err
	}
	record.Days = days

	return record, nil
}

// newestUsage flattens every period in the document and returns the
// one with the latest period end.
func newestUsage(doc rawDocument) (rawUsage, error) {
	var (
		best    rawUsage
		bestEnd time.Time
		found   bool
	)
	for _, iu := range doc.InternetUsage {
		for _, ap := range iu.AvailablePeriods {
			for _, u := range ap.Usages {
				end, err := parsePortalTime(u.PeriodEnd)
				if err != nil {
					// Judged when the chosen period is parsed.
					end = time.Time{}
				}
				if !found || end.After(bestEnd) {
					best, bestEnd, found = u, end, true
				}
			}
		}
	}
	if !found {
		return rawUsage{}, &MalformedDataError{Field: "availableperiods", Detail: "no usage entries"}
	}
	return best, nil
}

func parseDays(rows []rawDayRow) ([]domain.DayUsage, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	days := make([]domain.DayUsage, 0, len(rows))
	for i, row := range rows {
		date, err := parsePortalTime(row.Date)
		if err != nil {
			return nil, &MalformedDataError{
				Field:  fmt.Sprintf("dailyusages[%d].date", i),
				Detail: err.Error(),
			}
		}
		peak, err := volumeBytes(row.Peak, row.Units, fmt.Sprintf("dailyusages[%d].peak", i))
		if err != nil {
			return nil, err
		}
		offPeak, err := volumeBytes(row.OffPeak, row.Units, fmt.Sprintf("dailyusages[%d].offpeak", i))
		if err != nil {
			return nil, err
		}
		days = append(days, domain.DayUsage{Date: date, PeakBytes: peak, OffPeakBytes: offPeak})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

// volumeBytes converts a provider volume to bytes. A missing value
// counts as zero; negative values fail the sanity check.
func volumeBytes(value *float64, units, field string) (int64, error) {
	if value == nil {
		return 0, nil
	}
	if *value < 0 {
		return 0, &MalformedDataError{Field: field, Detail: fmt.Sprintf("negative value %v", *value)}
	}
	mult, err := unitMultiplier(units)
	if err != nil {
		return 0, &MalformedDataError{Field: field, Detail: err.Error()}
	}
	return int64(*value * float64(mult)), nil
}

// unitMultiplier maps the portal's unit labels to bytes. The portal
// reports binary multiples. An empty label means MB, the portal's
// historical default.
func unitMultiplier(units string) (int64, error) {
	switch strings.ToUpper(strings.TrimSpace(units)) {
	case "B":
		return 1, nil
	case "KB":
		return 1 << 10, nil
	case "", "MB":
		return 1 << 20, nil
	case "GB":
		return 1 << 30, nil
	case "TB":
		return 1 << 40, nil
	default:
		return 0, fmt.Errorf("unknown unit %q", units)
	}
}

// portalTimeLayouts covers the timestamp shapes the portal has been
// seen emitting.
var portalTimeLayouts = []string{
	"2006-01-02T15:04:05.0-07:00",
	time.RFC3339,
	"2006-01-02",
}

func parsePortalTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range portalTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
