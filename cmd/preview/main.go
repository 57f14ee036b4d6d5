package main

import (
	"fmt"
	"time"

	"github.com/KillianMeersman/telemeter/internal/i18n"
	"github.com/KillianMeersman/telemeter/internal/parser"
	"github.com/KillianMeersman/telemeter/internal/ui/views"
)

// Renders every view against a synthetic payload, so layout work needs
// neither portal credentials nor a live session.
func main() {
	i18n.SetLanguage("en")

	rec, err := parser.Parse(samplePayload())
	if err != nil {
		fmt.Println("sample payload rejected:", err)
		return
	}

	overview := views.NewOverviewView()
	calendar := views.NewCalendarView()
	breakdown := views.NewBreakdownView()
	overview.SetRecord(&rec)
	calendar.SetRecord(&rec)
	breakdown.SetRecord(&rec)

	fmt.Println(overview.Render(100, 40, false))
	fmt.Println()
	fmt.Println(calendar.Render(100, 40, false))
	fmt.Println()
	fmt.Println(breakdown.Render(100, 40, false))
}

// samplePayload builds a portal document for the current month, shaped
// like the real OCAPI envelope.
func samplePayload() []byte {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	daily := ""
	for d := start; d.Before(now) && d.Before(end); d = d.AddDate(0, 0, 1) {
		if daily != "" {
			daily += ","
		}
		peak := 3 + (d.Day()*7)%11
		offpeak := 1 + (d.Day()*3)%5
		daily += fmt.Sprintf(`{"date":%q,"peak":%d,"offpeak":%d,"units":"GB"}`,
			d.Format("2006-01-02"), peak, offpeak)
	}

	doc := fmt.Sprintf(`{
  "internetusage": [{
    "businessidentifier": "DEMO",
    "availableperiods": [{
      "usages": [{
        "periodstart": %q,
        "periodend": %q,
        "totalusage": {"peak": 212, "offpeak": 96, "units": "GB"},
        "allocatedusage": {"volume": 750, "units": "GB"},
        "wifreeusage": {"usedunits": 4, "units": "GB"},
        "squeezed": false,
        "dailyusages": [%s]
      }]
    }]
  }]
}`, start.Format("2006-01-02"), end.Format("2006-01-02"), daily)

	return []byte(doc)
}
