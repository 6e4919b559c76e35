package controllers

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/fletes/internal/client/api"
	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/common"
)

// registrationLayout is how the list endpoint formats registrationDate.
const registrationLayout = "02/01/2006"

var (
	clientTag = language.MustParse(common.ClientLocale)
	printer   = message.NewPrinter(clientTag)
	upper     = cases.Upper(clientTag)
)

// MonthStats summarises the fletes registered in one calendar month.
type MonthStats struct {
	Year    int
	Month   time.Month
	Label   string
	Count   int
	Total   float64
	Average float64
	Fletes  []models.Flete
}

// ComputeMonthStats counts the fletes whose registration date falls in the
// month of now. Rows without a readable date are skipped.
func ComputeMonthStats(list []models.Flete, now time.Time) MonthStats {
	st := MonthStats{
		Year:   now.Year(),
		Month:  now.Month(),
		Label:  MonthLabel(now.Year(), int(now.Month())),
		Fletes: []models.Flete{},
	}

	for _, f := range list {
		if f.RegistrationDate == "" {
			continue
		}
		d, err := time.Parse(registrationLayout, f.RegistrationDate)
		if err != nil {
			continue
		}
		if d.Year() != st.Year || d.Month() != st.Month {
			continue
		}
		st.Count++
		st.Total += f.IndividualCost
		st.Fletes = append(st.Fletes, f)
	}

	if st.Count > 0 {
		st.Average = st.Total / float64(st.Count)
	}
	return st
}

// MonthLabel renders a month the way the summary cards title it, e.g.
// "OCTUBRE DE 2025".
func MonthLabel(year, month int) string {
	return upper.String(fmt.Sprintf("%s de %d", api.MonthName(month), year))
}

// FormatCurrency renders an amount in pesos with two decimals and grouped
// thousands.
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}
	return sign + "$" + printer.Sprintf("%.2f", v)
}
