package flightquota

import(
	"fmt"
	"strings"
)

// FlightRecord is one row of the civil aviation flight sheet.
type FlightRecord struct {
	Carrier      string // 公司
	CarrierCode  string // 公司标识
	Flag         string // 客货标识, e.g. 客货混合
	Country      string // 国家; may be a composite, e.g. 英国-德国
	Route        string // 航线; hyphen-joined city names
	WeeklyQuota  int    // 周班次
}

func (r FlightRecord)String() string {
	return fmt.Sprintf("%s[%s] %s {%s} %s %d/wk", r.Carrier, r.CarrierCode, r.Country, r.Route,
		r.Flag, r.WeeklyQuota)
}

func (r FlightRecord)IsPassengerCargoMixed() bool {
	return strings.TrimSpace(r.Flag) == PassengerCargoMixed
}

// Countries splits the destination field into its constituent country names.
func (r FlightRecord)Countries() ([]string, error) {
	return SplitComposite(r.Country)
}

// Cities splits the route into its city names, in flying order.
func (r FlightRecord)Cities() ([]string, error) {
	return SplitRoute(r.Route)
}

// HasCountry is true when the destination field mentions the country, either on its
// own or as part of a composite. It is a substring match, as the source data has no
// better structure; "美国" will match "美国-日本".
func (r FlightRecord)HasCountry(country string) bool {
	return country != "" && strings.Contains(r.Country, country)
}

// Field returns the value of the named column, for generic tallying.
func (r FlightRecord)Field(col string) (string, error) {
	switch col {
	case ColCarrier:     return r.Carrier, nil
	case ColCarrierCode: return r.CarrierCode, nil
	case ColFlag:        return r.Flag, nil
	case ColCountry:     return r.Country, nil
	case ColRoute:       return r.Route, nil
	case ColWeeklyQuota: return fmt.Sprintf("%d", r.WeeklyQuota), nil
	default:             return "", fmt.Errorf("column '%s' not known", col)
	}
}
