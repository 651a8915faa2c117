// This package contains the types for flight quota analysis. No network or rendering imports.
package flightquota

const(
	// Column headers of the flight record spreadsheet. These are fixed by the
	// data source; if the publisher renames a column, loading fails loudly.
	ColCarrier     = "公司"
	ColCarrierCode = "公司标识"
	ColFlag        = "客货标识"
	ColCountry     = "国家"
	ColRoute       = "航线"
	ColWeeklyQuota = "周班次"

	// The flag value selecting records that count towards weekly quota totals
	PassengerCargoMixed = "客货混合"

	// Every international route starts or ends here; it is the hub of the network graph
	HomeCountry = "中国"
)

// RequiredColumns lists the columns a flight record sheet must carry, in display order.
var RequiredColumns = []string{
	ColCarrier, ColCarrierCode, ColFlag, ColCountry, ColRoute, ColWeeklyQuota,
}
