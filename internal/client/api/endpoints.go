package api

import "strconv"

const (
	pathLogin  = "/api/Auth/Login"
	pathLogout = "/api/Auth/Logout"

	pathListFletes       = "/api/GeneralLists/GetFletes"
	pathListSuppliers    = "/api/GeneralLists/GetSuppliers"
	pathListDestinations = "/api/GeneralLists/GetDestination"

	pathMonthsWithData = "/api/Fletes/GeMonthsWithData"
	pathMonthlyReport  = "/api/Fletes/GenerateMonthlyReport"
	pathRangeReport    = "/api/Fletes/GenerateReportByDateRange"
	pathFleteByID      = "/api/Fletes/GetFletesById"
	pathCreate         = "/api/Fletes/Create"
	pathUpdate         = "/api/Fletes/Update/"
	pathDelete         = "/api/Fletes/Delete/"
)

func withID(prefix string, id int) string {
	return prefix + strconv.Itoa(id)
}
