package api

// Variable describes one well-known Fingrid time-series variable.
type Variable struct {
	ID          string
	Description string
}

// CommonVariables returns the catalog of frequently used electricity
// variables in display order.
func CommonVariables() []Variable {
	return []Variable{
		{ID: "124", Description: "Production (Hydro)"},
		{ID: "100", Description: "Production (Wind)"},
		{ID: "101", Description: "Production (Thermal)"},
		{ID: "102", Description: "Production (Solar)"},
		{ID: "74", Description: "Electricity generation"},
		{ID: "172", Description: "Load forecast"},
		{ID: "191", Description: "Reserved capacity"},
		{ID: "200", Description: "Cross-border flow"},
	}
}
