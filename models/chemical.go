package models

// Chemical is a product in the chemical library.
type Chemical struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	EPANumber string `json:"epaNumber"`
}

// DefaultChemicals seeds an empty library.
var DefaultChemicals = []Chemical{
	{ID: "firststrike-soft-bait", Name: "FirstStrike Soft Bait", EPANumber: "7173-258"},
	{ID: "cb-80-aerosol", Name: "CB-80 Insecticide Aerosol", EPANumber: "279-3393"},
	{ID: "transport-mikron", Name: "Transport Mikron Insecticide", EPANumber: "8033-109-279"},
	{ID: "transport-ghp", Name: "Transport GHP Insecticide", EPANumber: "8033-96-279"},
}
