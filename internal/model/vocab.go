package model

// Closed vocabularies for ticket and order fields. Matching is exact and
// case-sensitive; anything outside these sets fails validation.

type Carrier string

type Service string

type Produto string

type DamageType string

var Carriers = []Carrier{"FedEx", "USPS", "UPS", "OnTrac", "DHL"}

var Produtos = []Produto{
	"Longevity",
	"Glow",
	"Calm",
	"Lean Muscle",
	"Hydro burn",
	"NMN Cell Renew Tonic",
	"Immunity Tonic",
	"Relief Tonic",
	"Calm Tonic",
	"Radiance Tonic",
}

var Services = []Service{
	"FedEx 2 Day (by end of the day in two days)",
	"FedEx 2 Day A.M (by 9 AM in two days)",
	"FedEx Express Saver",
	"FedEx Ground Home Delivery",
	"FedEx Priority Overnight (by 12:00 PM next day)",
	"FedEx Standard Overnight (by end of the day next day)",
	"ShipMonk Economy",
	"ShipMonk Standard",
	"ShipMonk 2 Day",
	"UPS Ground",
	"UPS 3 Day Select",
	"UPS 2nd Day Air (by end of the day in two days)",
	"UPS Next Day Air Saver (by end of the day next day)",
	"USPS Priority Mail Express",
	"USPS Ground Advantage",
	"UPS Next Day Air (by 10:30 AM next day)",
}

var DamageTypes = []DamageType{
	"Quebrado",
	"Manchado",
	"Amassado",
	"Faltando Produto",
	"Embalagem danificada",
	"Carrier Damage",
}

var (
	carrierSet    = make(map[Carrier]struct{}, len(Carriers))
	serviceSet    = make(map[Service]struct{}, len(Services))
	produtoSet    = make(map[Produto]struct{}, len(Produtos))
	damageTypeSet = make(map[DamageType]struct{}, len(DamageTypes))
)

func init() {
	for _, c := range Carriers {
		carrierSet[c] = struct{}{}
	}
	for _, s := range Services {
		serviceSet[s] = struct{}{}
	}
	for _, p := range Produtos {
		produtoSet[p] = struct{}{}
	}
	for _, d := range DamageTypes {
		damageTypeSet[d] = struct{}{}
	}
}

func ValidCarrier(s string) bool {
	_, ok := carrierSet[Carrier(s)]
	return ok
}

func ValidService(s string) bool {
	_, ok := serviceSet[Service(s)]
	return ok
}

func ValidProduto(s string) bool {
	_, ok := produtoSet[Produto(s)]
	return ok
}

func ValidDamageType(s string) bool {
	_, ok := damageTypeSet[DamageType(s)]
	return ok
}
