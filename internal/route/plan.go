package route

import "github.com/aeronav/flightroutes/internal/airline"

// Leg is one direct flight traversed by a plan.
type Leg struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Cost float64 `json:"cost"`
}

// Plan is the result of a successful route query: the ordered airport
// sequence from origin to destination and its total cost. For a query whose
// origin equals its destination the path is the single airport and the cost
// is zero.
type Plan struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	Timestamp int64              `json:"timestamp"`
	Path      []*airline.Airport `json:"path"`
	Legs      []Leg              `json:"legs"`
	TotalCost float64            `json:"totalCost"`
}

// Codes returns the airport codes along the path, in travel order.
func (p *Plan) Codes() []string {
	codes := make([]string, 0, len(p.Path))
	for _, a := range p.Path {
		codes = append(codes, a.Code)
	}
	return codes
}
