package university

import (
	"net/url"

	"github.com/bassista/go_unis/internal/network"
)

// SearchRequest lists the universities of one country:
// GET /search?country=<Country>.
type SearchRequest struct {
	Country string
}

func (r SearchRequest) Path() string { return "/search" }

func (r SearchRequest) Method() network.Method { return network.GET }

func (r SearchRequest) Query() url.Values {
	return url.Values{"country": {r.Country}}
}
