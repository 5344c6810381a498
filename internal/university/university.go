// Package university holds the record this application synchronizes, with
// its fixed mappings to the API payload and to the store.
package university

import (
	"github.com/bassista/go_unis/internal/store"
	"github.com/google/uuid"
)

// University is one record. ID is generated client side; the API has none.
type University struct {
	ID            string   `json:"id" yaml:"id"`
	AlphaTwoCode  *string  `json:"alphaTwoCode" yaml:"alpha_two_code"`
	Country       string   `json:"country" yaml:"country"`
	Domains       []string `json:"domains" yaml:"domains"`
	Name          string   `json:"name" yaml:"name"`
	StateProvince *string  `json:"stateProvince" yaml:"state_province"`
	WebPages      []string `json:"webPages" yaml:"web_pages"`
}

// Payload is the API representation. The keys are the fixed table of the
// remote contract; required keys use pointers or slices so that a missing
// key fails validation while an empty value does not.
type Payload struct {
	AlphaTwoCode  *string  `json:"alpha_two_code"`
	Country       *string  `json:"country" validate:"required"`
	Domains       []string `json:"domains" validate:"required"`
	Name          *string  `json:"name" validate:"required"`
	StateProvince *string  `json:"state-province"`
	WebPages      []string `json:"web_pages"`
}

// University converts a validated payload, assigning a fresh ID.
func (p Payload) University() University {
	return University{
		ID:            uuid.NewString(),
		AlphaTwoCode:  p.AlphaTwoCode,
		Country:       deref(p.Country),
		Domains:       p.Domains,
		Name:          deref(p.Name),
		StateProvince: p.StateProvince,
		WebPages:      p.WebPages,
	}
}

// FromPayloads converts a decoded response body.
func FromPayloads(payloads []Payload) []University {
	out := make([]University, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.University())
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

const (
	colName          = "name"
	colCountry       = "country"
	colDomains       = "domains"
	colStateProvince = "state_province"
	colAlphaTwoCode  = "alpha_two_code"
	colWebPages      = "web_pages"
)

// Collection is the store table for universities.
var Collection = store.Collection[University]{
	Name:       "universities",
	Columns:    []string{colName, colCountry, colDomains, colStateProvince, colAlphaTwoCode, colWebPages},
	FromObject: FromObject,
}

func (u University) PrimaryKey() string { return u.ID }

// ToObject converts to the store-native form.
func (u University) ToObject() store.Object {
	obj := store.NewObject(u.ID)
	obj.Set(colName, u.Name)
	obj.Set(colCountry, u.Country)
	domains := u.Domains
	if domains == nil {
		domains = []string{}
	}
	obj.SetList(colDomains, domains)
	obj.SetNullable(colStateProvince, u.StateProvince)
	obj.SetNullable(colAlphaTwoCode, u.AlphaTwoCode)
	obj.SetList(colWebPages, u.WebPages)
	return obj
}

// FromObject rebuilds a University from its stored form.
func FromObject(obj store.Object) (University, error) {
	domains, err := obj.List(colDomains)
	if err != nil {
		return University{}, err
	}
	if domains == nil {
		domains = []string{}
	}
	webPages, err := obj.List(colWebPages)
	if err != nil {
		return University{}, err
	}
	return University{
		ID:            obj.Key,
		AlphaTwoCode:  obj.Nullable(colAlphaTwoCode),
		Country:       obj.String(colCountry),
		Domains:       domains,
		Name:          obj.String(colName),
		StateProvince: obj.Nullable(colStateProvince),
		WebPages:      webPages,
	}, nil
}
