package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/meschbach/fakegen/internal/junk"
)

//go:embed data/names.json
var namesJSON []byte

//go:embed data/domains.json
var domainsJSON []byte

//go:embed data/calling-codes.json
var callingCodesJSON []byte

var ErrUnknownOrigin = errors.New("unknown origin")

// Names is the bundled name catalog.  Every record carries "name", "origin" and "type".
func Names() List[Record] {
	records, err := ParseRecords(namesJSON)
	junk.Must(err)
	return records
}

// NameTokens filters the bundled names and projects them onto the name itself.
func NameTokens(predicates ...Predicate[Record]) List[string] {
	tokens, err := Strings(Names().Where(predicates...), "name")
	junk.Must(err)
	return tokens
}

// Domains is the bundled list of mail domains.  They are all reserved for documentation and testing.
func Domains() List[string] {
	var domains []string
	junk.Must(json.Unmarshal(domainsJSON, &domains))
	return Of(domains...)
}

// CallingCode looks up the telephone country calling code of an origin.
func CallingCode(origin string) (string, error) {
	records, err := ParseRecords(callingCodesJSON)
	if err != nil {
		return "", err
	}
	matched := records.Where(Origin(origin))
	if matched.Empty() {
		return "", ErrUnknownOrigin
	}
	return matched.At(0).Field("code")
}
