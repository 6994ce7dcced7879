package finances

import (
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Exchange rates come from the open er-api.com service, a daily feed
// that requires no key. Responses look like:
//
//	{
//	    "result": "success",
//	    "base_code": "USD",
//	    "rates": { "USD": 1, "EUR": 0.92, ... }
//	}
const exchangeRateAPI = "https://open.er-api.com/v6/latest/"

// FetchExchangeRate fetches the daily exchange rate from one currency to
// another. Responses are cached on disk until the end of the day.
func FetchExchangeRate(base, quote string) (float64, error) {
	addr := exchangeRateAPI + url.PathEscape(base)
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", base, err)
	}

	path := fmt.Sprintf("$.rates.%s", quote)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error in jsonpath %q: %w", path, err)
	}
	return rateValue(jval)
}

// rateValue converts a jsonpath result into a float64.
// jsonpath is never clear about whether it returns a list of 1 answer,
// or a single answer, so both are handled.
func rateValue(jval any) (float64, error) {
	switch v := jval.(type) {
	case float64:
		return v, nil
	case []any:
		if len(v) != 1 {
			return math.NaN(), fmt.Errorf("unexpected jsonpath result length %d", len(v))
		}
		return rateValue(v[0])
	default:
		return math.NaN(), fmt.Errorf("unexpected jsonpath result type %T", jval)
	}
}
