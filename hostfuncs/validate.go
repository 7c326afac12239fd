package hostfuncs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
)

// Validate checks that reg serves every catalogue entry point with the
// catalogue's signature. Extra functions are allowed.
func Validate(reg *HandlerRegistry) error {
	var errs []error
	for _, ep := range catalog.EntryPoints() {
		fn, ok := reg.Function(ep.Name)
		if !ok {
			errs = append(errs, fmt.Errorf("missing host function %s", ep.Signature()))
			continue
		}
		if !slices.Equal(fn.Params, ep.Params) || !slices.Equal(fn.Results, ep.Results) {
			got := catalog.EntryPoint{Name: fn.Name, Params: fn.Params, Results: fn.Results}
			errs = append(errs, fmt.Errorf("host function %s, want %s", got.Signature(), ep.Signature()))
		}
	}
	return errors.Join(errs...)
}
