package gateway

import (
	"vinyl-storefront/internal/infra"
	"vinyl-storefront/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Shared validator instance; construction is expensive and the instance
// is safe for concurrent use.
var validate = validatorv10.New()

// checkRow validates a decoded wire row against its struct tags. The
// backend schema is implicit, so this is the typed boundary that turns a
// malformed payload into a bad-payload failure instead of letting zero
// values leak into business logic.
func checkRow(msg string, row any) error {
	if err := validate.Struct(row); err != nil {
		return infra.WrapGatewayErr(msg, errs.Wrap(err, "row validation failed"), infra.KindBadPayload)
	}
	return nil
}

func checkRows[T any](msg string, rows []T) error {
	for i := range rows {
		if err := checkRow(msg, rows[i]); err != nil {
			return err
		}
	}
	return nil
}
