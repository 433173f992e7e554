package overrides

import (
	"github.com/rogue-tools/overrides/lib/util/logger"
	"github.com/samber/oops"
)

// Validate checks that every value in cfg fits the kind of its field.
// Returns an error naming the first field that does not.
func Validate(cfg Overrides) error {
	log.WithFields(logger.Fields{
		"at":     "Validate",
		"reason": "verification_requested",
	}).Debug("validating overrides")
	return runValidators(&cfg)
}

// runValidators checks each group in registry order.
func runValidators(cfg *Overrides) error {
	for _, group := range Groups {
		if err := validateGroup(cfg, group); err != nil {
			log.WithError(err).Debug("Overrides validation failed")
			return err
		}
	}
	log.WithFields(logger.Fields{
		"at":     "Validate",
		"reason": "all_validators_passed",
	}).Debug("all override groups validated")
	return nil
}

func validateGroup(cfg *Overrides, group Group) error {
	log.WithFields(logger.Fields{
		"at":    "validateGroup",
		"group": group,
	}).Debug("validating override group")
	for _, f := range registry {
		if f.Group != group {
			continue
		}
		if err := f.check(cfg); err != nil {
			log.WithFields(logger.Fields{
				"at":     "validateGroup",
				"group":  group,
				"field":  f.Name,
				"reason": err.Error(),
			}).Debug("invalid override value")
			return fieldError(f.Name, classify(err), err)
		}
	}
	return nil
}

// validateDefaults reports a default that violates its own field kind as
// ErrInvalidDefault. It is never replaced by a guess.
func validateDefaults(cfg Overrides) error {
	if err := Validate(cfg); err != nil {
		return oops.
			In("overrides").
			Wrap(&FieldError{Field: fieldName(err), Kind: ErrInvalidDefault, Err: err})
	}
	return nil
}
