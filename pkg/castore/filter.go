package castore

import (
	"strings"
)

// Validator checks a single record. A nil error means the record is valid.
type Validator func(record Record) error

// Predicate adapts a boolean check to a Validator.
func Predicate(valid func(record Record) bool) Validator {
	return func(record Record) error {
		if valid(record) {
			return nil
		}

		return ErrRecordRejected
	}
}

// Registry maps entity type tags to validators.
type Registry map[EntityType]Validator

// NewRegistry returns a copy of validators with lowercase keys. Nil
// validators are dropped.
func NewRegistry(validators map[EntityType]Validator) Registry {
	registry := make(Registry, len(validators))

	for tag, validate := range validators {
		if validate == nil {
			continue
		}

		registry[normalizeTag(tag)] = validate
	}

	return registry
}

// Lookup returns the validator registered for tag, matching case-insensitively.
func (r Registry) Lookup(tag EntityType) (Validator, bool) {
	if len(r) == 0 {
		return nil, false
	}

	validate, ok := r[normalizeTag(tag)]
	if !ok || validate == nil {
		return nil, false
	}

	return validate, true
}

// Validate runs the validator for tag against record. It returns nil when no
// validator is registered.
func (r Registry) Validate(tag EntityType, record Record) error {
	validate, ok := r.Lookup(tag)
	if !ok {
		return nil
	}

	return validate(record)
}

// Filter prunes invalid records from a decoded payload.
//
// With no validator for tag the payload is returned unchanged. For an array
// payload the elements that are objects and pass validation are kept in
// their original order. For any other payload the value is returned if it is
// a valid object and nil otherwise. Records are never modified.
func (r Registry) Filter(data interface{}, tag EntityType) interface{} {
	validate, ok := r.Lookup(tag)
	if !ok {
		return data
	}

	switch items := data.(type) {
	case []interface{}:
		kept := make([]interface{}, 0, len(items))

		for _, item := range items {
			record, isRecord := asRecord(item)
			if isRecord && validate(record) == nil {
				kept = append(kept, item)
			}
		}

		return kept
	case []Record:
		kept := make([]Record, 0, len(items))

		for _, record := range items {
			if record != nil && validate(record) == nil {
				kept = append(kept, record)
			}
		}

		return kept
	default:
		record, isRecord := asRecord(data)
		if !isRecord || validate(record) != nil {
			return nil
		}

		return data
	}
}

func normalizeTag(tag EntityType) EntityType {
	return EntityType(strings.ToLower(string(tag)))
}
