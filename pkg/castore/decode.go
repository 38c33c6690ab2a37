package castore

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies a decoded JSON payload into out, matching fields by their
// json tags. Numbers given as strings are converted where the target field
// requires it.
func Decode(input interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(input)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	return nil
}

// DecodeResult decodes the payload of a successful result into out.
func DecodeResult(res *Result, out interface{}) error {
	if res == nil {
		return nil
	}

	if res.Failed() {
		return res.Failure
	}

	return Decode(res.Data, out)
}
